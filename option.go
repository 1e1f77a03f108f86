package tvdbrenamer

import (
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/tvdb-renamer/tvdbrenamer/config"
	"go.uber.org/zap"
)

// Option configures ConfigFile, CopyDefaultConfig, and Configure.
//
// Options that do not concern an operation are ignored by it.
type Option func(*runContext)

// runContext holds the settings of a single call
type runContext struct {
	basename    string
	args        []string
	argsSet     bool
	parents     []*pflag.FlagSet
	fs          afero.Fs
	cfgOpts     config.Options
	out         io.Writer
	log         *zap.Logger
	clobber     bool
	destination string
}

func newRunContext(opts ...Option) *runContext {
	ctx := &runContext{
		fs:  afero.NewOsFs(),
		out: os.Stdout,
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(ctx)
	}
	if !ctx.argsSet {
		ctx.args = os.Args[1:]
	}

	return ctx
}

// configOptions returns the lookup options for the given basename, with defaults applied.
func (ctx *runContext) configOptions(basename string) config.Options {
	o := ctx.cfgOpts
	if basename != "" {
		o.Basename = basename
	}

	return o.Defaults()
}

// WithBasename sets the name of the config file Configure looks for (defaults to "tvdb_renamer.cfg").
func WithBasename(basename string) Option {
	return func(ctx *runContext) {
		ctx.basename = basename
	}
}

// WithArgs sets the command-line arguments to parse, without the program name.
//
// Defaults to os.Args[1:].
func WithArgs(args ...string) Option {
	return func(ctx *runContext) {
		ctx.args = args
		ctx.argsSet = true
	}
}

// WithParents adds flag groups to the ones Configure defines.
//
// The groups must not redefine any flag (help included). NewFlagSet builds such groups from tagged structs.
func WithParents(parents ...*pflag.FlagSet) Option {
	return func(ctx *runContext) {
		ctx.parents = append(ctx.parents, parents...)
	}
}

// WithFs sets the filesystem (defaults to the OS one).
func WithFs(fs afero.Fs) Option {
	return func(ctx *runContext) {
		if fs != nil {
			ctx.fs = fs
		}
	}
}

// WithConfigOptions sets where config files are looked up and seeded.
func WithConfigOptions(o config.Options) Option {
	return func(ctx *runContext) {
		ctx.cfgOpts = o
	}
}

// WithOutput sets the writer the help text goes to (defaults to os.Stdout).
func WithOutput(w io.Writer) Option {
	return func(ctx *runContext) {
		if w != nil {
			ctx.out = w
		}
	}
}

// WithLogger sets the logger (defaults to a no-op one).
func WithLogger(l *zap.Logger) Option {
	return func(ctx *runContext) {
		if l != nil {
			ctx.log = l
		}
	}
}

// WithClobber makes CopyDefaultConfig overwrite an existing config file.
func WithClobber(clobber bool) Option {
	return func(ctx *runContext) {
		ctx.clobber = clobber
	}
}

// WithDestination sets the directory CopyDefaultConfig copies into (defaults to the user config directory).
func WithDestination(dir string) Option {
	return func(ctx *runContext) {
		ctx.destination = dir
	}
}
