package tvdbrenamer

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/tvdb-renamer/tvdbrenamer/config"
	tvdbrenamererrors "github.com/tvdb-renamer/tvdbrenamer/errors"
	internalconfig "github.com/tvdb-renamer/tvdbrenamer/internal/config"
	internalenv "github.com/tvdb-renamer/tvdbrenamer/internal/env"
	internalhooks "github.com/tvdb-renamer/tvdbrenamer/internal/hooks"
	internalscope "github.com/tvdb-renamer/tvdbrenamer/internal/scope"
	internalusage "github.com/tvdb-renamer/tvdbrenamer/internal/usage"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// PrintHelpFunc writes the help text to the output given with WithOutput.
type PrintHelpFunc func() error

const precedenceNote = `Args that start with '--' can also be set in a config file, using the ini-style syntax "key = value" (section headers are ignored).
If an arg is specified in more than one place, then command line values override environment variables which override config file values which override defaults.`

// Configure merges the config files, the environment, and the command line into the options of a run.
//
// It first seeds the user config directory with the packaged default (see CopyDefaultConfig).
// Then, in ascending priority, it merges the packaged, the user, and the current directory config files,
// the environment variables, and finally the command-line arguments.
// Unknown flags are ignored, positional arguments are available through Options.Args().
// An unknown flag given without "=" takes the next argument as its value: in "--unknown a.mkv",
// a.mkv is dropped too. Use "--unknown=value" or put files after "--" to keep them.
//
// WithDestination replaces the user config directory, both for seeding and for reading.
//
// It never exits the process: it's up to the caller to act on Options.Help or Options.Version,
// for example by calling the returned PrintHelpFunc.
func Configure(opts ...Option) (*Options, PrintHelpFunc, error) {
	ctx := newRunContext(opts...)
	cfgOpts := ctx.configOptions(ctx.basename)
	if ctx.destination != "" {
		cfgOpts.UserDir = ctx.destination
	}

	seeder := *ctx
	seeder.clobber = false
	if _, err := seeder.copyDefaultConfig(cfgOpts.Basename); err != nil {
		if !errors.Is(err, tvdbrenamererrors.ErrMissingResource) {
			return nil, nil, err
		}
		ctx.log.Warn("running without a packaged default configuration", zap.Error(err))
	}

	c := &cobra.Command{
		Use:                   cfgOpts.AppName + " [flags] [files...]",
		Long:                  "Rename television episode files with the metadata from TheTVDB.",
		DisableFlagsInUseLine: true,
		SilenceErrors:         true,
		SilenceUsage:          true,
	}
	c.SetOut(ctx.out)
	c.Flags().SortFlags = false
	c.FParseErrWhitelist.UnknownFlags = true
	s := internalscope.Get(c)

	core := &Options{}
	coreFlags := pflag.NewFlagSet(cfgOpts.AppName, pflag.ContinueOnError)
	coreFlags.SortFlags = false
	if err := Define(coreFlags, core, ""); err != nil {
		return nil, nil, err
	}
	if err := attach(c, s, coreFlags, cfgOpts.AppName); err != nil {
		return nil, nil, err
	}
	for i, parent := range ctx.parents {
		if parent == nil {
			continue
		}
		if err := attach(c, s, parent, fmt.Sprintf("parent group #%d", i+1)); err != nil {
			return nil, nil, err
		}
	}

	v := s.Viper()
	if err := v.BindPFlags(c.Flags()); err != nil {
		return nil, nil, fmt.Errorf("couldn't bind flags: %w", err)
	}
	if err := internalenv.BindEnv(s, c.Flags()); err != nil {
		return nil, nil, fmt.Errorf("couldn't bind environment variables: %w", err)
	}

	sources := internalconfig.Sources(ctx.fs, cfgOpts)
	if err := internalconfig.Merge(v, ctx.fs, sources); err != nil {
		return nil, nil, err
	}

	if err := c.ParseFlags(normalizeArgs(s, ctx.args)); err != nil {
		return nil, nil, fmt.Errorf("couldn't parse the command line: %w", err)
	}

	settings := v.AllSettings()
	res := &Options{}
	if err := internalhooks.Decode(settings, res, "flag"); err != nil {
		return nil, nil, fmt.Errorf("couldn't decode options: %w", err)
	}
	res.settings = settings
	res.args = c.Flags().Args()
	res.changed = make(map[string]bool)
	c.Flags().Visit(func(f *pflag.Flag) {
		res.changed[f.Name] = true
	})
	for _, src := range sources {
		res.sources = append(res.sources, src.String())
	}
	ctx.log.Debug("configuration loaded", zap.Strings("sources", res.sources), zap.Strings("args", res.args))

	internalusage.Setup(c, footer(cfgOpts))

	return res, func() error { return c.Help() }, nil
}

// attach adds the flags of fs to the command, reserving all their forms in the scope.
//
// Flags without a group annotation are reported under the fallback group in conflicts.
func attach(c *cobra.Command, s *internalscope.Scope, fs *pflag.FlagSet, fallback string) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		if err = s.AddDefinedFlag(groupOf(f, fallback), names(f)...); err != nil {
			return
		}
		for _, alias := range names(f)[1:] {
			if len(alias) > 2 {
				s.SetAlias(alias, f.Name)
			}
		}
		var own *pflag.Flag
		if own, err = detach(f); err != nil {
			return
		}
		c.Flags().AddFlag(own)
	})

	return err
}

// flagTypes maps the pflag type names of the flags Define creates to their Go type.
var flagTypes = map[string]reflect.Type{
	"bool":          reflect.TypeOf(false),
	"string":        reflect.TypeOf(""),
	"int":           reflect.TypeOf(int(0)),
	"int8":          reflect.TypeOf(int8(0)),
	"int16":         reflect.TypeOf(int16(0)),
	"int32":         reflect.TypeOf(int32(0)),
	"int64":         reflect.TypeOf(int64(0)),
	"uint":          reflect.TypeOf(uint(0)),
	"uint8":         reflect.TypeOf(uint8(0)),
	"uint16":        reflect.TypeOf(uint16(0)),
	"uint32":        reflect.TypeOf(uint32(0)),
	"uint64":        reflect.TypeOf(uint64(0)),
	"duration":      reflect.TypeOf(time.Duration(0)),
	"stringSlice":   reflect.TypeOf([]string{}),
	"intSlice":      reflect.TypeOf([]int{}),
	"zapcore.Level": reflect.TypeOf(zapcore.InfoLevel),
}

// detach returns a copy of f whose value is its own, holding the flag default.
//
// Parsing the copy leaves f untouched, so every Configure call starts from the defaults.
// Values of other types are shared with f: they are reset to the default instead.
func detach(f *pflag.Flag) (*pflag.Flag, error) {
	res := *f
	res.Changed = false

	t, ok := flagTypes[f.Value.Type()]
	if !ok {
		if f.Changed {
			if err := f.Value.Set(f.DefValue); err != nil {
				return nil, fmt.Errorf("couldn't reset flag '%s': %w", f.Name, err)
			}
			f.Changed = false
		}

		return &res, nil
	}

	def := f.DefValue
	if t.Kind() == reflect.Slice {
		def = strings.TrimSuffix(strings.TrimPrefix(def, "["), "]")
	}
	field := reflect.New(t).Elem()
	if err := internalhooks.DecodeValue(def, field.Addr().Interface()); err != nil {
		return nil, fmt.Errorf("couldn't copy flag '%s': %w", f.Name, err)
	}

	tmp := pflag.NewFlagSet(f.Name, pflag.ContinueOnError)
	defined, ok := inferDefineHooks(tmp, f.Name, "", "", field)
	if !ok {
		defined = defineStandard(tmp, f.Name, "", "", field)
	}
	res.Value = defined.Value

	return &res, nil
}

func footer(cfgOpts config.Options) string {
	var b strings.Builder
	if desc := internalconfig.Description(cfgOpts); desc != "" {
		b.WriteString("Reads " + desc + ".\n")
	}
	b.WriteString(precedenceNote)

	return b.String()
}
