package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/tvdb-renamer/tvdbrenamer"
	"github.com/tvdb-renamer/tvdbrenamer/logging"
	"github.com/tvdb-renamer/tvdbrenamer/resources"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var version = "dev"

// loggingOptions are the flags this program adds on top of the core ones.
type loggingOptions struct {
	LogLevel     zapcore.Level `flag:"log-level" flagdescr:"override the level of the logging configuration"`
	DebugOptions bool          `flag:"debug-options" flagenv:"true" flagdescr:"print the merged options and exit"`
}

func main() {
	os.Exit(run(context.Background(), afero.NewOsFs(), os.Stdout, os.Stderr, tvdbrenamer.WithArgs(os.Args[1:]...)))
}

func run(ctx context.Context, fs afero.Fs, stdout, stderr io.Writer, opts ...tvdbrenamer.Option) int {
	ext := &loggingOptions{}
	logFlags, err := tvdbrenamer.NewFlagSet("Logging", ext)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)

		return 1
	}

	opts = append([]tvdbrenamer.Option{
		tvdbrenamer.WithFs(fs),
		tvdbrenamer.WithOutput(stdout),
		tvdbrenamer.WithParents(logFlags),
	}, opts...)
	options, printHelp, err := tvdbrenamer.Configure(opts...)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)

		return 1
	}

	if options.Version {
		fmt.Fprintf(stdout, "tvdb_renamer %s\n", version)
	}
	if options.Help || options.Version {
		if err := printHelp(); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)

			return 1
		}

		return 0
	}

	if err := options.Decode(ctx, ext); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)

		return 1
	}
	if ext.DebugOptions {
		options.DebugTo(stdout)

		return 0
	}

	cfg, err := loggingConfig(ctx, fs, options.LoggingConfig, opts...)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)

		return 1
	}
	if options.Changed("log-level") {
		cfg = cfg.WithLevel(ext.LogLevel)
	}
	logger, err := logging.New(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)

		return 1
	}
	defer func() { _ = logger.Sync() }()

	logger.Debug("configuration loaded", zap.Strings("sources", options.Sources()))
	if options.DryRun {
		fmt.Fprintln(stdout, "Dry run: no file will be renamed")
	}
	for _, file := range options.Args() {
		fmt.Fprintf(stdout, "  %s\n", file)
	}
	logger.Info("done", zap.Int("files", len(options.Args())), zap.Bool("dry-run", options.DryRun))

	return 0
}

// loggingConfig loads the logging configuration named name.
//
// A path to an existing file is used as is, otherwise name is looked up like the main config file.
// The embedded default applies when nothing is found.
func loggingConfig(ctx context.Context, fs afero.Fs, name string, opts ...tvdbrenamer.Option) (logging.Config, error) {
	if name == "" {
		return logging.Default(), nil
	}
	if ok, _ := afero.Exists(fs, name); ok {
		return logging.Load(ctx, fs, name)
	}

	basename := filepath.Base(name)
	if path := tvdbrenamer.ConfigFile(basename, opts...); path != "" {
		return logging.Load(ctx, fs, path)
	}
	if resources.Has(basename) {
		data, err := resources.Read(basename)
		if err != nil {
			return logging.Config{}, err
		}

		return logging.Parse(ctx, data)
	}

	return logging.Default(), nil
}
