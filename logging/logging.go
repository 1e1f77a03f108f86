// Package logging builds the zap logger described by the logging configuration file.
package logging

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/mold/v4/modifiers"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	tvdbrenamererrors "github.com/tvdb-renamer/tvdbrenamer/errors"
	internalconfig "github.com/tvdb-renamer/tvdbrenamer/internal/config"
	internalhooks "github.com/tvdb-renamer/tvdbrenamer/internal/hooks"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	molder   = modifiers.New()
	validate = validator.New()
)

// Config is the content of a logging configuration file.
type Config struct {
	Level       string `flag:"level" mod:"trim,lcase" validate:"oneof=debug info warn error dpanic panic fatal"`
	Encoding    string `flag:"encoding" mod:"trim,lcase" validate:"oneof=console json"`
	Output      string `flag:"output" mod:"trim" validate:"required"`
	Development bool   `flag:"development"`
}

// Default returns the configuration used when no logging configuration file exists.
func Default() Config {
	return Config{
		Level:    "info",
		Encoding: "console",
		Output:   "stderr",
	}
}

func (c *Config) Transform(ctx context.Context) error {
	if err := molder.Struct(ctx, c); err != nil {
		return fmt.Errorf("mold transformation failed: %w", err)
	}

	return nil
}

func (c *Config) Validate(_ context.Context) []error {
	var errs []error
	if err := validate.Struct(c); err != nil {
		if validationErrs, ok := err.(validator.ValidationErrors); ok {
			for _, fieldErr := range validationErrs {
				errs = append(errs, fieldErr)
			}
		} else {
			errs = append(errs, err)
		}
	}

	return errs
}

// WithLevel returns a copy of c logging at the given level.
func (c Config) WithLevel(level zapcore.Level) Config {
	c.Level = level.String()

	return c
}

// Parse reads a logging configuration in the ini format.
//
// Missing keys keep their default value.
func Parse(ctx context.Context, data []byte) (Config, error) {
	settings, err := internalconfig.Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", tvdbrenamererrors.ErrInvalidLoggingFile, err)
	}

	cfg := Default()
	if err := internalhooks.Decode(settings, &cfg, "flag"); err != nil {
		return Config{}, fmt.Errorf("%w: %w", tvdbrenamererrors.ErrInvalidLoggingFile, err)
	}
	if err := cfg.Transform(ctx); err != nil {
		return Config{}, fmt.Errorf("%w: %w", tvdbrenamererrors.ErrInvalidLoggingFile, err)
	}
	if errs := cfg.Validate(ctx); len(errs) > 0 {
		return Config{}, fmt.Errorf("%w: %w", tvdbrenamererrors.ErrInvalidLoggingFile, &tvdbrenamererrors.ValidationError{
			ContextName: "logging",
			Errors:      errs,
		})
	}

	return cfg, nil
}

// Load reads the logging configuration file at path.
func Load(ctx context.Context, fs afero.Fs, path string) (Config, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", tvdbrenamererrors.ErrInvalidLoggingFile, err)
	}

	cfg, err := Parse(ctx, data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// New builds the logger described by cfg.
func New(cfg Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(strings.TrimSpace(cfg.Level))
	if err != nil {
		return nil, err
	}

	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Encoding = cfg.Encoding
	zc.OutputPaths = []string{cfg.Output}
	zc.ErrorOutputPaths = []string{"stderr"}
	if cfg.Encoding == "console" {
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	return zc.Build()
}
