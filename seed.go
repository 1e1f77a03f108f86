package tvdbrenamer

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	tvdbrenamererrors "github.com/tvdb-renamer/tvdbrenamer/errors"
	internalconfig "github.com/tvdb-renamer/tvdbrenamer/internal/config"
	internalpath "github.com/tvdb-renamer/tvdbrenamer/internal/path"
	"go.uber.org/zap"
)

// CopyDefaultConfig copies the packaged default config file named basename into the user config directory.
//
// The destination directory (see WithDestination) is created when missing.
// An existing file is left untouched unless WithClobber(true) is given.
// It returns the path of the config file in the destination directory.
//
// When no packaged default exists, neither installed nor embedded, it returns a *errors.MissingResourceError.
func CopyDefaultConfig(basename string, opts ...Option) (string, error) {
	ctx := newRunContext(opts...)

	return ctx.copyDefaultConfig(basename)
}

func (ctx *runContext) copyDefaultConfig(basename string) (string, error) {
	cfgOpts := ctx.configOptions(basename)

	dir := ctx.destination
	if dir == "" {
		dir = cfgOpts.UserDir
	}
	dir, err := internalpath.Expand(dir)
	if err != nil {
		return "", fmt.Errorf("couldn't resolve the destination directory: %w", err)
	}

	exists, err := afero.DirExists(ctx.fs, dir)
	if err != nil {
		return "", fmt.Errorf("couldn't access %s: %w", dir, err)
	}
	if !exists {
		if err := ctx.fs.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("couldn't create %s: %w", dir, err)
		}
		ctx.log.Debug("created config directory", zap.String("dir", dir))
	}

	dst := filepath.Join(dir, cfgOpts.Basename)
	if !ctx.clobber && internalpath.IsFile(ctx.fs, dst) {
		ctx.log.Debug("config file already present", zap.String("path", dst))

		return dst, nil
	}

	src, ok := internalconfig.Packaged(ctx.fs, cfgOpts, cfgOpts.Basename)
	if !ok {
		path, _ := internalconfig.PackagePath(cfgOpts, cfgOpts.Basename)

		return "", tvdbrenamererrors.NewMissingResourceError(cfgOpts.Basename, path)
	}
	data, err := src.Bytes(ctx.fs)
	if err != nil {
		return "", fmt.Errorf("couldn't read %s: %w", src, err)
	}
	if err := afero.WriteFile(ctx.fs, dst, data, 0o644); err != nil {
		return "", fmt.Errorf("couldn't write %s: %w", dst, err)
	}
	ctx.log.Debug("copied default config file", zap.Stringer("source", src), zap.String("path", dst))

	return dst, nil
}
