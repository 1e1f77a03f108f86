package tvdbrenamer

import (
	internalconfig "github.com/tvdb-renamer/tvdbrenamer/internal/config"
	internalpath "github.com/tvdb-renamer/tvdbrenamer/internal/path"
	"go.uber.org/zap"
)

// ConfigFile returns the path of the first existing config file named basename.
//
// It looks into the current directory, then the user config directory, then the packaged resources.
// It returns an empty string when none exists. An empty basename means the default one.
func ConfigFile(basename string, opts ...Option) string {
	ctx := newRunContext(opts...)

	for _, l := range internalconfig.Locations(ctx.configOptions(basename), false) {
		if internalpath.IsFile(ctx.fs, l.Path) {
			ctx.log.Debug("found config file", zap.String("path", l.Path))

			return l.Path
		}
	}

	return ""
}
