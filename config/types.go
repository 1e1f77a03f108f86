package config

// SearchPathType represents the locations consulted for a configuration file.
type SearchPathType int

const (
	// SearchPathWorkingDir looks into the current directory.
	SearchPathWorkingDir SearchPathType = iota
	// SearchPathUserDir looks into the user config directory (~/.config/{app}).
	SearchPathUserDir
	// SearchPathPackage looks into the packaged installation resources ({package_root}/{app}).
	SearchPathPackage
)

const (
	// DefaultAppName is the name used for the user directory, the packaged resources, and the environment prefix.
	DefaultAppName = "tvdb_renamer"
	// DefaultBasename is the name of the main configuration file.
	DefaultBasename = "tvdb_renamer.cfg"
	// DefaultUserDir is the user config directory, before home expansion.
	DefaultUserDir = "~/.config/tvdb_renamer"
	// PackageRootEnvVar overrides the location of the packaged resources.
	PackageRootEnvVar = "TVDB_RENAMER_PACKAGE_ROOT"
)

// DefaultSearchPaths lists the locations in descending priority, as the locator scans them.
var DefaultSearchPaths = []SearchPathType{
	SearchPathWorkingDir,
	SearchPathUserDir,
	SearchPathPackage,
}

// Options defines where configuration files are looked up and seeded.
type Options struct {
	AppName     string
	Basename    string           // Config file name (defaults to "tvdb_renamer.cfg")
	WorkDir     string           // Current directory (defaults to ".")
	UserDir     string           // User config directory (defaults to "~/.config/tvdb_renamer")
	PackageRoot string           // Directory holding the packaged {app} directory (resolved from the executable when empty)
	SearchPaths []SearchPathType // Locator priority order (defaults to working dir, user dir, package)
}

// Defaults returns a copy of o with all the empty fields filled in.
//
// PackageRoot is not filled in, it gets resolved at lookup time.
func (o Options) Defaults() Options {
	if o.AppName == "" {
		o.AppName = DefaultAppName
	}
	if o.Basename == "" {
		o.Basename = DefaultBasename
	}
	if o.WorkDir == "" {
		o.WorkDir = "."
	}
	if o.UserDir == "" {
		o.UserDir = DefaultUserDir
	}
	if len(o.SearchPaths) == 0 {
		o.SearchPaths = DefaultSearchPaths
	}

	return o
}
