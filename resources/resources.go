// Package resources holds the default configuration files shipped with tvdb_renamer.
//
// The same files are installed under {package_root}/tvdb_renamer; the embedded
// copies are used when the binary runs without an installation tree.
package resources

import (
	"embed"
	"io/fs"
	"path"
)

// Dir is the directory holding the resources, both embedded and installed.
const Dir = "tvdb_renamer"

//go:embed tvdb_renamer/*.cfg
var embedded embed.FS

// FS returns the embedded resources.
func FS() fs.FS {
	return embedded
}

// Name returns the embedded name of the given resource.
func Name(basename string) string {
	return path.Join(Dir, basename)
}

// Has tells whether a resource named basename is embedded.
func Has(basename string) bool {
	info, err := fs.Stat(embedded, Name(basename))

	return err == nil && info.Mode().IsRegular()
}

// Read returns the content of the embedded resource named basename.
func Read(basename string) ([]byte, error) {
	return fs.ReadFile(embedded, Name(basename))
}
