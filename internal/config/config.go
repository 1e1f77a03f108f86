package internalconfig

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/afero"
	"github.com/tvdb-renamer/tvdbrenamer/config"
	internalpath "github.com/tvdb-renamer/tvdbrenamer/internal/path"
	"github.com/tvdb-renamer/tvdbrenamer/resources"
)

// Location is a candidate configuration file.
type Location struct {
	Type config.SearchPathType
	Path string
}

// Locations converts the SearchPathType strategies of opts to config file paths, in the same order.
//
// When mask=true, returns template paths for descriptions (e.g., $PWD, ~).
// When mask=false, returns actual resolved paths, skipping the ones that cannot be resolved.
func Locations(opts config.Options, mask bool) []Location {
	opts = opts.Defaults()

	var locations []Location
	add := func(t config.SearchPathType, dir string) {
		locations = append(locations, Location{Type: t, Path: filepath.Join(dir, opts.Basename)})
	}

	for _, pathType := range opts.SearchPaths {
		switch pathType {
		case config.SearchPathWorkingDir:
			if mask {
				add(pathType, "$PWD")
			} else {
				add(pathType, opts.WorkDir)
				// Relative candidates keep their ./ prefix (eg., ./tvdb_renamer.cfg)
				if l := &locations[len(locations)-1]; !filepath.IsAbs(l.Path) && !strings.HasPrefix(l.Path, ".") {
					l.Path = "." + string(filepath.Separator) + l.Path
				}
			}

		case config.SearchPathUserDir:
			if mask {
				add(pathType, opts.UserDir)
			} else {
				if dir, err := internalpath.Expand(opts.UserDir); err == nil {
					add(pathType, dir)
				}
			}

		case config.SearchPathPackage:
			if mask {
				root := opts.PackageRoot
				if root == "" {
					root = "{package_root}"
				}
				add(pathType, filepath.Join(root, opts.AppName))
			} else {
				if root, err := internalpath.PackageRoot(opts.PackageRoot); err == nil {
					add(pathType, filepath.Join(root, opts.AppName))
				}
			}
		}
	}

	return locations
}

// Sources returns the existing config files in ascending priority, the order in which they get merged.
//
// The packaged default falls back to the embedded copy when it is not installed.
func Sources(fs afero.Fs, opts config.Options) []Source {
	opts = opts.Defaults()

	types := slices.Clone(opts.SearchPaths)
	slices.Reverse(types)

	var sources []Source
	for _, t := range types {
		if t == config.SearchPathPackage {
			if s, ok := Packaged(fs, opts, opts.Basename); ok {
				sources = append(sources, s)
			}
			continue
		}
		single := opts
		single.SearchPaths = []config.SearchPathType{t}
		for _, l := range Locations(single, false) {
			if internalpath.IsFile(fs, l.Path) {
				sources = append(sources, Source{Path: l.Path})
			}
		}
	}

	return sources
}

// Packaged returns the packaged resource named basename.
//
// The installed file wins over the embedded one. It reports false when neither exists.
func Packaged(fs afero.Fs, opts config.Options, basename string) (Source, bool) {
	if p, err := PackagePath(opts, basename); err == nil && internalpath.IsFile(fs, p) {
		return Source{Path: p}, true
	}
	if resources.Has(basename) {
		return Source{Path: basename, Embedded: true}, true
	}

	return Source{}, false
}

// PackagePath returns the path of the packaged resource named basename.
func PackagePath(opts config.Options, basename string) (string, error) {
	opts = opts.Defaults()
	root, err := internalpath.PackageRoot(opts.PackageRoot)
	if err != nil {
		return "", err
	}

	return filepath.Join(root, opts.AppName, basename), nil
}

// Description creates a description of the config files, in descending priority
func Description(opts config.Options) string {
	locations := Locations(opts, true)
	if len(locations) == 0 {
		return ""
	}

	paths := make([]string, 0, len(locations))
	for _, l := range locations {
		paths = append(paths, l.Path)
	}

	return fmt.Sprintf("config files (first wins): {%s}", strings.Join(paths, ","))
}
