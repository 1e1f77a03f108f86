package internalpath

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/tvdb-renamer/tvdbrenamer/config"
)

// Expand resolves the home directory shorthand (~) and the environment variables in p.
func Expand(p string) (string, error) {
	expanded, err := homedir.Expand(os.ExpandEnv(p))
	if err != nil {
		return "", fmt.Errorf("couldn't expand %s: %w", p, err)
	}

	return expanded, nil
}

// IsFile tells whether a regular file exists at p.
//
// Any error (missing file, permissions, ...) counts as absent.
func IsFile(fs afero.Fs, p string) bool {
	if strings.TrimSpace(p) == "" {
		return false
	}
	info, err := fs.Stat(p)
	if err != nil {
		return false
	}

	return info.Mode().IsRegular()
}

// PackageRoot returns the directory containing the packaged {app} resources directory.
//
// The given root wins over the environment variable, which wins over the
// share directory next to the running executable ({executable_dir}/../share).
func PackageRoot(root string) (string, error) {
	if root = strings.TrimSpace(root); root != "" {
		return Expand(root)
	}
	if env := strings.TrimSpace(os.Getenv(config.PackageRootEnvVar)); env != "" {
		return Expand(env)
	}

	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("couldn't determine the executable path: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	return filepath.Join(filepath.Dir(exe), "..", "share"), nil
}
