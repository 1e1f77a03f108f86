package internalconfig

import (
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	tvdbrenamererrors "github.com/tvdb-renamer/tvdbrenamer/errors"
	"github.com/tvdb-renamer/tvdbrenamer/resources"
	"gopkg.in/ini.v1"
)

// Source is a configuration file to merge.
//
// Embedded sources are read from the resources bundled in the binary, the others from the filesystem.
type Source struct {
	Path     string
	Embedded bool
}

func (s Source) String() string {
	if s.Embedded {
		return "embedded:" + resources.Name(s.Path)
	}

	return s.Path
}

var loadOptions = ini.LoadOptions{
	// A key without a value (eg., `dry-run`) means true
	AllowBooleanKeys: true,
}

// Parse reads ini-style settings into a flat map.
//
// Section headers are ignored: every key, whatever its section, lands at the top level.
// When a key appears more than once the last one wins.
func Parse(data []byte) (map[string]any, error) {
	file, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return nil, err
	}

	settings := make(map[string]any)
	for _, section := range file.Sections() {
		for _, key := range section.Keys() {
			settings[key.Name()] = key.Value()
		}
	}

	return settings, nil
}

// Bytes returns the raw content of the source.
func (s Source) Bytes(fs afero.Fs) ([]byte, error) {
	if s.Embedded {
		return resources.Read(s.Path)
	}

	return afero.ReadFile(fs, s.Path)
}

// Read loads the settings of the source s.
func Read(fs afero.Fs, s Source) (map[string]any, error) {
	data, err := s.Bytes(fs)
	if err != nil {
		return nil, tvdbrenamererrors.NewConfigFileError(s.String(), err)
	}

	settings, err := Parse(data)
	if err != nil {
		return nil, tvdbrenamererrors.NewConfigFileError(s.String(), err)
	}

	return settings, nil
}

// Merge reads the sources in order into the viper instance.
//
// Sources must be given in ascending priority: values from later sources override the ones from earlier sources.
func Merge(v *viper.Viper, fs afero.Fs, sources []Source) error {
	for _, s := range sources {
		settings, err := Read(fs, s)
		if err != nil {
			return err
		}
		if err := v.MergeConfigMap(settings); err != nil {
			return tvdbrenamererrors.NewConfigFileError(s.String(), err)
		}
	}

	return nil
}
