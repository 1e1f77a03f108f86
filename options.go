package tvdbrenamer

import (
	"context"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"

	tvdbrenamererrors "github.com/tvdb-renamer/tvdbrenamer/errors"
	internalhooks "github.com/tvdb-renamer/tvdbrenamer/internal/hooks"
	internalreflect "github.com/tvdb-renamer/tvdbrenamer/internal/reflect"
)

// Options are the settings of a tvdb_renamer run, as merged by Configure.
type Options struct {
	LoggingConfig string `flag:"logging-config" flagshort:"lc" flagmetavar:"FILE" flagenv:"true" default:"tvdb_renamer_logging.cfg" flagdescr:"the logging configuration file"`
	Version       bool   `flag:"version" flagshort:"v" flagdescr:"show the version and exit"`
	DryRun        bool   `flag:"dry-run" flagshort:"dr" flagdescr:"show what would be renamed without touching any file"`
	Help          bool   `flag:"help" flagshort:"h" flagdescr:"show this help message and exit"`

	settings map[string]any
	sources  []string
	args     []string
	changed  map[string]bool
}

// Get returns the merged value of the given key (a long flag name or a config file key).
//
// It returns nil when the key is unknown.
func (o *Options) Get(key string) any {
	return o.settings[strings.ToLower(key)]
}

// Changed reports whether the flag named name was given on the command line.
func (o *Options) Changed(name string) bool {
	return o.changed[name]
}

// Settings returns a copy of all the merged settings.
func (o *Options) Settings() map[string]any {
	res := make(map[string]any, len(o.settings))
	maps.Copy(res, o.settings)

	return res
}

// Sources returns the config files that got merged, in ascending priority.
func (o *Options) Sources() []string {
	return slices.Clone(o.sources)
}

// Args returns the positional arguments left after parsing the command line.
func (o *Options) Args() []string {
	return slices.Clone(o.args)
}

// Decode populates target with the merged settings, matching the flag struct tags.
//
// Targets implementing TransformableOptions are transformed, then the ones
// implementing ValidatableOptions are validated.
// Validation failures come back as a *errors.ValidationError.
func (o *Options) Decode(ctx context.Context, target any) error {
	if _, err := internalreflect.Struct(target); err != nil {
		return err
	}

	if err := internalhooks.Decode(o.settings, target, "flag"); err != nil {
		return fmt.Errorf("couldn't decode into %T: %w", target, err)
	}

	if transformable, ok := target.(TransformableOptions); ok {
		if err := transformable.Transform(ctx); err != nil {
			return fmt.Errorf("couldn't transform %T: %w", target, err)
		}
	}

	if validatable, ok := target.(ValidatableOptions); ok {
		if errs := validatable.Validate(ctx); len(errs) > 0 {
			return &tvdbrenamererrors.ValidationError{
				ContextName: reflect.TypeOf(target).Elem().Name(),
				Errors:      errs,
			}
		}
	}

	return nil
}
