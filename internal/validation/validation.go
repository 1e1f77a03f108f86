package internalvalidation

import (
	"fmt"
	"reflect"
	"strconv"

	tvdbrenamererrors "github.com/tvdb-renamer/tvdbrenamer/errors"
	internalhooks "github.com/tvdb-renamer/tvdbrenamer/internal/hooks"
	internalreflect "github.com/tvdb-renamer/tvdbrenamer/internal/reflect"
	internaltag "github.com/tvdb-renamer/tvdbrenamer/internal/tag"
)

// IsValidBoolTag validates that a struct tag contains a valid boolean value
func IsValidBoolTag(fieldName, tagName, tagValue string) (*bool, error) {
	if tagValue == "" {
		return nil, nil
	}
	val, err := strconv.ParseBool(tagValue)
	if err != nil {
		return nil, tvdbrenamererrors.NewInvalidBooleanTagError(fieldName, tagName, tagValue)
	}

	return &val, nil
}

// IsSupported tells whether a flag can be defined for a field of type t
func IsSupported(t reflect.Type) bool {
	if internaltag.IsStandardType(t) {
		return true
	}
	_, ok := internalhooks.DecodeHookRegistry[t.String()]

	return ok
}

// Struct checks the coherence of definitions in the given struct
func Struct(o any) error {
	val, err := internalreflect.Struct(o)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	if err := Fields(val, val.Type().Name()); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	return nil
}

// Fields validates the struct fields
func Fields(val reflect.Value, prefix string) error {
	fields, _ := internalreflect.Exported(val)
	for _, structF := range fields {
		fieldName := structF.Name
		if prefix != "" {
			fieldName = prefix + "." + structF.Name
		}

		// Validate flagignore tag
		flagIgnoreValue, err := IsValidBoolTag(fieldName, "flagignore", structF.Tag.Get("flagignore"))
		if err != nil {
			return err
		}
		if flagIgnoreValue != nil && *flagIgnoreValue {
			continue
		}

		// Validate flagenv tag
		if _, err := IsValidBoolTag(fieldName, "flagenv", structF.Tag.Get("flagenv")); err != nil {
			return err
		}

		if !IsSupported(structF.Type) {
			return tvdbrenamererrors.NewUnsupportedTypeError(fieldName, structF.Type.String(), "use flagignore to skip it")
		}

		// Validate flag name
		if name := internaltag.Name(structF); !internaltag.IsValidFlagName(name) {
			return tvdbrenamererrors.NewInvalidFlagNameError(fieldName, name)
		}

		// Validate flagshort tag
		if short := structF.Tag.Get("flagshort"); short != "" && !internaltag.IsValidShorthand(short) {
			return tvdbrenamererrors.NewInvalidShorthandError(fieldName, short)
		}

		// Validate flagmetavar tag
		if structF.Tag.Get("flagmetavar") != "" && structF.Type.Kind() == reflect.Bool {
			return tvdbrenamererrors.NewInvalidTagUsageError(fieldName, "flagmetavar", "boolean flags take no value")
		}
	}

	return nil
}
