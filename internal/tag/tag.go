package internaltag

import (
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

var validFlagNameRegex = regexp.MustCompile(`^[a-zA-Z0-9]+([.-][a-zA-Z0-9]+)*$`)

var validShorthandRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

func IsValidFlagName(name string) bool {
	return validFlagNameRegex.MatchString(name)
}

// IsValidShorthand accepts single characters (pflag shorthands) and multi-character short forms (eg., "lc").
func IsValidShorthand(short string) bool {
	return validShorthandRegex.MatchString(short)
}

var standardTypes = func() map[reflect.Kind]reflect.Type {
	types := make(map[reflect.Kind]reflect.Type)
	for _, v := range []any{
		"", int(0), bool(false), int8(0), int16(0), int32(0), int64(0),
		uint(0), uint8(0), uint16(0), uint32(0), uint64(0),
	} {
		t := reflect.TypeOf(v)
		types[t.Kind()] = t
	}
	return types
}()

func IsStandardType(t reflect.Type) bool {
	expected, exists := standardTypes[t.Kind()]

	return exists && t == expected
}

// Bool returns the boolean value of the tag named name, false when absent or invalid.
func Bool(f reflect.StructField, name string) bool {
	val, _ := strconv.ParseBool(f.Tag.Get(name))

	return val
}

// Name returns the flag name for the field: the flag tag or the lowercased field name.
func Name(f reflect.StructField) string {
	if alias := f.Tag.Get("flag"); alias != "" {
		return alias
	}

	return strings.ToLower(f.Name)
}

const (
	FlagAliasAnnotation   = "___tvdbrenamer_flagaliases"
	FlagMetavarAnnotation = "___tvdbrenamer_flagmetavar"
	FlagGroupAnnotation   = "___tvdbrenamer_flaggroups"
)
