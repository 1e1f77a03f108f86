package internalhooks

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"go.uber.org/zap/zapcore"
)

// DecodeHookRegistry maps the type names with a dedicated decoding to their decode hook.
var DecodeHookRegistry = map[string]mapstructure.DecodeHookFunc{
	"time.Duration": mapstructure.StringToTimeDurationHookFunc(),
	"zapcore.Level": StringToZapcoreLevelHookFunc(),
	"[]string":      mapstructure.StringToSliceHookFunc(","),
	"[]int":         StringToIntSliceHookFunc(","),
	"bool":          StringToBoolHookFunc(),
}

// Compose returns a single decode hook running all the registered ones, plus extra.
func Compose(extra ...mapstructure.DecodeHookFunc) mapstructure.DecodeHookFunc {
	hooks := []mapstructure.DecodeHookFunc{
		DecodeHookRegistry["time.Duration"],
		DecodeHookRegistry["zapcore.Level"],
		// The []string hook splits strings for any slice target, so []int goes first
		DecodeHookRegistry["[]int"],
		DecodeHookRegistry["[]string"],
		DecodeHookRegistry["bool"],
	}

	return mapstructure.ComposeDecodeHookFunc(append(hooks, extra...)...)
}

// Decode decodes the settings into target, matching keys against the tagName struct tags.
//
// Input is weakly typed: config files and environment variables always provide strings.
func Decode(settings map[string]any, target any, tagName string) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       Compose(),
		Result:           target,
		TagName:          tagName,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}

	return decoder.Decode(settings)
}

// StringToZapcoreLevelHookFunc creates a decode hook that converts string values
// to zapcore.Level types during configuration unmarshaling.
func StringToZapcoreLevelHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}
		if t != reflect.TypeOf(zapcore.DebugLevel) {
			return data, nil
		}

		level, err := zapcore.ParseLevel(strings.TrimSpace(data.(string)))
		if err != nil {
			return nil, fmt.Errorf("invalid string for zapcore.Level '%s': %w", data.(string), err)
		}

		return level, nil
	}
}

var boolWords = map[string]bool{
	"yes": true, "on": true, "true": true, "1": true,
	"no": false, "off": false, "false": false, "0": false,
}

// StringToBoolHookFunc creates a decode hook that converts the ini boolean spellings
// (yes/no, on/off, true/false, 1/0, any case) to bool.
//
// Other strings are left to the weakly typed decoding, which rejects them.
func StringToBoolHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.Bool {
			return data, nil
		}
		if b, ok := boolWords[strings.ToLower(strings.TrimSpace(data.(string)))]; ok {
			return b, nil
		}

		return data, nil
	}
}

// StringToIntSliceHookFunc creates a decode hook that converts comma-separated
// string values to []int slices during configuration unmarshaling.
func StringToIntSliceHookFunc(sep string) mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String {
			return data, nil
		}
		if t != reflect.SliceOf(reflect.TypeOf(int(0))) {
			return data, nil
		}

		raw := data.(string)
		if raw == "" {
			return []int{}, nil
		}

		parts := strings.Split(raw, sep)
		result := make([]int, len(parts))

		for i, part := range parts {
			trimmed := strings.TrimSpace(part)
			num, err := strconv.Atoi(trimmed)
			if err != nil {
				return nil, fmt.Errorf("invalid integer '%s' at position %d: %w", trimmed, i, err)
			}
			result[i] = num
		}

		return result, nil
	}
}

// DecodeValue decodes a single input value into the variable target points to.
func DecodeValue(input any, target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       Compose(),
		Result:           target,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}

	return decoder.Decode(input)
}
