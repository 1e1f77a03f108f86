package tvdbrenamer

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/thediveo/enumflag/v2"
	"go.uber.org/zap/zapcore"
)

// DefineHookFunc defines the flag for a field whose type is not a standard one.
type DefineHookFunc func(fs *pflag.FlagSet, name, short, descr string, fieldValue reflect.Value) *pflag.Flag

// Registry for predefined flag definition functions
var defineHookRegistry = map[string]DefineHookFunc{
	"zapcore.Level": DefineZapcoreLevelHookFunc(),
	"time.Duration": DefineTimeDurationHookFunc(),
	"[]string":      DefineStringSliceHookFunc(),
	"[]int":         DefineIntSliceHookFunc(),
}

// DefineTimeDurationHookFunc creates a flag definition function for time.Duration.
func DefineTimeDurationHookFunc() DefineHookFunc {
	return func(fs *pflag.FlagSet, name, short, descr string, fieldValue reflect.Value) *pflag.Flag {
		ref := fieldValue.Addr().Interface().(*time.Duration)
		fs.DurationVarP(ref, name, short, *ref, descr)

		return fs.Lookup(name)
	}
}

// DefineStringSliceHookFunc creates a flag definition function for comma-separated []string values.
func DefineStringSliceHookFunc() DefineHookFunc {
	return func(fs *pflag.FlagSet, name, short, descr string, fieldValue reflect.Value) *pflag.Flag {
		ref := fieldValue.Addr().Interface().(*[]string)
		fs.StringSliceVarP(ref, name, short, *ref, descr)

		return fs.Lookup(name)
	}
}

// DefineIntSliceHookFunc creates a flag definition function for comma-separated []int values.
func DefineIntSliceHookFunc() DefineHookFunc {
	return func(fs *pflag.FlagSet, name, short, descr string, fieldValue reflect.Value) *pflag.Flag {
		ref := fieldValue.Addr().Interface().(*[]int)
		fs.IntSliceVarP(ref, name, short, *ref, descr)

		return fs.Lookup(name)
	}
}

var logLevels = map[zapcore.Level][]string{
	zapcore.DebugLevel:  {"debug"},
	zapcore.InfoLevel:   {"info"},
	zapcore.WarnLevel:   {"warn"},
	zapcore.ErrorLevel:  {"error"},
	zapcore.DPanicLevel: {"dpanic"},
	zapcore.PanicLevel:  {"panic"},
	zapcore.FatalLevel:  {"fatal"},
}

// DefineZapcoreLevelHookFunc creates a flag definition function for zapcore.Level.
//
// It generates an enum flag accepting the level names, case-insensitively.
func DefineZapcoreLevelHookFunc() DefineHookFunc {
	return func(fs *pflag.FlagSet, name, short, descr string, fieldValue reflect.Value) *pflag.Flag {
		keys := make([]int, 0, len(logLevels))
		for k := range logLevels {
			keys = append(keys, int(k))
		}
		sort.Ints(keys)
		values := make([]string, 0, len(keys))
		for _, k := range keys {
			values = append(values, logLevels[zapcore.Level(k)][0])
		}
		addendum := fmt.Sprintf(" {%s}", strings.Join(values, ","))

		ref := fieldValue.Addr().Interface().(*zapcore.Level)
		enumFlag := enumflag.New(ref, fieldValue.Type().String(), logLevels, enumflag.EnumCaseInsensitive)

		return fs.VarPF(enumFlag, name, short, descr+addendum)
	}
}

// inferDefineHooks defines the flag through the registry, if a hook exists for the field type.
func inferDefineHooks(fs *pflag.FlagSet, name, short, descr string, fieldValue reflect.Value) (*pflag.Flag, bool) {
	defineFunc, ok := defineHookRegistry[fieldValue.Type().String()]
	if !ok {
		return nil, false
	}

	return defineFunc(fs, name, short, descr, fieldValue), true
}
