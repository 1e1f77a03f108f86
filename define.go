package tvdbrenamer

import (
	"reflect"

	"github.com/spf13/pflag"
	tvdbrenamererrors "github.com/tvdb-renamer/tvdbrenamer/errors"
	internalenv "github.com/tvdb-renamer/tvdbrenamer/internal/env"
	internalhooks "github.com/tvdb-renamer/tvdbrenamer/internal/hooks"
	internalreflect "github.com/tvdb-renamer/tvdbrenamer/internal/reflect"
	internaltag "github.com/tvdb-renamer/tvdbrenamer/internal/tag"
	internalvalidation "github.com/tvdb-renamer/tvdbrenamer/internal/validation"
)

// NewFlagSet creates a flag group named name from the struct field tags of o.
//
// Every flag gets annotated with the group name, so the help text lists them under "<name> Flags".
// The resulting set is meant to be given to Configure through WithParents.
func NewFlagSet(name string, o any) (*pflag.FlagSet, error) {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SortFlags = false
	if err := Define(fs, o, name); err != nil {
		return nil, err
	}

	return fs, nil
}

// Define creates flags from the struct field tags of o into fs.
//
// The flags are bound to the fields, so o must be a pointer to a struct.
// A non-empty group overrides the flaggroup tags.
// All the tags are validated before any flag gets defined.
func Define(fs *pflag.FlagSet, o any, group string) error {
	if err := internalvalidation.Struct(o); err != nil {
		return err
	}
	val, err := internalreflect.Struct(o)
	if err != nil {
		return err
	}

	return define(fs, val, group)
}

func define(fs *pflag.FlagSet, val reflect.Value, startingGroup string) error {
	fields, values := internalreflect.Exported(val)
	for i, f := range fields {
		field := values[i]
		if internaltag.Bool(f, "flagignore") {
			continue
		}

		name := internaltag.Name(f)
		descr := f.Tag.Get("flagdescr")
		defval := f.Tag.Get("default")
		group := f.Tag.Get("flaggroup")
		if startingGroup != "" {
			group = startingGroup
		}

		// Single characters are pflag shorthands, longer short forms become aliases
		short, alias := f.Tag.Get("flagshort"), ""
		if len(short) > 1 {
			short, alias = "", short
		}
		if err := checkAvailable(fs, name, short, alias, group); err != nil {
			return err
		}

		if defval != "" {
			if err := internalhooks.DecodeValue(defval, field.Addr().Interface()); err != nil {
				return tvdbrenamererrors.NewInvalidTagUsageError(f.Name, "default", err.Error())
			}
		}

		flag, ok := inferDefineHooks(fs, name, short, descr, field)
		if !ok {
			flag = defineStandard(fs, name, short, descr, field)
		}
		if flag == nil {
			return tvdbrenamererrors.NewUnsupportedTypeError(f.Name, f.Type.String(), "no flag definition for this type")
		}

		if alias != "" {
			_ = fs.SetAnnotation(name, internaltag.FlagAliasAnnotation, []string{alias})
		}
		if metavar := f.Tag.Get("flagmetavar"); metavar != "" {
			_ = fs.SetAnnotation(name, internaltag.FlagMetavarAnnotation, []string{metavar})
		}
		if internaltag.Bool(f, "flagenv") {
			_ = fs.SetAnnotation(name, internalenv.FlagAnnotation, []string{internalenv.Name(name)})
		}
		if group != "" {
			_ = fs.SetAnnotation(name, internaltag.FlagGroupAnnotation, []string{group})
		}
	}

	return nil
}

// checkAvailable makes sure none of the flag forms is already in use in fs.
func checkAvailable(fs *pflag.FlagSet, name, short, alias, group string) error {
	if fs.Lookup(name) != nil {
		return tvdbrenamererrors.NewDuplicateFlagError("--"+name, group, group)
	}
	if short != "" && fs.ShorthandLookup(short) != nil {
		return tvdbrenamererrors.NewDuplicateFlagError("-"+short, group, group)
	}
	if alias == "" {
		return nil
	}

	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		for _, a := range f.Annotations[internaltag.FlagAliasAnnotation] {
			if a == alias && err == nil {
				err = tvdbrenamererrors.NewDuplicateFlagError("-"+alias, group, group)
			}
		}
	})

	return err
}

// defineStandard defines the flag for the standard types, returning nil for the other ones.
func defineStandard(fs *pflag.FlagSet, name, short, descr string, field reflect.Value) *pflag.Flag {
	switch ref := field.Addr().Interface().(type) {
	case *bool:
		fs.BoolVarP(ref, name, short, *ref, descr)
	case *string:
		fs.StringVarP(ref, name, short, *ref, descr)
	case *int:
		fs.IntVarP(ref, name, short, *ref, descr)
	case *int8:
		fs.Int8VarP(ref, name, short, *ref, descr)
	case *int16:
		fs.Int16VarP(ref, name, short, *ref, descr)
	case *int32:
		fs.Int32VarP(ref, name, short, *ref, descr)
	case *int64:
		fs.Int64VarP(ref, name, short, *ref, descr)
	case *uint:
		fs.UintVarP(ref, name, short, *ref, descr)
	case *uint8:
		fs.Uint8VarP(ref, name, short, *ref, descr)
	case *uint16:
		fs.Uint16VarP(ref, name, short, *ref, descr)
	case *uint32:
		fs.Uint32VarP(ref, name, short, *ref, descr)
	case *uint64:
		fs.Uint64VarP(ref, name, short, *ref, descr)
	default:
		return nil
	}

	return fs.Lookup(name)
}

// names returns every form the flag can be given with on the command line.
func names(f *pflag.Flag) []string {
	res := []string{"--" + f.Name}
	if f.Shorthand != "" {
		res = append(res, "-"+f.Shorthand)
	}
	for _, alias := range f.Annotations[internaltag.FlagAliasAnnotation] {
		res = append(res, "-"+alias)
	}

	return res
}

func groupOf(f *pflag.Flag, fallback string) string {
	if groups := f.Annotations[internaltag.FlagGroupAnnotation]; len(groups) > 0 {
		return groups[0]
	}

	return fallback
}
