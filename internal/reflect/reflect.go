package internalreflect

import (
	"fmt"
	"reflect"

	tvdbrenamererrors "github.com/tvdb-renamer/tvdbrenamer/errors"
)

// Struct returns the addressable struct value o points to.
//
// Flags bind to the struct fields, so o must be a non-nil pointer to a struct.
func Struct(o any) (reflect.Value, error) {
	// Handle untyped nil
	if o == nil {
		return reflect.Value{}, tvdbrenamererrors.NewInputError("nil", "cannot define flags from nil value")
	}

	inputType := fmt.Sprintf("%T", o)
	val := reflect.ValueOf(o)
	if val.Kind() != reflect.Ptr {
		return reflect.Value{}, tvdbrenamererrors.NewInputError(inputType, "expected a pointer to a struct")
	}
	if val.IsNil() {
		return reflect.Value{}, tvdbrenamererrors.NewInputError(inputType, "cannot define flags from nil pointer")
	}

	val = val.Elem()
	if val.Kind() != reflect.Struct {
		return reflect.Value{}, tvdbrenamererrors.NewInputError(inputType, "expected a pointer to a struct")
	}

	return val, nil
}

// Exported returns the exported fields of the struct value val, with their values.
func Exported(val reflect.Value) ([]reflect.StructField, []reflect.Value) {
	var (
		fields []reflect.StructField
		values []reflect.Value
	)
	for i := range val.NumField() {
		field := val.Field(i)
		// Ignore private fields
		if !field.CanInterface() || !field.CanAddr() {
			continue
		}
		fields = append(fields, val.Type().Field(i))
		values = append(values, field)
	}

	return fields, values
}
