package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError wraps multiple validation errors that occurred while decoding ValidatableOptions.
type ValidationError struct {
	ContextName string
	Errors      []error
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	if e.ContextName != "" {
		sb.WriteString(fmt.Sprintf("invalid options for %s", e.ContextName))
	} else {
		sb.WriteString("invalid options")
	}
	if len(e.Errors) >= 1 {
		sb.WriteString(":")
	}

	for _, err := range e.Errors {
		sb.WriteString("\n       ")
		sb.WriteString(err.Error())
	}

	return sb.String()
}

// UnderlyingErrors returns the slice of individual validation errors (immutable).
func (e *ValidationError) UnderlyingErrors() []error {
	if e.Errors == nil {
		return nil
	}

	result := make([]error, len(e.Errors))
	copy(result, e.Errors)

	return result
}

// These are all DefinitionError
var (
	ErrInvalidBooleanTag = errors.New("invalid boolean tag value")
	ErrInvalidShorthand  = errors.New("invalid shorthand flag")
	ErrInvalidFlagName   = errors.New("invalid flag name")
	ErrInvalidTagUsage   = errors.New("invalid tag usage")
	ErrUnsupportedType   = errors.New("unsupported field type")
)

// These are setup errors: the program cannot run without a valid configuration
var (
	ErrDuplicateFlag      = errors.New("duplicate flag")
	ErrMissingResource    = errors.New("missing packaged resource")
	ErrInvalidConfigFile  = errors.New("invalid configuration file")
	ErrInvalidLoggingFile = errors.New("invalid logging configuration")
)

// DefinitionError represents an error that occurred while processing a struct field's tags at definition time.
type DefinitionError interface {
	error
	Field() string
}

// InvalidBooleanTagError represents an invalid boolean value in struct tags
type InvalidBooleanTagError struct {
	FieldName string
	TagName   string
	TagValue  string
}

func (e *InvalidBooleanTagError) Error() string {
	return fmt.Sprintf("field '%s': tag '%s=%s': invalid boolean value", e.FieldName, e.TagName, e.TagValue)
}

func (e *InvalidBooleanTagError) Field() string {
	return e.FieldName
}

func (e *InvalidBooleanTagError) Unwrap() error {
	return ErrInvalidBooleanTag
}

// InvalidShorthandError represents an invalid shorthand flag
type InvalidShorthandError struct {
	FieldName string
	Shorthand string
}

func (e *InvalidShorthandError) Error() string {
	return fmt.Sprintf("field '%s': shorthand flag '%s' must be made of letters or digits", e.FieldName, e.Shorthand)
}

func (e *InvalidShorthandError) Field() string {
	return e.FieldName
}

func (e *InvalidShorthandError) Unwrap() error {
	return ErrInvalidShorthand
}

// InvalidFlagNameError represents a flag name that cannot be used on the command line
type InvalidFlagNameError struct {
	FieldName string
	FlagName  string
}

func (e *InvalidFlagNameError) Error() string {
	return fmt.Sprintf("field '%s': invalid flag name '%s'", e.FieldName, e.FlagName)
}

func (e *InvalidFlagNameError) Field() string {
	return e.FieldName
}

func (e *InvalidFlagNameError) Unwrap() error {
	return ErrInvalidFlagName
}

// InvalidTagUsageError represents invalid tag usages
type InvalidTagUsageError struct {
	FieldName string
	TagName   string
	Message   string
}

func (e *InvalidTagUsageError) Error() string {
	return fmt.Sprintf("field '%s': invalid usage of tag '%s': %s", e.FieldName, e.TagName, e.Message)
}

func (e *InvalidTagUsageError) Field() string {
	return e.FieldName
}

func (e *InvalidTagUsageError) Unwrap() error {
	return ErrInvalidTagUsage
}

// UnsupportedTypeError represents an unsupported field type
type UnsupportedTypeError struct {
	FieldName string
	FieldType string
	Message   string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("field '%s': unsupported type '%s': %s", e.FieldName, e.FieldType, e.Message)
}

func (e *UnsupportedTypeError) Field() string {
	return e.FieldName
}

func (e *UnsupportedTypeError) Unwrap() error {
	return ErrUnsupportedType
}

// DuplicateFlagError represents a flag (or one of its short forms) registered twice
type DuplicateFlagError struct {
	Name          string
	Group         string
	ExistingGroup string
}

func (e *DuplicateFlagError) Error() string {
	return fmt.Sprintf("flag '%s' from group '%s' conflicts with the one already defined by group '%s'", e.Name, e.Group, e.ExistingGroup)
}

func (e *DuplicateFlagError) Unwrap() error {
	return ErrDuplicateFlag
}

// MissingResourceError represents a packaged default that is neither installed nor embedded
type MissingResourceError struct {
	Basename string
	Path     string
}

func (e *MissingResourceError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("couldn't find packaged resource '%s'", e.Basename)
	}

	return fmt.Sprintf("couldn't find packaged resource '%s' (looked into %s)", e.Basename, e.Path)
}

func (e *MissingResourceError) Unwrap() error {
	return ErrMissingResource
}

// ConfigFileError represents a configuration file that couldn't be read or parsed
type ConfigFileError struct {
	Path string
	Err  error
}

func (e *ConfigFileError) Error() string {
	return fmt.Sprintf("couldn't load config file '%s': %v", e.Path, e.Err)
}

func (e *ConfigFileError) Unwrap() []error {
	return []error{ErrInvalidConfigFile, e.Err}
}

func NewInvalidBooleanTagError(fieldName, tagName, tagValue string) error {
	return &InvalidBooleanTagError{
		FieldName: fieldName,
		TagName:   tagName,
		TagValue:  tagValue,
	}
}

func NewInvalidShorthandError(fieldName, shorthand string) error {
	return &InvalidShorthandError{
		FieldName: fieldName,
		Shorthand: shorthand,
	}
}

func NewInvalidFlagNameError(fieldName, flagName string) error {
	return &InvalidFlagNameError{
		FieldName: fieldName,
		FlagName:  flagName,
	}
}

func NewInvalidTagUsageError(fieldName, tagName, message string) error {
	return &InvalidTagUsageError{
		FieldName: fieldName,
		TagName:   tagName,
		Message:   message,
	}
}

func NewUnsupportedTypeError(fieldName, fieldType, message string) error {
	return &UnsupportedTypeError{
		FieldName: fieldName,
		FieldType: fieldType,
		Message:   message,
	}
}

func NewDuplicateFlagError(name, group, existingGroup string) error {
	return &DuplicateFlagError{
		Name:          name,
		Group:         group,
		ExistingGroup: existingGroup,
	}
}

func NewMissingResourceError(basename, path string) error {
	return &MissingResourceError{
		Basename: basename,
		Path:     path,
	}
}

func NewConfigFileError(path string, err error) error {
	return &ConfigFileError{
		Path: path,
		Err:  err,
	}
}

var ErrInputValue = errors.New("invalid input value")

// InputError represents an invalid input value for flag definition
type InputError struct {
	InputType string
	Message   string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input value of type '%s': %s", e.InputType, e.Message)
}

func (e *InputError) Unwrap() error {
	return ErrInputValue
}

func NewInputError(inputType, message string) error {
	return &InputError{
		InputType: inputType,
		Message:   message,
	}
}
