package tvdbrenamer

import (
	"context"
)

// ValidatableOptions is implemented by the targets of Options.Decode that can check themselves.
//
// The Validate method is called automatically during Decode(), after Transform.
type ValidatableOptions interface {
	Validate(context.Context) []error
}

// TransformableOptions is implemented by the targets of Options.Decode that normalize their values.
//
// The Transform method is called automatically during Decode() before validation.
type TransformableOptions interface {
	Transform(context.Context) error
}
