// Package validator provides a thin wrapper around the go-playground/validator library,
// enabling declarative struct validation with standardized error formatting.
//
// It supports validating struct fields using tags (e.g., `validate:"required"`) and returns
// descriptive error messages when validation rules are violated. The shared instance is
// created on package load and safe to use concurrently.
package validator

import (
	"errors"
	"fmt"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is returned as the first error in a multi-error chain when validation fails.
//
// This sentinel error allows callers to detect validation failures explicitly,
// even when multiple field errors are returned.
var ErrValidationFailed = errors.New("validation failed")

// fieldErrFormat defines the template used to describe individual validation errors.
//
// Example: "'ID': value '' does not meet the requirements for the 'required' validation"
const fieldErrFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

// validate is the shared go-playground instance. Required struct checks are
// enabled so that a required struct-typed field must be non-zero.
var validate = gvalidator.New(gvalidator.WithRequiredStructEnabled())

// formatError transforms a raw validator error into a structured, human-readable multi-error chain.
//
// If the input is a set of validation errors, it returns a combined error with ErrValidationFailed as the root,
// followed by a formatted message for each field error. Otherwise, the original error is returned unchanged.
func formatError(err error) error {
	var fieldErrs gvalidator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	errs := make([]error, 0, len(fieldErrs)+1)
	errs = append(errs, ErrValidationFailed)
	for _, fe := range fieldErrs {
		errs = append(errs, fmt.Errorf(fieldErrFormat, fe.Field(), fe.Value(), fe.Tag()))
	}

	return errors.Join(errs...)
}

// Validate checks if the given struct satisfies its validation tags.
//
// It returns nil if all fields pass validation. Otherwise, it returns a combined error that includes
// ErrValidationFailed and one formatted message for each field that failed validation.
//
// Example usage:
//
// 	if err := validator.Validate(account); errors.Is(err, validator.ErrValidationFailed) {
// 	    // handle invalid input
// 	}
func Validate(v any) error {
	if err := validate.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}

// Var checks a single value against tag (e.g. "required,url"), with the same
// error format as Validate.
func Var(v any, tag string) error {
	if err := validate.Var(v, tag); err != nil {
		return formatError(err)
	}

	return nil
}
