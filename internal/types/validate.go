package types

import "github.com/go-playground/validator/v10"

// validate is shared by every request type. Validator instances cache
// struct metadata and are safe for concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateRequest checks a typed request against its struct tags and wraps
// any failure in a ValidationError so callers can branch on the kind.
func ValidateRequest(req any) error {
	if err := validate.Struct(req); err != nil {
		return &ValidationError{Err: err}
	}
	return nil
}
