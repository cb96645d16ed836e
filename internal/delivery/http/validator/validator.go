// Package validator adapts go-playground/validator to Echo's Validator
// interface.
package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// EchoValidator wraps a validator instance for Echo.
type EchoValidator struct {
	validate *validator.Validate
}

// New creates a validator ready to be assigned to echo.Echo.Validator.
func New() *EchoValidator {
	return &EchoValidator{
		validate: validator.New(),
	}
}

// Validate implements echo.Validator.
func (v *EchoValidator) Validate(i any) error {
	return errors.WithStack(v.validate.Struct(i))
}
