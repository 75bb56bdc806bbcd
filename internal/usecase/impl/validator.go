package impl

import (
	"github.com/go-playground/validator/v10"
)

// NewValidator creates the struct validator shared by the services.
func NewValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}
