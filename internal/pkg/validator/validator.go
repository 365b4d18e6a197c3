package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/cassioviller/ViajeyPlanner/internal/pkg/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate checks a request struct against its validate tags. Field errors are
// folded into a VALIDATION_ERROR with per-field details so a write never
// happens on malformed input.
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.ErrValidation
	}

	details := make(map[string]interface{}, len(fieldErrs))
	for _, fe := range fieldErrs {
		details[fe.Field()] = fe.Tag()
	}
	return errors.ErrValidation.WithDetails(details)
}

// GetValidator exposes the underlying validator for custom configuration.
func GetValidator() *validator.Validate {
	return validate
}
