package handler

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	// Register custom validation for visitor ids
	_ = v.RegisterValidation("visitorid", validateVisitorID)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s any) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// without leaking internal struct names
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "visitorid":
			errs[field] = "Invalid visitor id"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// validateVisitorID accepts canonical random (version 4) UUIDs only
func validateVisitorID(fl validator.FieldLevel) bool {
	id, err := uuid.Parse(fl.Field().String())
	if err != nil {
		return false
	}
	return id.Version() == 4 && id.String() == fl.Field().String()
}
