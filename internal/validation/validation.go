// Package validation holds the declarative request-schema checks shared by the
// services. Failures are reported as the full list of field issues, not just
// the first one.
package validation

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"todos-be/internal/models"
)

const passwordSymbols = "@$!%*?&"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterValidation("password", passwordRule)
	return v
}

// passwordRule enforces the password complexity policy: at least 6 characters,
// one lowercase, one uppercase, one digit and one symbol, with no characters
// outside those classes.
func passwordRule(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	if len(password) < 6 {
		return false
	}

	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r) && r < 128:
			hasLower = true
		case unicode.IsUpper(r) && r < 128:
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(passwordSymbols, r):
			hasSymbol = true
		default:
			return false
		}
	}
	return hasLower && hasUpper && hasDigit && hasSymbol
}

// Struct validates a tagged request struct and returns every field issue
// found, or nil when the value is valid.
func Struct(value any) []models.FieldError {
	err := validate.Struct(value)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []models.FieldError{{Field: "", Message: err.Error()}}
	}

	issues := make([]models.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		issues = append(issues, models.FieldError{
			Field:   strings.ToLower(fe.Field()),
			Message: messageFor(fe),
		})
	}
	return issues
}

// UUIDIssues checks that every named value is a well-formed UUID and returns
// one issue per malformed value.
func UUIDIssues(fields map[string]string) []models.FieldError {
	var issues []models.FieldError
	for field, value := range fields {
		if _, err := uuid.Parse(value); err != nil {
			issues = append(issues, models.FieldError{
				Field:   field,
				Message: fmt.Sprintf("%s must be a valid UUID", field),
			})
		}
	}
	return issues
}

func messageFor(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return "Invalid email format"
	case "password":
		return "Invalid password format"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
