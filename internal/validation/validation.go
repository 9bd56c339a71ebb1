// Package validation turns struct-tag constraints into domain validation errors.
//
// Inputs declare their rules with `validate` tags and the reported field name
// with a `field` tag; every violation is collected into one
// *domain.ValidationError.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("field"), ",")
		if name == "" {
			return fld.Name
		}
		return name
	})
	// PostgreSQL text columns cannot store NUL.
	_ = v.RegisterValidation("nonul", func(fl validator.FieldLevel) bool {
		return !strings.ContainsRune(fl.Field().String(), 0)
	})
	return v
}

// Struct validates s and returns a *domain.ValidationError listing every
// failed field, or nil when s is valid.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate %T: %w", s, err)
	}

	fields := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, domain.FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return domain.NewValidationErrors(fields)
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "gt":
		return "must be a positive integer"
	case "min":
		return "min " + fe.Param() + " characters"
	case "max":
		return "max " + fe.Param() + " characters"
	case "nonul":
		return "must not contain NUL characters"
	default:
		return "invalid value"
	}
}
