package catalog

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report fields by their human label instead of the Go field name.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if label := fld.Tag.Get("label"); label != "" {
			return label
		}
		return fld.Name
	})
}

// Field order in these structs is the order checks are reported in.

type plainFields struct {
	Title  string `validate:"required" label:"title"`
	Author string `validate:"required" label:"author"`
}

type digitalFields struct {
	Title      string `validate:"required" label:"title"`
	Author     string `validate:"required" label:"author"`
	FileSizeKB int    `validate:"gt=0" label:"file size"`
	Format     string `validate:"required" label:"file format"`
}

type physicalFields struct {
	Title      string `validate:"required" label:"title"`
	Author     string `validate:"required" label:"author"`
	PageCount  int    `validate:"gt=0" label:"page count"`
	Identifier string `validate:"required" label:"ISBN"`
}

// validateFirst validates s and converts the first failing field into a
// ValidationError. Later failures are ignored.
func validateFirst(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ValidationError{Field: "item", Message: err.Error()}
	}
	return fieldError(fieldErrs[0].Field(), fieldErrs[0].Tag())
}

// requireText checks a single free-standing string argument.
func requireText(field, value string) error {
	if err := validate.Var(strings.TrimSpace(value), "required"); err != nil {
		return fieldError(field, "required")
	}
	return nil
}

func fieldError(field, tag string) *ValidationError {
	switch tag {
	case "required":
		return newValidationError(field, "must be a non-empty string")
	case "gt":
		return newValidationError(field, "must be a positive integer")
	default:
		return newValidationError(field, "is invalid")
	}
}
