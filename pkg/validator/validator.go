package validator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()
	// Report fields by their JSON names so messages match the request body.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	return &CustomValidator{
		validator: v,
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	fields := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				fields[field] = field + " is required"
			case "email":
				fields[field] = field + " must be a valid email address"
			case "min":
				fields[field] = field + " must be at least " + e.Param() + " characters"
			case "max":
				fields[field] = field + " must be at most " + e.Param() + " characters"
			case "oneof":
				fields[field] = field + " must be one of " + strings.ReplaceAll(e.Param(), " ", ", ")
			case "datetime":
				fields[field] = field + " must be a date in YYYY-MM-DD format"
			case "dive":
				fields[field] = field + " contains an invalid entry"
			default:
				fields[field] = field + " is invalid"
			}
		}
	}

	return fields
}
