// internal/utils/validator.go
package utils

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// MissingFields returns the lowercased names of fields that failed the
// required check, in declaration order.
func MissingFields(err error) []string {
	var fields []string

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrs {
			if e.Tag() == "required" {
				fields = append(fields, strings.ToLower(e.Field()))
			}
		}
	}

	return fields
}
