package dto

import (
	"reflect"

	"github.com/go-playground/validator/v10"
)

// MaxCents is the largest magnitude a money field may hold: the biggest integer a JSON
// client can represent exactly.
const MaxCents int64 = 1<<53 - 1

// ValidCents reports whether cents is within ±MaxCents.
func ValidCents(cents int64) bool {
	return cents >= -MaxCents && cents <= MaxCents
}

// RegisterValidators adds the custom tags used by request DTOs to v.
func RegisterValidators(v *validator.Validate) error {
	return v.RegisterValidation("cents", func(fl validator.FieldLevel) bool {
		f := fl.Field()
		switch f.Kind() {
		case reflect.Int, reflect.Int32, reflect.Int64:
			return ValidCents(f.Int())
		}
		return false
	})
}
