// internal/utils/validator.go
package utils

import (
	"errors"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// decimalValue lets "required" and numeric tags treat a zero decimal as missing.
func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

// FirstValidationMessage validates s and returns the message of the first
// failing field in declaration order. A field's `msg` tag overrides the
// generated message. The empty string means s is valid.
func FirstValidationMessage(s interface{}) string {
	err := ValidateStruct(s)
	if err == nil {
		return ""
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return err.Error()
	}

	first := validationErrs[0]
	if msg := messageTag(s, first.StructField()); msg != "" {
		return msg
	}
	return getValidationMessage(first)
}

func messageTag(s interface{}, fieldName string) string {
	t := reflect.TypeOf(s)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return ""
	}
	if field, ok := t.FieldByName(fieldName); ok {
		return field.Tag.Get("msg")
	}
	return ""
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "url":
		return e.Field() + " must be a valid URL"
	default:
		return e.Field() + " is invalid"
	}
}
