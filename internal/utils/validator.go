package utils

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"healthy-eats-backend/domain"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func InitValidator() {
	Validate = NewValidator()
}

// NewValidator reports fields by their JSON names.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// ToInputValidationError converts the first validator failure into an
// InputValidationError naming the field and its valid range. Other errors
// are returned unchanged.
func ToInputValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}
	fe := fieldErrs[0]
	field := fe.Field()

	if b, ok := domain.ProfileBounds[field]; ok {
		out := &domain.InputValidationError{Field: field, Min: b.Min, Max: b.Max, Unit: b.Unit}
		if fe.Tag() == "gtfield" {
			out.Constraint = "must be higher than " + domain.FieldDiastolicBP
		}
		return out
	}

	out := &domain.InputValidationError{Field: field}
	limit, _ := strconv.Atoi(fe.Param())
	switch fe.Tag() {
	case "max":
		out.Max = limit
		if fe.Kind() == reflect.String || fe.Kind() == reflect.Slice {
			out.Unit = "characters"
			if fe.Kind() == reflect.Slice {
				out.Unit = "items"
			}
		}
	case "min":
		out.Min = limit
		out.Constraint = "must be at least " + fe.Param()
	case "required":
		out.Constraint = "is required"
	default:
		out.Constraint = "is invalid (" + fe.Tag() + ")"
	}
	return out
}
