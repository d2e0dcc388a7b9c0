package util

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"

	"employee-attendance/models"
)

var Validate *validator.Validate

var employeeCodePattern = regexp.MustCompile(`^[A-Za-z0-9-]+$`)

func init() {
	Validate = validator.New()

	Validate.RegisterValidation("employeecode", validateEmployeeCode)
}

func validateEmployeeCode(fl validator.FieldLevel) bool {
	return employeeCodePattern.MatchString(fl.Field().String())
}

// ValidateStruct returns nil when s is valid, otherwise a *models.ValidationError.
func ValidateStruct(s interface{}) error {
	err := Validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &models.ValidationError{Fields: []*models.FieldError{{Msg: err.Error()}}}
	}

	var fields []*models.FieldError
	for _, fe := range verrs {
		element := &models.FieldError{Field: fe.Field(), Tag: fe.Tag()}

		switch fe.Tag() {
		case "required":
			element.Msg = fmt.Sprintf("Field '%s' is required.", element.Field)
		case "max":
			element.Msg = fmt.Sprintf("Field '%s' must be at most %s characters.", element.Field, fe.Param())
		case "oneof":
			element.Msg = fmt.Sprintf("Field '%s' must be one of: %s.", element.Field, fe.Param())
		case "datetime":
			element.Msg = fmt.Sprintf("Field '%s' must match the format %s.", element.Field, fe.Param())
		case "employeecode":
			element.Msg = "Employee ID may only contain letters, digits and dashes."
		default:
			element.Msg = fmt.Sprintf("Field '%s' failed validation for tag '%s'.", element.Field, element.Tag)
		}
		fields = append(fields, element)
	}
	return &models.ValidationError{Fields: fields}
}

// IsEmail reports whether s is a syntactically valid email address.
func IsEmail(s string) bool {
	return Validate.Var(s, "required,email") == nil
}
