package util

import "github.com/go-playground/validator/v10"

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("groupstatus", validateGroupStatus)
	validate.RegisterValidation("apidate", validateAPIDate)
}

func validateGroupStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "O", "P", "F", "S", "U", "I", "R":
		return true
	}
	return false
}

func validateAPIDate(fl validator.FieldLevel) bool {
	_, err := ParseDate(fl.Field().String())
	return err == nil
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}
