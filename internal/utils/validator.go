// internal/utils/validator.go
package utils

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("product_id", validateProductID)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// validateProductID accepts non-empty ids without path separators, which
// would otherwise mangle the storage keys derived from them.
func validateProductID(fl validator.FieldLevel) bool {
	id := fl.Field().String()
	if id == "" || len(id) > 128 {
		return false
	}
	return !strings.ContainsAny(id, "/ \t\n")
}

type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   strings.ToLower(e.Field()),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "product_id":
		return "Invalid product id"
	default:
		return e.Field() + " is invalid"
	}
}
