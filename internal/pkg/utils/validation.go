package utils

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("likert_responses", validateLikertResponses)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// validateLikertResponses rejects response maps with negative answers. The
// per-type upper bound differs between questionnaires and is enforced by the
// scoring rules, not here.
func validateLikertResponses(fl validator.FieldLevel) bool {
	responses, ok := fl.Field().Interface().(map[string]int)
	if !ok {
		return false
	}
	for _, value := range responses {
		if value < 0 {
			return false
		}
	}
	return true
}
