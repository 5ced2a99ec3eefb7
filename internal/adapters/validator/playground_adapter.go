package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	validatorPlatform "healthgate/internal/platform/validator"
)

type playgroundValidator struct {
	validate *validator.Validate
}

func NewPlaygroundAdapter() validatorPlatform.Validator {
	validate := validator.New()
	validate.RegisterTagNameFunc(fieldName)
	return &playgroundValidator{
		validate: validate,
	}
}

func (v *playgroundValidator) Validate(s any) error {
	if err := v.validate.Struct(s); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			outErrors := make([]validatorPlatform.FieldError, len(validationErrors))
			for i, fe := range validationErrors {
				outErrors[i] = validatorPlatform.FieldError{
					Field:   strings.ToLower(fe.Field()),
					Tag:     fe.Tag(),
					Message: getValidationErrorMessage(fe),
				}
			}
			return validatorPlatform.ValidationError{Errors: outErrors}
		}
		return err
	}
	return nil
}

// fieldName reports fields by the name they are configured under: the
// envconfig key, else the yaml key, else the Go name.
func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"envconfig", "yaml"} {
		name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
		if name != "" && name != "-" {
			return name
		}
	}
	return f.Name
}

func getValidationErrorMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "This field must be a valid email address"
	case "url":
		return "This field must be a valid URL"
	case "gt":
		return fmt.Sprintf("This field must be greater than %s", e.Param())
	case "gte":
		return fmt.Sprintf("This field must be at least %s", e.Param())
	case "lt":
		return fmt.Sprintf("This field must be less than %s", e.Param())
	case "lte":
		return fmt.Sprintf("This field must be at most %s", e.Param())
	case "oneof":
		return fmt.Sprintf("This field must be one of: %s", e.Param())
	case "startswith":
		return fmt.Sprintf("This field must start with '%s'", e.Param())
	default:
		return fmt.Sprintf("This field failed on the '%s' tag", e.Tag())
	}
}
