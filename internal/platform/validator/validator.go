package validator

import (
	"fmt"
	"strings"
)

// FieldError is one configuration value that failed a rule. Field is the
// name the value is configured under, Tag the rule that rejected it.
type FieldError struct {
	Field   string
	Tag     string
	Message string
}

func (fe FieldError) Error() string {
	return fmt.Sprintf("field %s: %s", fe.Field, fe.Message)
}

type ValidationError struct {
	Errors []FieldError
}

func (ve ValidationError) Error() string {
	parts := make([]string, 0, len(ve.Errors))
	for _, fe := range ve.Errors {
		parts = append(parts, fe.Error())
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// Fields lists the failed field names in report order.
func (ve ValidationError) Fields() []string {
	fields := make([]string, 0, len(ve.Errors))
	for _, fe := range ve.Errors {
		fields = append(fields, fe.Field)
	}
	return fields
}

func (ve ValidationError) Has(field string) bool {
	for _, fe := range ve.Errors {
		if fe.Field == field {
			return true
		}
	}
	return false
}

type Validator interface {
	Validate(s any) error
}
