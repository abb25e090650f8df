// Package validation wraps go-playground/validator for struct-tag checks
package validation

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// FieldError describes the first rule a struct violated
type FieldError struct {
	Field string
	Rule  string
	Param string
	Value any
}

// Validate checks s against its `validate` tags
func Validate(s any) error {
	return validate.Struct(s)
}

// FirstFieldError extracts the first violated field from a Validate error.
// Fields are reported in declaration order.
func FirstFieldError(err error) (FieldError, bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return FieldError{}, false
	}

	fe := verrs[0]
	return FieldError{
		Field: fe.Field(),
		Rule:  fe.Tag(),
		Param: fe.Param(),
		Value: fe.Value(),
	}, true
}
