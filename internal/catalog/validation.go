package catalog

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// FieldError names one offending field with a human-readable message.
type FieldError struct {
	PropertyName string `json:"propertyName"`
	ErrorMessage string `json:"errorMessage"`
}

// ValidationError carries every field error for a rejected request. It is the
// one structured failure the HTTP boundary translates into a 400 response; a
// request that produces it never reaches its handler.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		msgs[i] = fe.PropertyName + ": " + fe.ErrorMessage
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Validator runs the declarative per-field rules on request types.
type Validator struct {
	validate *validator.Validate
}

// NewValidator builds the shared rule engine. It is safe for concurrent use.
// The notblank rule rejects strings that are empty or whitespace-only.
func NewValidator() *Validator {
	v := validator.New()
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return &Validator{validate: v}
}

// Check evaluates all rules for the request and returns a *ValidationError
// listing every violated field, or nil when the request is valid. Any other
// error is a fault in the rules themselves.
func (v *Validator) Check(request any) error {
	err := v.validate.Struct(request)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := make([]FieldError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, FieldError{
			PropertyName: fe.Field(),
			ErrorMessage: messageFor(fe),
		})
	}
	return &ValidationError{Errors: out}
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("'%s' must not be empty.", fe.Field())
	case "max":
		return fmt.Sprintf("The length of '%s' must be %s characters or fewer. You entered %d characters.",
			fe.Field(), fe.Param(), fieldLength(fe.Value()))
	case "gte":
		return fmt.Sprintf("'%s' must be greater than or equal to %s.", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("'%s' must be less than or equal to %s.", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("'%s' is invalid.", fe.Field())
	}
}

// fieldLength mirrors the rule engine's string length semantics (runes, not
// bytes) so the reported actual length matches the checked one.
func fieldLength(value any) int {
	s, ok := value.(string)
	if !ok {
		return 0
	}
	return utf8.RuneCountInString(s)
}
