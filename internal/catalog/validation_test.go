package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkFieldErrors(t *testing.T, err error) []FieldError {
	t.Helper()
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.NotEmpty(t, ve.Errors)
	return ve.Errors
}

func TestValidator_ActorName(t *testing.T) {
	v := NewValidator()

	require.NoError(t, v.Check(CreateActorCommand{Name: "Al Pacino"}))
	require.NoError(t, v.Check(CreateActorCommand{Name: strings.Repeat("a", 100)}),
		"exactly at the limit is valid")

	errs := checkFieldErrors(t, v.Check(CreateActorCommand{Name: strings.Repeat("a", 101)}))
	assert.Equal(t, "Name", errs[0].PropertyName)
	assert.Contains(t, errs[0].ErrorMessage, "100", "message states the limit")
	assert.Contains(t, errs[0].ErrorMessage, "101", "message states the actual length")

	errs = checkFieldErrors(t, v.Check(CreateActorCommand{Name: ""}))
	assert.Equal(t, "Name", errs[0].PropertyName)
	assert.Equal(t, "'Name' must not be empty.", errs[0].ErrorMessage)
}

func TestValidator_WhitespaceOnlyIsEmpty(t *testing.T) {
	v := NewValidator()

	for _, name := range []string{"   ", "\t", "\n  \t"} {
		errs := checkFieldErrors(t, v.Check(CreateActorCommand{Name: name}))
		assert.Equal(t, "Name", errs[0].PropertyName, "name %q", name)
		assert.Equal(t, "'Name' must not be empty.", errs[0].ErrorMessage, "name %q", name)
	}

	errs := checkFieldErrors(t, v.Check(UpdateMovieCommand{Title: "  ", Description: " \t "}))
	require.Len(t, errs, 2)
	assert.Equal(t, "'Title' must not be empty.", errs[0].ErrorMessage)
	assert.Equal(t, "'Description' must not be empty.", errs[1].ErrorMessage)

	// Visible text surrounded by whitespace stays valid.
	require.NoError(t, v.Check(CreateActorCommand{Name: " Al Pacino "}))
}

func TestValidator_MovieFields(t *testing.T) {
	v := NewValidator()

	valid := CreateMovieCommand{
		Title:       strings.Repeat("t", 500),
		Description: strings.Repeat("d", 2000),
	}
	require.NoError(t, v.Check(valid))

	tooLong := CreateMovieCommand{
		Title:       strings.Repeat("t", 501),
		Description: strings.Repeat("d", 2001),
	}
	errs := checkFieldErrors(t, v.Check(tooLong))
	require.Len(t, errs, 2, "every violated field is reported")
	assert.Equal(t, "Title", errs[0].PropertyName)
	assert.Contains(t, errs[0].ErrorMessage, "500")
	assert.Contains(t, errs[0].ErrorMessage, "501")
	assert.Equal(t, "Description", errs[1].PropertyName)
	assert.Contains(t, errs[1].ErrorMessage, "2000")
	assert.Contains(t, errs[1].ErrorMessage, "2001")

	errs = checkFieldErrors(t, v.Check(CreateMovieCommand{}))
	assert.Len(t, errs, 2, "title and description are both required")

	// Same rules apply to updates.
	errs = checkFieldErrors(t, v.Check(UpdateMovieCommand{Description: "fine"}))
	assert.Equal(t, "Title", errs[0].PropertyName)
}

func TestValidator_RateBounds(t *testing.T) {
	v := NewValidator()

	for _, rate := range []int{0, 3, 5} {
		assert.NoError(t, v.Check(RateMovieCommand{Rate: rate}), "rate %d", rate)
	}

	errs := checkFieldErrors(t, v.Check(RateMovieCommand{Rate: 6}))
	assert.Equal(t, "Rate", errs[0].PropertyName)

	errs = checkFieldErrors(t, v.Check(RateMovieCommand{Rate: -1}))
	assert.Equal(t, "Rate", errs[0].PropertyName)
}

func TestValidationError_Error(t *testing.T) {
	err := error(&ValidationError{Errors: []FieldError{
		{PropertyName: "Name", ErrorMessage: "'Name' must not be empty."},
	}})
	assert.Contains(t, err.Error(), "Name")

	var ve *ValidationError
	assert.True(t, errors.As(err, &ve))
}
