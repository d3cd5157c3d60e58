package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorTypeString(t *testing.T) {
	assert.Equal(t, "validation", ErrorTypeValidation.String())
	assert.Equal(t, "not_found", ErrorTypeNotFound.String())
	assert.Equal(t, "database", ErrorTypeDatabase.String())
	assert.Equal(t, "invalid_input", ErrorTypeInvalidInput.String())
	assert.Equal(t, "unknown", ErrorType(99).String())
}

func TestAppErrorIs(t *testing.T) {
	a := NewNotFoundError("task", "1")
	b := NewNotFoundError("task", "2")
	c := NewValidationError("bad", nil)

	assert.True(t, a.Is(b))
	assert.False(t, a.Is(c))
}

func TestWithContext(t *testing.T) {
	err := NewValidationError("bad input", nil).WithContext("field", "description")

	value, ok := err.GetContext("field")
	assert.True(t, ok)
	assert.Equal(t, "description", value)

	_, ok = err.GetContext("missing")
	assert.False(t, ok)
}
