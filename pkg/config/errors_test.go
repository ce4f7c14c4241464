package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := NewValidationError("dedup", "high_threshold", ErrInvalidValue)

		assert.Equal(t, "dedup: field 'high_threshold': invalid field value", err.Error())
		assert.ErrorIs(t, err, ErrInvalidValue)
	})

	t.Run("without field", func(t *testing.T) {
		err := NewValidationError("queue", "", errors.New("section is empty"))

		assert.Equal(t, "queue: section is empty", err.Error())
	})

	t.Run("unwraps through fmt wrapping", func(t *testing.T) {
		inner := NewValidationError("llm", "model", ErrMissingRequiredField)
		wrapped := errors.Join(ErrValidationFailed, inner)

		assert.ErrorIs(t, wrapped, ErrMissingRequiredField)

		var ve *ValidationError
		assert.ErrorAs(t, wrapped, &ve)
		assert.Equal(t, "llm", ve.Section)
	})
}

func TestLoadError(t *testing.T) {
	err := NewLoadError("assignflow.yaml", ErrInvalidYAML)

	assert.Contains(t, err.Error(), "assignflow.yaml")
	assert.ErrorIs(t, err, ErrInvalidYAML)
}
