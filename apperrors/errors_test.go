package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKinds(t *testing.T) {
	nf := NotFound("project")
	assert.Equal(t, "project not found", nf.Error())
	assert.True(t, IsNotFound(nf))
	assert.False(t, IsInvalidState(nf))
	assert.False(t, IsProvider(nf))

	is := InvalidState("Need at least 10 photos to train model")
	assert.Equal(t, "Need at least 10 photos to train model", is.Error())
	assert.True(t, IsInvalidState(is))
	assert.False(t, IsNotFound(is))

	cause := errors.New("connection refused")
	pe := Provider("training", cause)
	assert.True(t, IsProvider(pe))
	assert.ErrorIs(t, pe, cause, "provider errors unwrap to the cause")
	assert.Contains(t, pe.Error(), "training")
}

func TestKindsSurviveWrapping(t *testing.T) {
	wrapped := fmt.Errorf("while generating preview: %w", InvalidState("Model training not completed"))
	assert.True(t, IsInvalidState(wrapped))
}
