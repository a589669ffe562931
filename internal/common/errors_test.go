package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserError(t *testing.T) {
	cause := fmt.Errorf("read export: %w", ErrEmptyInput)
	err := NewUserError("analyse mislukt", cause)

	assert.Equal(t, "analyse mislukt: read export: input contains no data rows", err.Error())
	assert.ErrorIs(t, err, ErrEmptyInput)

	var userErr *UserError
	assert.True(t, errors.As(err, &userErr))
	assert.Equal(t, "analyse mislukt", userErr.UserMessage)
}

func TestUserError_WithoutCause(t *testing.T) {
	err := NewUserError("config ontbreekt", nil)

	assert.Equal(t, "config ontbreekt", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}
