package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, BadRequest("x").Code)
	assert.Equal(t, http.StatusUnauthorized, Unauthorized("x").Code)
	assert.Equal(t, http.StatusForbidden, Forbidden("x").Code)
	assert.Equal(t, http.StatusNotFound, NotFound("x").Code)
	assert.Equal(t, http.StatusTooManyRequests, TooManyRequests("x").Code)

	cause := errors.New("connection refused")
	internal := Internal(cause)
	assert.Equal(t, http.StatusInternalServerError, internal.Code)
	assert.Equal(t, "Internal Server Error", internal.Error())
	assert.Equal(t, "connection refused", internal.Detail())
	assert.ErrorIs(t, internal, cause)
}

func TestAs(t *testing.T) {
	wrapped := fmt.Errorf("search: %w", NotFound("talent not found"))

	appErr, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, appErr.Code)
	assert.Equal(t, "talent not found", appErr.Detail())

	_, ok = As(errors.New("plain"))
	assert.False(t, ok)
}
