package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	upstream := errors.New("connection refused")

	assert.Equal(t, http.StatusBadRequest, HTTPStatus(NewValidationError("bad limit")))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(NewNotFoundError("menu item not found")))
	assert.Equal(t, http.StatusBadGateway, HTTPStatus(NewExternalError("cms", upstream)))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(upstream))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(fmt.Errorf("load item: %w", NewNotFoundError("gone"))))
}

func TestExternalError_Unwraps(t *testing.T) {
	upstream := errors.New("timeout")
	err := NewExternalError("cms", upstream)

	assert.ErrorIs(t, err, upstream)
	assert.Equal(t, "timeout", err.Details)
	assert.Contains(t, err.Error(), "cms")
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(fmt.Errorf("wrap: %w", NewNotFoundError("x"))))
	assert.False(t, IsNotFound(NewInternalError(errors.New("x"))))
	assert.False(t, IsNotFound(nil))
}
