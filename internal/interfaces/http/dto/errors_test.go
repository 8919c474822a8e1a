package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, GetHTTPStatus("NOT_FOUND"))
	assert.Equal(t, http.StatusConflict, GetHTTPStatus("ALREADY_EXISTS"))
	assert.Equal(t, http.StatusUnauthorized, GetHTTPStatus("INVALID_CREDENTIALS"))
	assert.Equal(t, http.StatusUnprocessableEntity, GetHTTPStatus("EMPTY_CART"))
	assert.Equal(t, http.StatusUnprocessableEntity, GetHTTPStatus("INVALID_COUPON"))

	// Unknown codes must not masquerade as client errors.
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus("SOMETHING_ELSE"))
}

func TestNewErrorResponse(t *testing.T) {
	resp := NewErrorResponse("NOT_FOUND", "Resource not found")
	assert.False(t, resp.Success)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
	assert.Nil(t, resp.Data)
}
