package dto

import "net/http"

// Error codes returned by the API. Domain error codes map onto these
// one to one.
const (
	ErrCodeInternal     = "INTERNAL"
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeValidation   = "VALIDATION"
	ErrCodeRateLimited  = "RATE_LIMIT_EXCEEDED"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeNotFound     = "NOT_FOUND"
)

// statusByCode maps error codes to HTTP status codes
var statusByCode = map[string]int{
	ErrCodeInternal:     http.StatusInternalServerError,
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeValidation:   http.StatusBadRequest,
	ErrCodeRateLimited:  http.StatusTooManyRequests,
	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeNotFound:     http.StatusNotFound,

	"ALREADY_EXISTS":       http.StatusConflict,
	"INVALID_INPUT":        http.StatusBadRequest,
	"INVALID_PRODUCT":      http.StatusBadRequest,
	"INVALID_REVIEW":       http.StatusBadRequest,
	"INVALID_NOTIFICATION": http.StatusBadRequest,
	"INVALID_STATUS":       http.StatusUnprocessableEntity,
	"INVALID_COUPON":       http.StatusUnprocessableEntity,
	"EMPTY_CART":           http.StatusUnprocessableEntity,
	"WEAK_PASSWORD":        http.StatusBadRequest,
	"INVALID_CREDENTIALS":  http.StatusUnauthorized,
	"TOKEN_EXPIRED":        http.StatusUnauthorized,
}

// GetHTTPStatus resolves the HTTP status for an error code. Unknown
// codes fall back to 500 so nothing leaks as a silent success.
func GetHTTPStatus(code string) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
