package dto

import (
	"net/http"

	"github.com/autoexpert/backend/internal/domain/shared"
)

// Transport-level error codes. Domain codes pass through unchanged; these
// cover failures that never reach the application layer.
const (
	ErrCodeBadRequest = "BAD_REQUEST"
	ErrCodeInternal   = "INTERNAL"
)

// errorCodeHTTPStatus maps error codes to HTTP status codes. A rejected
// status transition is a conflict with the current state of the mission, not
// a malformed request.
var errorCodeHTTPStatus = map[string]int{
	shared.CodeValidation:        http.StatusBadRequest,
	shared.CodeNotFound:          http.StatusNotFound,
	shared.CodeConflict:          http.StatusConflict,
	shared.CodeInvalidTransition: http.StatusConflict,
	shared.CodeForbidden:         http.StatusForbidden,
	shared.CodeUnauthorized:      http.StatusUnauthorized,

	ErrCodeBadRequest: http.StatusBadRequest,
	ErrCodeInternal:   http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Unknown codes fall back to 500 Internal Server Error.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
