package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Error codes returned to clients
const (
	// Authentication (AUTH)
	ErrInvalidToken          = "AUTH_001" // missing or malformed token
	ErrExpiredToken          = "AUTH_002" // token past its expiry
	ErrInsufficientPrivilege = "AUTH_003" // valid token without the admin role

	// Validation (VAL)
	ErrInvalidRequest      = "VAL_001"
	ErrMissingRequiredData = "VAL_002"
	ErrInvalidFormat       = "VAL_003"
	ErrNotFound            = "VAL_004"
	ErrMethodNotAllowed    = "VAL_005"

	// Server (SRV)
	ErrInternalServer = "SRV_001"
	ErrJobRunning     = "SRV_004"
	ErrNotConfigured  = "SRV_005"
)

var httpStatusMap = map[string]int{
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrNotFound:              http.StatusNotFound,
	ErrMethodNotAllowed:      http.StatusMethodNotAllowed,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrJobRunning:            http.StatusConflict,
	ErrNotConfigured:         http.StatusServiceUnavailable,
}

// APIError is the error body every endpoint writes.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// StatusFor returns the HTTP status bound to code, 500 for unknown codes.
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError writes the standard error body with the status bound to code.
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}

