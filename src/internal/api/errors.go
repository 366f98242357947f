package api

import (
	"encoding/json"
	"net/http"

	"github.com/maksimkurb/zte-goform/src/internal/errors"
	"github.com/maksimkurb/zte-goform/src/internal/log"
)

// ErrorCode represents standard API error codes.
type ErrorCode string

const (
	// ErrCodeInvalidRequest indicates malformed or invalid request data.
	ErrCodeInvalidRequest ErrorCode = "invalid_request"

	// ErrCodeNotFound indicates the requested resource was not found.
	ErrCodeNotFound ErrorCode = "not_found"

	// ErrCodeInternalError indicates an internal server error.
	ErrCodeInternalError ErrorCode = "internal_error"

	// ErrCodeValidationFailed indicates the query keys or command payload were rejected.
	ErrCodeValidationFailed ErrorCode = "validation_failed"

	// ErrCodeAuthFailed indicates the device rejected the configured password.
	ErrCodeAuthFailed ErrorCode = "auth_failed"

	// ErrCodeAccessDenied indicates a private value was requested without a session.
	ErrCodeAccessDenied ErrorCode = "access_denied"

	// ErrCodeDeviceTimeout indicates the device did not answer within the retry budget.
	ErrCodeDeviceTimeout ErrorCode = "device_timeout"

	// ErrCodeDeviceUnreachable indicates a connection or protocol failure.
	ErrCodeDeviceUnreachable ErrorCode = "device_unreachable"

	// ErrCodeForbidden indicates the client address is not allowed.
	ErrCodeForbidden ErrorCode = "forbidden"
)

// APIError represents a structured API error response.
type APIError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ErrorResponse wraps an APIError for JSON responses.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// NewAPIError creates a new APIError with the given code and message.
func NewAPIError(code ErrorCode, message string) APIError {
	return APIError{
		Code:    code,
		Message: message,
		Details: nil,
	}
}

// WithDetails adds details to an APIError.
func (e APIError) WithDetails(details map[string]interface{}) APIError {
	e.Details = details
	return e
}

// WriteError writes an error response to the HTTP response writer.
func WriteError(w http.ResponseWriter, statusCode int, err APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if encErr := json.NewEncoder(w).Encode(ErrorResponse{Error: err}); encErr != nil {
		log.Warnf("Failed to write error response: %v", encErr)
	}
}

// WriteInvalidRequest writes a 400 Bad Request error.
func WriteInvalidRequest(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusBadRequest, NewAPIError(ErrCodeInvalidRequest, message))
}

// WriteNotFound writes a 404 Not Found error.
func WriteNotFound(w http.ResponseWriter, resource string) {
	WriteError(w, http.StatusNotFound, NewAPIError(ErrCodeNotFound, resource+" not found"))
}

// WriteInternalError writes a 500 Internal Server Error.
func WriteInternalError(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusInternalServerError, NewAPIError(ErrCodeInternalError, message))
}

// WriteForbidden writes a 403 Forbidden error.
func WriteForbidden(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusForbidden, NewAPIError(ErrCodeForbidden, message))
}

// WriteDeviceError maps a client error to a status by its error code.
func WriteDeviceError(w http.ResponseWriter, err error) {
	status, code := statusForError(err)
	if status >= http.StatusInternalServerError {
		log.Warnf("Device request failed: %v", err)
	}
	WriteError(w, status, NewAPIError(code, err.Error()))
}

func statusForError(err error) (int, ErrorCode) {
	switch errors.CodeOf(err) {
	case errors.ErrCodeValidation:
		return http.StatusBadRequest, ErrCodeValidationFailed
	case errors.ErrCodeAuth:
		return http.StatusUnauthorized, ErrCodeAuthFailed
	case errors.ErrCodeAccess:
		return http.StatusForbidden, ErrCodeAccessDenied
	case errors.ErrCodeTimeout:
		return http.StatusGatewayTimeout, ErrCodeDeviceTimeout
	case errors.ErrCodeTransport:
		return http.StatusBadGateway, ErrCodeDeviceUnreachable
	default:
		return http.StatusInternalServerError, ErrCodeInternalError
	}
}
