package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrMissingFields is returned when a required request field is empty or absent.
	ErrMissingFields = errors.New("missing required fields")
	// ErrEmailExists is returned when signing up with an already registered email.
	ErrEmailExists = errors.New("email already registered")
	// ErrUserNotFound is returned when no user exists for the given email.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials is returned when the password does not verify.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNotFound is returned when a requested resource does not exist.
	ErrNotFound = errors.New("resource not found")
	// ErrNotConfigured is returned when no relational data store is configured.
	ErrNotConfigured = errors.New("data store not configured")
	// ErrInvalidToken is returned when a token is invalid or expired.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. The short wire messages
// ("missing", "exists", ...) are the contract the dashboard client matches on.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrMissingFields):
		return NewHTTPError(http.StatusBadRequest, "missing", "MISSING_FIELDS")
	case errors.Is(err, ErrEmailExists):
		return NewHTTPError(http.StatusConflict, "exists", "EMAIL_EXISTS")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusUnauthorized, "not_found", "USER_NOT_FOUND")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, "invalid", "INVALID_CREDENTIALS")
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, "not_found", "NOT_FOUND")
	case errors.Is(err, ErrNotConfigured):
		return NewHTTPError(http.StatusNotImplemented, "not_configured", "STORE_NOT_CONFIGURED")
	case errors.Is(err, ErrInvalidToken):
		return NewHTTPError(http.StatusUnauthorized, "invalid_token", "INVALID_TOKEN")
	default:
		return NewHTTPError(http.StatusInternalServerError, "server_error", "INTERNAL_ERROR")
	}
}
