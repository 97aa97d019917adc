package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrNotFound is returned when a lookup by id finds nothing and the caller needs a record.
	ErrNotFound = errors.New("record not found")
	// ErrCarouselLimit is returned when a product would exceed the carousel capacity.
	ErrCarouselLimit = errors.New("carousel limit reached")
	// ErrInvalidCredentials is returned when username or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrInvalidRefreshToken is returned when a refresh token is invalid or expired.
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
	// ErrUnknownChannel is returned by the dispatcher for an unregistered operation.
	ErrUnknownChannel = errors.New("unknown channel")
)

// Error codes carried in HTTPError.Code.
const (
	CodeValidation    = "VALIDATION_ERROR"
	CodeNotFound      = "NOT_FOUND"
	CodeCarouselLimit = "CAROUSEL_LIMIT_REACHED"
	CodeUnauthorized  = "UNAUTHORIZED"
	CodeInternal      = "INTERNAL_ERROR"
)

// StatusCoder is implemented by errors that carry their own status code.
type StatusCoder interface {
	Status() int
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError is a business error with an HTTP-like status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Status implements StatusCoder.
func (e *HTTPError) Status() int {
	return e.StatusCode
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// Validation returns a 400 business error for a missing or malformed field.
func Validation(message string) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, message, CodeValidation)
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// StatusOf returns the status carried by err, or 500 when it carries none.
func StatusOf(err error) int {
	var sc StatusCoder
	if errors.As(err, &sc) && sc.Status() > 0 {
		return sc.Status()
	}
	return MapErrorToHTTP(err).StatusCode
}

// MapErrorToHTTP maps domain errors to HTTP errors. Errors already carrying a
// status are returned as is; anything unknown becomes a 500 keeping its message.
func MapErrorToHTTP(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	switch {
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), CodeNotFound)
	case errors.Is(err, ErrUnknownChannel):
		return NewHTTPError(http.StatusNotFound, err.Error(), CodeNotFound)
	case errors.Is(err, ErrCarouselLimit):
		return NewHTTPError(http.StatusBadRequest, err.Error(), CodeCarouselLimit)
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrInvalidRefreshToken):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), CodeUnauthorized)
	default:
		return NewHTTPError(http.StatusInternalServerError, err.Error(), CodeInternal)
	}
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
