package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

var (
	// ErrWorkoutNotFound is returned when a workout is not found.
	ErrWorkoutNotFound = errors.New("workout not found")
	// ErrJobNotFound is returned when a job is not found.
	ErrJobNotFound = errors.New("job not found")
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidID is returned when a path identifier is not a valid UUID.
	ErrInvalidID = errors.New("invalid id")
	// ErrValidation is returned when required fields are missing or mistyped.
	ErrValidation = errors.New("validation failed")
	// ErrForbidden is returned when the caller does not own the resource.
	ErrForbidden = errors.New("forbidden")
	// ErrUnauthenticated is returned when no credential accompanies the request.
	ErrUnauthenticated = errors.New("authorization token required")
	// ErrInvalidToken is returned when the bearer token is expired or forged.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Validationf wraps ErrValidation with a field-level detail message.
func Validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrValidation}, args...)...)
}

// ErrorResponse is the uniform failure body. Every failed request yields
// exactly this shape; internals never leak past it.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HTTPError carries a status alongside a client-safe message.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Anything unrecognized is
// treated as a store failure and reported generically.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrWorkoutNotFound),
		errors.Is(err, ErrJobNotFound),
		errors.Is(err, ErrUserNotFound):
		// Missing documents and unmatched routes share one client message.
		return NewHTTPError(http.StatusNotFound, "not found")
	case errors.Is(err, ErrInvalidID), errors.Is(err, ErrValidation):
		return NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrUnauthenticated), errors.Is(err, ErrInvalidToken):
		return NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}

// HTTPErrorHandler is the single terminal point that converts any error
// raised upstream into a status code and a uniform {"error": ...} body.
// Echo funnels unmatched routes here as echo.ErrNotFound, which covers the
// unknown-endpoint case.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "internal server error"

	var httpErr *HTTPError
	var echoErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		status = httpErr.StatusCode
		message = httpErr.Message
	case errors.As(err, &echoErr):
		status = echoErr.Code
		if s, ok := echoErr.Message.(string); ok {
			message = s
		}
		if status == http.StatusNotFound || status == http.StatusMethodNotAllowed {
			// Unmatched path or verb: uniform not-found body.
			status = http.StatusNotFound
			message = "not found"
		}
	default:
		mapped := MapErrorToHTTP(err)
		status = mapped.StatusCode
		message = mapped.Message
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, ErrorResponse{Error: message})
	}
	if err != nil {
		c.Logger().Error(err)
	}
}
