package errors

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"workout not found", ErrWorkoutNotFound, http.StatusNotFound},
		{"job not found", ErrJobNotFound, http.StatusNotFound},
		{"user not found", ErrUserNotFound, http.StatusNotFound},
		{"invalid id", ErrInvalidID, http.StatusBadRequest},
		{"validation", Validationf("title is required"), http.StatusBadRequest},
		{"unauthenticated", ErrUnauthenticated, http.StatusUnauthorized},
		{"invalid token", ErrInvalidToken, http.StatusUnauthorized},
		{"forbidden", ErrForbidden, http.StatusForbidden},
		{"opaque store failure", errors.New("dial tcp: connection refused"), http.StatusInternalServerError},
		{"wrapped store failure", fmt.Errorf("find workout: %w", errors.New("driver: bad connection")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.wantStatus, got.StatusCode)
		})
	}
}

func TestMapErrorToHTTP_NotFoundMessageIsUniform(t *testing.T) {
	for _, err := range []error{ErrWorkoutNotFound, ErrJobNotFound, ErrUserNotFound} {
		got := MapErrorToHTTP(err)
		assert.Equal(t, "not found", got.Message)
	}
}

func TestMapErrorToHTTP_NeverLeaksInternals(t *testing.T) {
	internal := errors.New("Error 1045: Access denied for user 'root'@'localhost'")
	got := MapErrorToHTTP(internal)
	assert.Equal(t, http.StatusInternalServerError, got.StatusCode)
	assert.Equal(t, "internal server error", got.Message)
}

func TestHTTPErrorHandler(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = HTTPErrorHandler

	run := func(err error) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		HTTPErrorHandler(err, c)
		return rec
	}

	t.Run("domain error", func(t *testing.T) {
		rec := run(ErrWorkoutNotFound)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"not found"}`, rec.Body.String())
	})

	t.Run("explicit http error", func(t *testing.T) {
		rec := run(NewHTTPError(http.StatusConflict, "user already exists"))
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.JSONEq(t, `{"error":"user already exists"}`, rec.Body.String())
	})

	t.Run("echo not found normalized", func(t *testing.T) {
		rec := run(echo.ErrNotFound)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"not found"}`, rec.Body.String())
	})

	t.Run("echo method not allowed normalized", func(t *testing.T) {
		rec := run(echo.ErrMethodNotAllowed)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"not found"}`, rec.Body.String())
	})

	t.Run("opaque failure stays generic", func(t *testing.T) {
		rec := run(errors.New("gorm: table workouts has gone away"))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
	})
}
