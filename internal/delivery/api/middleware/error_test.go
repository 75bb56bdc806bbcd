package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	domainerrors "titlecheck/internal/domain/errors"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		status   int
		expected string
	}{
		{
			name:     "wrapped app error",
			err:      errors.Wrap(domainerrors.ErrInvalidCredentials, "login"),
			status:   http.StatusUnauthorized,
			expected: `{"message":"Invalid credentials.","code":"INVALID_CREDENTIALS"}`,
		},
		{
			name:     "echo http error",
			err:      echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"),
			status:   http.StatusMethodNotAllowed,
			expected: `{"message":"Method Not Allowed","code":"HTTP_ERROR"}`,
		},
		{
			name:     "unknown error is hidden",
			err:      errors.New("dial tcp 10.0.0.1:27017: connection refused"),
			status:   http.StatusInternalServerError,
			expected: `{"message":"Server error","code":"INTERNAL_ERROR"}`,
		},
	}

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodPost, "/login", nil), rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.status, rec.Code)
			assert.JSONEq(t, tt.expected, rec.Body.String())
		})
	}
}

func TestErrorMiddleware_CommittedResponse(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	_ = c.NoContent(http.StatusAccepted)

	NewErrorMiddleware(slog.Default()).HandleHTTPError(errors.New("late"), c)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Empty(t, rec.Body.String())
}
