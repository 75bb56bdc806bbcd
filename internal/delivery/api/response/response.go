// Package response renders the JSON bodies returned by the API.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	domainerrors "titlecheck/internal/domain/errors"
)

// AuthResponse is returned by signup and login.
type AuthResponse struct {
	Message  string `json:"message"`
	JWTToken string `json:"jwtToken"`
}

// ErrorResponse is the error body of the account endpoints.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// CheckResponse carries the scorer output verbatim.
type CheckResponse struct {
	Feedback json.RawMessage `json:"feedback"`
}

// CheckErrorResponse is the error body of the title check endpoint.
type CheckErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status string `json:"status"`
}

// Auth returns a successful signup or login response
func Auth(c echo.Context, statusCode int, message, token string) error {
	return c.JSON(statusCode, AuthResponse{
		Message:  message,
		JWTToken: token,
	})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string) error {
	return c.JSON(statusCode, ErrorResponse{
		Message: message,
		Code:    errorCode,
	})
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context) error {
	return FromAppError(c, domainerrors.ErrInternalError)
}

// FromAppError renders an application error with its own status, code and message.
func FromAppError(c echo.Context, appErr domainerrors.AppError) error {
	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message())
}

// Feedback returns the scorer output
func Feedback(c echo.Context, feedback json.RawMessage) error {
	return c.JSON(http.StatusOK, CheckResponse{Feedback: feedback})
}

// CheckError returns an error response in the title check shape
func CheckError(c echo.Context, appErr domainerrors.AppError) error {
	return c.JSON(appErr.HTTPCode(), CheckErrorResponse{
		Error: appErr.Message(),
		Code:  appErr.ErrorCode(),
	})
}

// Health returns the liveness response
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}
