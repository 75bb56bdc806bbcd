// Package handler contains the HTTP handlers of the API.
package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"titlecheck/config"
	"titlecheck/internal/delivery/api/response"
	domainerrors "titlecheck/internal/domain/errors"
	"titlecheck/internal/domain/service"
	"titlecheck/internal/usecase"
)

// AuthHandler serves signup and login.
type AuthHandler struct {
	uc           usecase.AuthUsecase
	cookieName   string
	secureCookie bool
	tokenTTL     time.Duration
}

type AuthHandlerParams struct {
	fx.In

	Usecase      usecase.AuthUsecase
	TokenService service.TokenService
	Config       *config.Config
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		uc:           params.Usecase,
		cookieName:   params.Config.Cookie.Name,
		secureCookie: params.Config.IsProduction(),
		tokenTTL:     params.TokenService.GetTokenDuration(),
	}
}

// Signup handles the creation of a new account.
func (h *AuthHandler) Signup(c echo.Context) error {
	var input usecase.SignupInput
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(domainerrors.ErrInvalidInput)
	}

	output, err := h.uc.Signup(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.setTokenCookie(c, output)

	return response.Auth(c, http.StatusCreated, "Signup successful", output.Token)
}

// Login handles credential verification.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(domainerrors.ErrInvalidInput)
	}

	output, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.setTokenCookie(c, output)

	return response.Auth(c, http.StatusOK, "Login successful", output.Token)
}

func (h *AuthHandler) setTokenCookie(c echo.Context, output *usecase.AuthOutput) {
	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    output.Token,
		Path:     "/",
		Expires:  output.ExpiresAt,
		MaxAge:   int(h.tokenTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteStrictMode,
	})
}
