package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"titlecheck/config"
	domainerrors "titlecheck/internal/domain/errors"
	"titlecheck/internal/errors"
	mockSvc "titlecheck/internal/mocks/service"
	mockUC "titlecheck/internal/mocks/usecase"
	"titlecheck/internal/usecase"
)

func newAuthHandler(t *testing.T, uc usecase.AuthUsecase) *AuthHandler {
	tokenService := mockSvc.NewMockTokenService(t)
	tokenService.EXPECT().GetTokenDuration().Return(time.Hour)

	cfg := &config.Config{}
	cfg.Cookie.Name = "session"

	return NewAuthHandler(AuthHandlerParams{Usecase: uc, TokenService: tokenService, Config: cfg})
}

func TestAuthHandler_Login_SetsConfiguredCookie(t *testing.T) {
	uc := mockUC.NewMockAuthUsecase(t)
	h := newAuthHandler(t, uc)

	expiresAt := time.Now().Add(time.Hour)
	uc.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Email: "a@x.io", Password: "p"}).
		Return(&usecase.AuthOutput{Token: "tok", ExpiresAt: expiresAt}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"a@x.io","password":"p"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Login(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Login successful","jwtToken":"tok"}`, rec.Body.String())

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "session", cookies[0].Name)
	assert.Equal(t, "tok", cookies[0].Value)
	assert.Equal(t, 3600, cookies[0].MaxAge)
}

func TestAuthHandler_Signup_PropagatesUsecaseError(t *testing.T) {
	uc := mockUC.NewMockAuthUsecase(t)
	h := newAuthHandler(t, uc)

	uc.EXPECT().
		Signup(mock.Anything, mock.AnythingOfType("*usecase.SignupInput")).
		Return(nil, errors.WithStack(domainerrors.ErrUsernameTaken))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(`{"username":"a","email":"a@x.io","password":"p"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := h.Signup(e.NewContext(req, rec))

	assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))
	assert.Empty(t, rec.Result().Cookies())
}

func TestTitleHandler_Check(t *testing.T) {
	tests := []struct {
		name       string
		ucErr      error
		status     int
		expectBody string
	}{
		{
			name:       "success",
			status:     http.StatusOK,
			expectBody: `{"feedback":{"score":1}}`,
		},
		{
			name:       "app error keeps its message",
			ucErr:      errors.WithStack(domainerrors.ErrScorerOutput),
			status:     http.StatusInternalServerError,
			expectBody: `{"error":"An error occurred while processing the title","code":"SCORER_OUTPUT_INVALID"}`,
		},
		{
			name:       "unknown error becomes execution error",
			ucErr:      errors.New("boom"),
			status:     http.StatusInternalServerError,
			expectBody: `{"error":"An error occurred while processing the title","code":"SCORER_EXECUTION_FAILED"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockUC.NewMockTitleUsecase(t)
			call := uc.EXPECT().CheckTitle(mock.Anything, &usecase.CheckTitleInput{Title: "a b"})
			if tt.ucErr != nil {
				call.Return(nil, tt.ucErr)
			} else {
				call.Return(&usecase.CheckTitleOutput{Feedback: json.RawMessage(`{"score":1}`)}, nil)
			}

			h := NewTitleHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

			e := echo.New()
			rec := httptest.NewRecorder()
			require.NoError(t, h.Check(e.NewContext(httptest.NewRequest(http.MethodGet, "/check?title=a+b", nil), rec)))

			assert.Equal(t, tt.status, rec.Code)
			assert.JSONEq(t, tt.expectBody, rec.Body.String())
		})
	}
}

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()

	require.NoError(t, HealthCheck(e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
