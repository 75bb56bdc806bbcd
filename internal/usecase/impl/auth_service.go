// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"go.uber.org/fx"

	deliverycontext "titlecheck/internal/delivery/context"
	"titlecheck/internal/domain/entity"
	domainerrors "titlecheck/internal/domain/errors"
	"titlecheck/internal/domain/repository"
	"titlecheck/internal/domain/service"
	"titlecheck/internal/errors"
	"titlecheck/internal/usecase"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	validate     *validator.Validate
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Validate     *validator.Validate
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		validate:     params.Validate,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup creates an account and issues its first session token.
func (srv *authService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.AuthOutput, error) {
	if input == nil || srv.validate.StructCtx(ctx, input) != nil {
		return nil, errors.WithStack(domainerrors.ErrSignupFieldsRequired)
	}

	email := entity.NormalizeEmail(input.Email)

	_, err := srv.userRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, errors.WithStack(domainerrors.ErrEmailAlreadyRegistered)
	case !errors.Is(err, repository.ErrUserNotFound):
		return nil, errors.Wrap(err, "failed to check existing user")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		Username:     input.Username,
		Email:        email,
		PasswordHash: hash,
	}

	// A concurrent signup can still win the race; the store's unique indexes report it as a domain error.
	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	output, err := srv.issue(user)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User signed up",
		slog.String("userID", user.ID),
		slog.String("username", user.Username))

	return output, nil
}

// Login verifies the credentials and issues a fresh session token.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	if input == nil || srv.validate.StructCtx(ctx, input) != nil {
		return nil, errors.WithStack(domainerrors.ErrLoginFieldsRequired)
	}

	user, err := srv.userRepo.FindByEmail(ctx, entity.NormalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Debug("Password mismatch", slog.String("userID", user.ID))

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	output, err := srv.issue(user)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User logged in", slog.String("userID", user.ID))

	return output, nil
}

func (srv *authService) issue(user *entity.User) (*usecase.AuthOutput, error) {
	token, expiresAt, err := srv.tokenService.Issue(user.Username, user.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	return &usecase.AuthOutput{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}
