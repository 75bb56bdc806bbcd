package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"titlecheck/config"
	"titlecheck/internal/domain/service"
	"titlecheck/internal/errors"
)

const defaultTokenTTL = time.Hour

// ErrMissingSecret is returned when the signing secret is not configured.
var ErrMissingSecret = errors.New("jwt secret must be provided")

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte        // Secret key for signing session tokens.
	ttl    time.Duration // Time-to-live for session tokens.
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It fails when no secret is configured, which aborts application startup.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.WithStack(ErrMissingSecret)
	}

	ttl := cfg.JWT.TTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	return &jwtService{
		secret: []byte(cfg.JWT.Secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue creates an HS256 token carrying the username and email of the account.
func (s *jwtService) Issue(username, email string) (string, time.Time, error) {
	issuedAt := s.now().Truncate(time.Second)
	expiresAt := issuedAt.Add(s.ttl)

	claims := service.Claims{
		Username: username,
		Email:    email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "sign token")
	}

	return signed, expiresAt, nil
}

// GetTokenDuration returns the configured duration for session tokens.
func (s *jwtService) GetTokenDuration() time.Duration {
	return s.ttl
}
