package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"titlecheck/internal/domain/entity"
	domainerrors "titlecheck/internal/domain/errors"
	"titlecheck/internal/domain/repository"
	"titlecheck/internal/errors"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memoryUserRepository is a map-backed store that enforces the same uniqueness rules as the real ones.
type memoryUserRepository struct {
	mu      sync.Mutex
	byEmail map[string]*entity.User
	writes  int
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{byEmail: make(map[string]*entity.User)}
}

func (r *memoryUserRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byEmail[entity.NormalizeEmail(email)]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	clone := *user

	return &clone, nil
}

func (r *memoryUserRepository) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	email := entity.NormalizeEmail(user.Email)
	if _, ok := r.byEmail[email]; ok {
		return errors.WithStack(domainerrors.ErrEmailAlreadyRegistered)
	}
	for _, existing := range r.byEmail {
		if existing.Username == user.Username {
			return errors.WithStack(domainerrors.ErrUsernameTaken)
		}
	}

	r.writes++
	stored := *user
	stored.ID = email
	stored.Email = email
	r.byEmail[email] = &stored
	user.ID = stored.ID

	return nil
}
