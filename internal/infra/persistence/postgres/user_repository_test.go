package postgres

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"titlecheck/config"
	"titlecheck/internal/domain/entity"
	domainerrors "titlecheck/internal/domain/errors"
	"titlecheck/internal/domain/repository"
	"titlecheck/internal/errors"
	"titlecheck/internal/infra/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         newGormSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)), &config.Config{}),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Every connection to :memory: is a separate database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(context.Background(), db))

	return db
}

func newUser(username, email string) *entity.User {
	return &entity.User{
		Username:     username,
		Email:        email,
		PasswordHash: "$2a$10$hash",
	}
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	user := newUser("alice", "Alice@Example.com")
	require.NoError(t, repo.Create(ctx, user))
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.False(t, user.CreatedAt.IsZero())

	found, err := repo.FindByEmail(ctx, "ALICE@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, "alice", found.Username)
	assert.Equal(t, "$2a$10$hash", found.PasswordHash)
}

func TestUserRepository_CreateLongIdentity(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	username := strings.Repeat("u", 300)
	email := strings.Repeat("e", 300) + "@example.com"
	require.NoError(t, repo.Create(ctx, newUser(username, email)))

	found, err := repo.FindByEmail(ctx, email)
	require.NoError(t, err)
	assert.Equal(t, username, found.Username)

	columns, err := db.Migrator().ColumnTypes(&model.UserModel{})
	require.NoError(t, err)
	for _, column := range columns {
		if column.Name() == "username" || column.Name() == "email" {
			assert.True(t, strings.EqualFold("text", column.DatabaseTypeName()), column.Name())
		}
	}
}

func TestUserRepository_FindByEmailNotFound(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	_, err := repo.FindByEmail(context.Background(), "nobody@example.com")
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))
}

func TestUserRepository_CreateDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newUser("alice", "alice@example.com")))

	err := repo.Create(ctx, newUser("alice2", "ALICE@example.com"))
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyRegistered))

	var count int64
	require.NoError(t, db.Table("users").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUserRepository_CreateDuplicateUsername(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newUser("alice", "alice@example.com")))

	err := repo.Create(ctx, newUser("alice", "other@example.com"))
	assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))
}

func TestIsUniqueConstraintViolation(t *testing.T) {
	assert.False(t, isUniqueConstraintViolation(nil))
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(errors.New(`ERROR: duplicate key value violates unique constraint "idx_users_email" (SQLSTATE 23505)`)))
	assert.False(t, isUniqueConstraintViolation(errors.New("connection refused")))
}
