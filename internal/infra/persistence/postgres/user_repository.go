package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"titlecheck/internal/domain/entity"
	domainerrors "titlecheck/internal/domain/errors"
	"titlecheck/internal/domain/repository"
	"titlecheck/internal/errors"
	"titlecheck/internal/infra/persistence/model"
)

// userRepository implements repository.UserRepository using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	err := repo.db.WithContext(ctx).
		Where("email = ?", entity.NormalizeEmail(email)).
		Take(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// Create inserts the user. Uniqueness is enforced by the table's unique indexes.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	id, err := uuid.NewV7()
	if err != nil {
		return errors.Wrap(err, "failed to generate user id")
	}

	userM := &model.UserModel{
		ID:           id,
		Username:     user.Username,
		Email:        entity.NormalizeEmail(user.Email),
		PasswordHash: user.PasswordHash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repo.classifyDuplicate(ctx, userM.Email)
		}

		return errors.Wrap(err, "failed to create user")
	}

	user.ID = userM.ID.String()
	user.Email = userM.Email
	user.CreatedAt = userM.CreatedAt

	return nil
}

// classifyDuplicate tells an email conflict from a username conflict.
// Translated driver errors do not always carry the violated index name.
func (repo *userRepository) classifyDuplicate(ctx context.Context, email string) error {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.UserModel{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to classify duplicate user")
	}

	if count > 0 {
		return errors.WithStack(domainerrors.ErrEmailAlreadyRegistered)
	}

	return errors.WithStack(domainerrors.ErrUsernameTaken)
}

func toUserDomain(userM *model.UserModel) *entity.User {
	return &entity.User{
		ID:           userM.ID.String(),
		Username:     userM.Username,
		Email:        userM.Email,
		PasswordHash: userM.PasswordHash,
		CreatedAt:    userM.CreatedAt,
	}
}
