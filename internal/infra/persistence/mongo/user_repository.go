package mongo

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoLib "go.mongodb.org/mongo-driver/mongo"

	"titlecheck/internal/domain/entity"
	domainerrors "titlecheck/internal/domain/errors"
	"titlecheck/internal/domain/repository"
	"titlecheck/internal/errors"
)

// userRepository implements repository.UserRepository on a MongoDB collection.
type userRepository struct {
	collection *mongoLib.Collection
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(collection *mongoLib.Collection) repository.UserRepository {
	return &userRepository{collection: collection}
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var doc userDocument

	err := repo.collection.FindOne(ctx, bson.D{{Key: "email", Value: entity.NormalizeEmail(email)}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongoLib.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&doc), nil
}

// Create inserts the user. The unique indexes reject a second account with the same email or username.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	doc := toUserDocument(user)
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now().UTC()
	}

	result, err := repo.collection.InsertOne(ctx, doc)
	if err != nil {
		if mongoLib.IsDuplicateKeyError(err) {
			return classifyDuplicate(err)
		}

		return errors.Wrap(err, "failed to create user")
	}

	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = id.Hex()
	}
	user.Email = doc.Email
	user.CreatedAt = doc.CreatedAt

	return nil
}

// classifyDuplicate maps a duplicate key error to the conflicting field using the violated index name.
func classifyDuplicate(err error) error {
	if strings.Contains(err.Error(), usernameIndexName) {
		return errors.WithStack(domainerrors.ErrUsernameTaken)
	}

	return errors.WithStack(domainerrors.ErrEmailAlreadyRegistered)
}
