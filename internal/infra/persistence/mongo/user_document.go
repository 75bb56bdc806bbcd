package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"titlecheck/internal/domain/entity"
)

// userDocument is the stored shape of a user in the users collection.
type userDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Username  string             `bson:"username"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func toUserDocument(user *entity.User) *userDocument {
	return &userDocument{
		Username:  user.Username,
		Email:     entity.NormalizeEmail(user.Email),
		Password:  user.PasswordHash,
		CreatedAt: user.CreatedAt,
	}
}

func toUserDomain(doc *userDocument) *entity.User {
	return &entity.User{
		ID:           doc.ID.Hex(),
		Username:     doc.Username,
		Email:        doc.Email,
		PasswordHash: doc.Password,
		CreatedAt:    doc.CreatedAt,
	}
}
