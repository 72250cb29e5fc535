package userRepo

import (
	"caresync/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines persistence operations for portal accounts.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByTokenHash(tokenHash string) (*models.User, error)
	Update(id string, updates bson.M) (*models.User, error)
	Delete(id string) error
	ListByRole(role string) ([]models.User, error)
}
