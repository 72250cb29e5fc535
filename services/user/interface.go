package user

import (
	"caresync/models"
)

// UserService defines account management and authentication operations.
type UserService interface {
	RegisterUser(reg models.UserRegistration) (*models.AuthResponse, error)
	AuthenticateUser(creds models.Credentials) (*models.AuthResponse, error)
	GetUserByID(id string) (*models.User, error)
	UpdateProfile(id string, updates models.User) (*models.User, error)
	UpdatePassword(id, currentPassword, newPassword string) error
	RevokeAuthToken(id string) error
	DeleteUser(id string) error
	ListDoctors() ([]models.User, error)
}
