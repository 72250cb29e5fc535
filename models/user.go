package models

import "time"

// Roles recognized by the portal.
const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
)

// User represents a portal account, patient or doctor.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Role         string    `bson:"role" json:"role"`
	PhoneNumber  string    `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	Specialty    string    `bson:"specialty,omitempty" json:"specialty,omitempty"` // doctors only
	FCMToken     string    `bson:"fcmToken,omitempty" json:"-"`
	TokenHash    string    `bson:"tokenHash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// IsDoctor reports whether the account holds the doctor role.
func (u *User) IsDoctor() bool {
	return u.Role == RoleDoctor
}

// UserRegistration is the signup payload.
type UserRegistration struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	Role        string `json:"role" binding:"required"`
	PhoneNumber string `json:"phoneNumber"`
	Specialty   string `json:"specialty"`
}

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	FCMToken string `json:"fcmToken"`
}

// AuthResponse is returned on successful authentication.
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
