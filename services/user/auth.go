package user

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	userRepo "caresync/database/repository/user"
	"caresync/models"
	"caresync/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 72 * time.Hour

// DefaultUserService is the production implementation of UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// authSession is the Redis-held record of a live login.
type authSession struct {
	UserID  string    `json:"userId"`
	Email   string    `json:"email"`
	Role    string    `json:"role"`
	LoginAt time.Time `json:"loginAt"`
}

// RegisterUser creates an account and signs the caller in.
func (s *DefaultUserService) RegisterUser(reg models.UserRegistration) (*models.AuthResponse, error) {
	if reg.Role != models.RolePatient && reg.Role != models.RoleDoctor {
		return nil, fmt.Errorf("invalid role %q", reg.Role)
	}

	existing, err := s.Repo.GetByEmail(reg.Email)
	if err != nil {
		utils.GetLogger().Error("RegisterUser: email lookup failed", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &models.User{
		ID:           uuid.NewString(),
		Name:         reg.Name,
		Email:        reg.Email,
		PasswordHash: string(hash),
		Role:         reg.Role,
		PhoneNumber:  reg.PhoneNumber,
		Specialty:    reg.Specialty,
	}
	if err := s.Repo.Create(u); err != nil {
		return nil, err
	}

	return s.issueToken(u)
}

// AuthenticateUser verifies credentials and issues a fresh token, replacing
// any previous session.
func (s *DefaultUserService) AuthenticateUser(creds models.Credentials) (*models.AuthResponse, error) {
	u, err := s.Repo.GetByEmail(creds.Email)
	if err != nil {
		utils.GetLogger().Error("AuthenticateUser: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if u == nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(creds.Password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if creds.FCMToken != "" && creds.FCMToken != u.FCMToken {
		if _, err := s.Repo.Update(u.ID, bson.M{"fcmToken": creds.FCMToken}); err != nil {
			utils.GetLogger().Warn("AuthenticateUser: failed to store FCM token", zap.Error(err))
		}
	}

	return s.issueToken(u)
}

// issueToken signs a JWT, persists its hash on the account and records the
// session in Redis.
func (s *DefaultUserService) issueToken(u *models.User) (*models.AuthResponse, error) {
	token, err := utils.GenerateToken(u.ID, u.Email, u.Role, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	updated, err := s.Repo.Update(u.ID, bson.M{"tokenHash": utils.HashToken(token)})
	if err != nil {
		return nil, fmt.Errorf("failed to persist token hash: %w", err)
	}

	session := authSession{UserID: u.ID, Email: u.Email, Role: u.Role, LoginAt: time.Now()}
	if b, err := json.Marshal(session); err == nil {
		client := utils.GetAuthCacheClient()
		if err := client.Set(context.Background(), "session:"+u.ID, b, tokenTTL).Err(); err != nil {
			utils.GetLogger().Warn("issueToken: failed to cache session", zap.Error(err))
		}
	}

	return &models.AuthResponse{Token: token, User: updated}, nil
}

// RevokeAuthToken invalidates the account's live token.
func (s *DefaultUserService) RevokeAuthToken(id string) error {
	if _, err := s.Repo.Update(id, bson.M{"tokenHash": ""}); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	client := utils.GetAuthCacheClient()
	if err := client.Del(context.Background(), "session:"+id).Err(); err != nil {
		utils.GetLogger().Warn("RevokeAuthToken: failed to drop session", zap.Error(err))
	}
	return nil
}

// UpdatePassword verifies the current password before setting a new one and
// revokes the live session.
func (s *DefaultUserService) UpdatePassword(id, currentPassword, newPassword string) error {
	u, err := s.Repo.GetByID(id)
	if err != nil {
		return fmt.Errorf("failed to fetch user: %w", err)
	}
	if u == nil {
		return fmt.Errorf("user not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(currentPassword)); err != nil {
		return fmt.Errorf("current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if _, err := s.Repo.Update(id, bson.M{"passwordHash": string(hash), "tokenHash": ""}); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}
