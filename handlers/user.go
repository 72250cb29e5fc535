package handlers

import (
	"net/http"

	"caresync/middleware"
	"caresync/models"
	"caresync/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves profile management endpoints.
type UserHandler struct {
	Users user.UserService
}

func NewUserHandler(users user.UserService) *UserHandler {
	return &UserHandler{Users: users}
}

// GetProfileHandler returns the authenticated user's profile.
func (h *UserHandler) GetProfileHandler(c *gin.Context) {
	logger := getLogger(c)

	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	profile, err := h.Users.GetUserByID(principal.ID)
	if err != nil {
		logger.Error("Failed to get user profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve profile"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateProfileHandler updates the authenticated user's profile.
func (h *UserHandler) UpdateProfileHandler(c *gin.Context) {
	logger := getLogger(c)

	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var updateReq models.User
	if err := c.ShouldBindJSON(&updateReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	updated, err := h.Users.UpdateProfile(principal.ID, updateReq)
	if err != nil {
		logger.Error("Failed to update profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// UpdatePasswordHandler changes the password and revokes the live session.
func (h *UserHandler) UpdatePasswordHandler(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req struct {
		CurrentPassword string `json:"currentPassword" binding:"required"`
		NewPassword     string `json:"newPassword" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Users.UpdatePassword(principal.ID, req.CurrentPassword, req.NewPassword); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated, please sign in again"})
}

// RevokeTokenHandler signs the user out everywhere.
func (h *UserHandler) RevokeTokenHandler(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.Users.RevokeAuthToken(principal.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to revoke token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}

// DeleteAccountHandler removes the authenticated user's account.
func (h *UserHandler) DeleteAccountHandler(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.Users.DeleteUser(principal.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete account"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account deleted"})
}

// ListDoctorsHandler returns all registered doctors for the booking UI.
func (h *UserHandler) ListDoctorsHandler(c *gin.Context) {
	logger := getLogger(c)

	doctors, err := h.Users.ListDoctors()
	if err != nil {
		logger.Error("Failed to list doctors", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list doctors"})
		return
	}
	if doctors == nil {
		doctors = []models.User{}
	}

	c.JSON(http.StatusOK, gin.H{"doctors": doctors})
}
