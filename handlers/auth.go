package handlers

import (
	"net/http"

	"caresync/models"
	"caresync/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler serves registration and login.
type AuthHandler struct {
	Users user.UserService
}

func NewAuthHandler(users user.UserService) *AuthHandler {
	return &AuthHandler{Users: users}
}

// RegisterHandler creates an account and returns an auth token.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	logger := getLogger(c)

	var reg models.UserRegistration
	if err := c.ShouldBindJSON(&reg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Users.RegisterUser(reg)
	if err != nil {
		logger.Warn("registration failed", zap.String("email", reg.Email), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// LoginHandler verifies credentials and returns an auth token.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	logger := getLogger(c)

	var creds models.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Users.AuthenticateUser(creds)
	if err != nil {
		logger.Warn("login failed", zap.String("email", creds.Email))
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}
