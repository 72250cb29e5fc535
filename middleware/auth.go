package middleware

import (
	"net/http"
	"strings"

	userRepo "caresync/database/repository/user"
	"caresync/policy"
	"caresync/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by JWTAuthMiddleware.
const (
	CtxUserID = "userID"
	CtxEmail  = "userEmail"
	CtxRole   = "userRole"
)

// JWTAuthMiddleware validates the bearer token, checks its hash against the
// stored account and attaches the principal to the request context.
func JWTAuthMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		// The stored hash must match; a password change or revocation clears it.
		computedHash := utils.HashToken(tokenString)
		u, err := users.GetByTokenHash(computedHash)
		if err != nil || u == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token revoked or user not found"})
			return
		}

		c.Set(CtxUserID, u.ID)
		c.Set(CtxEmail, u.Email)
		c.Set(CtxRole, u.Role)
		c.Next()
	}
}

// PrincipalFrom rebuilds the policy principal from the request context. The
// second return is false when the request is unauthenticated.
func PrincipalFrom(c *gin.Context) (policy.Principal, bool) {
	id, ok := c.Get(CtxUserID)
	if !ok {
		return policy.Principal{}, false
	}
	email, _ := c.Get(CtxEmail)
	role, _ := c.Get(CtxRole)
	return policy.Principal{
		ID:    id.(string),
		Email: email.(string),
		Role:  role.(string),
	}, true
}
