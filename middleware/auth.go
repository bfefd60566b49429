package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"wavectf/database"
	"wavectf/models"
	"wavectf/utils"

	"github.com/gin-gonic/gin"
)

const ContextUserKey = "user"

// AuthMiddleware validates the bearer token (or the auth cookie set at login)
// and loads the authenticated user into the request context. The role flag is
// always read fresh from the store, never from the token.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
				return
			}
			tokenString = parts[1]
		} else if cookie, err := c.Cookie("auth_token"); err == nil {
			tokenString = cookie
		}

		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
			return
		}

		userID, err := utils.VerifyJWT(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		var user models.User
		if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// GetUserFromRequest returns the authenticated user stored in the context by
// AuthMiddleware. On failure an error response has already been written, so
// handlers only need to return.
func GetUserFromRequest(c *gin.Context) (models.User, error) {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return models.User{}, fmt.Errorf("user not authenticated")
	}

	user, ok := value.(models.User)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid user in context"})
		return models.User{}, fmt.Errorf("invalid user type in context")
	}

	return user, nil
}
