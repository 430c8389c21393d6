// middleware/auth.go
package middleware

import (
	"errors"
	"net/http"
	"strings"

	userRepo "medibook/database/repository/user"
	"medibook/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// Context keys set by JWTAuthMiddleware.
const (
	CtxUserID      = "userID"
	CtxUserRole    = "userRole"
	CtxAuthPending = "authPending"
)

// JWTAuthMiddleware validates the bearer token and resolves the user via the
// token hash. When optional is true an absent or invalid token lets the
// request through unauthenticated; downstream handlers decide what that
// means. A transient lookup failure marks the auth state as pending rather
// than rejecting outright.
func JWTAuthMiddleware(users userRepo.UserRepository, optional bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			if optional {
				c.Next()
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			if optional {
				c.Next()
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		computedHash := utils.HashToken(tokenString)
		user, err := users.GetByTokenHash(c.Request.Context(), computedHash)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				if optional {
					c.Next()
					return
				}
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch or user not found"})
				return
			}
			// Lookup failed for another reason; the auth state is unresolved.
			c.Set(CtxAuthPending, true)
			if optional {
				c.Next()
				return
			}
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Could not resolve session, try again"})
			return
		}

		c.Set(CtxUserID, user.ID)
		c.Set(CtxUserRole, user.Role)
		c.Next()
	}
}
