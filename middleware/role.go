package middleware

import (
	"net/http"

	"medibook/models"

	"github.com/gin-gonic/gin"
)

// RequireRole gates an endpoint to the given roles. A mismatched role gets a
// 403 carrying the caller's own dashboard root as the redirect target.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(CtxUserRole)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error":    "insufficient role for this resource",
			"redirect": models.DashboardPath(role),
		})
	}
}
