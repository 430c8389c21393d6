package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message  string `json:"message"`
	Details  string `json:"details,omitempty"`
	Redirect string `json:"redirect,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors.
// It is the last-resort boundary; action-level failures are handled at the
// handler that triggered them.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger := GetLogger()
				logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, message string, details string) {
	logger := GetLogger()
	logger.Warn(message, zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}

// JSONRedirectError sends an error response carrying the path the client
// should navigate to (login page or a role's dashboard root).
func JSONRedirectError(c *gin.Context, status int, message string, redirect string) {
	logger := GetLogger()
	logger.Warn(message, zap.String("redirect", redirect))
	c.JSON(status, ErrorResponse{Message: message, Redirect: redirect})
}
