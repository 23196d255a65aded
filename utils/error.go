package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FailureResponse is the structure of every error reply: a safe message for
// the client, never a raw error or stack trace.
type FailureResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorHandler is a middleware that catches panics and returns structured errors.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, FailureResponse{
					Message: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON failure response and logs the
// underlying error for operators.
func JSONError(c *gin.Context, status int, message string, err error) {
	GetLogger().Warn(message, zap.Int("status", status), zap.Error(err))
	c.JSON(status, FailureResponse{Message: message})
}
