package middleware

import (
	apperrors "crm-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// abortWithError ends the request with a failed result envelope
func abortWithError(c *gin.Context, status int, kind apperrors.Kind, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"ok":    false,
		"error": gin.H{"kind": kind, "message": message},
	})
}
