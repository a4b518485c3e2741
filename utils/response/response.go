package response

import (
	"fiesta/utils/apperrors"

	"github.com/gin-gonic/gin"
)

// Error sends a standardized error response
func Error(c *gin.Context, status int, message string) {
    c.JSON(status, gin.H{"error": message})
}

// Success sends a standardized success response
func Success(c *gin.Context, status int, data interface{}) {
    c.JSON(status, gin.H{"data": data})
}

// Message sends a transient human-readable success message
func Message(c *gin.Context, status int, message string) {
    c.JSON(status, gin.H{"success": message})
}

// FromError maps a domain error to its HTTP status and sends it
func FromError(c *gin.Context, err error) {
    Error(c, apperrors.HTTPStatusFromError(err), err.Error())
}
