package response

import "github.com/gin-gonic/gin"

// Error writes the {error, details} shape shared by every resource route.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

func ErrorWithDetails(c *gin.Context, statusCode int, message string, err error) {
	details := "Unknown error"
	if err != nil {
		details = err.Error()
	}
	c.JSON(statusCode, gin.H{
		"error":   message,
		"details": details,
	})
}

// Message writes {message}; used by the login and auth gate responses.
func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}

// AbortMessage is Message for middleware.
func AbortMessage(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, gin.H{"message": message})
}
