package response

import "github.com/gin-gonic/gin"

// Success writes the uniform success envelope.
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

// Error writes the uniform failure envelope. Message is safe for clients;
// internal details never go through here.
func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"code":    code,
		"message": message,
	})
}

// AbortError is Error plus request abort, for use inside middleware.
func AbortError(c *gin.Context, statusCode int, code string, message string) {
	Error(c, statusCode, code, message)
	c.Abort()
}
