// utils/response.go
package utils

import "github.com/gin-gonic/gin"

// RespondWithError writes the standard error envelope
func RespondWithError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{
		"success": false,
		"message": message,
	})
}

// RespondWithSuccess writes the standard success envelope
func RespondWithSuccess(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, gin.H{
		"success": true,
		"message": message,
		"data":    data,
	})
}
