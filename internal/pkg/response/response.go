// Package response writes the JSON envelope every handler returns.
// Successful responses carry {"success": true, "data": ...}; failures
// carry {"success": false, "error": {"code", "message"}} with an
// optional "details" payload for per-field validation errors.
package response

import "github.com/gin-gonic/gin"

// Success writes data under the success envelope.
func Success(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

// Error writes a machine-readable error code with a human message.
func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// ErrorWithDetails is Error with an extra details payload, used for
// field-level validation failures.
func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}
