package response

import (
	"github.com/gin-gonic/gin"
)

// MessageResponse is the body of a successful API call
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of a failed API call. Message is opaque.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Message sends a success response
func Message(c *gin.Context, code int, message string) {
	c.JSON(code, MessageResponse{Message: message})
}

// Error sends an error response
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{Error: message})
}
