package middleware

import (
	"errors"
	"net/http"

	"portfolio-site/internal/delivery/http/response"
	"portfolio-site/pkg/apperror"
	"portfolio-site/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			reqID := c.GetString(RequestIDKey)
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				if appErr.Err != nil {
					logger.Log.Error("Request failed", "request_id", reqID, "status", appErr.Code, "error", appErr.Err)
				}
				response.Error(c, appErr.Code, appErr.Message)
			} else {
				// Never expose internal error details to clients.
				logger.Log.Error("Internal Server Error", "request_id", reqID, "error", err)
				response.Error(c, http.StatusInternalServerError, "Internal server error")
			}
		}
	}
}
