package middleware

import (
	"errors"
	"net/http"

	"stepfault-backend/internal/delivery/http/response"
	"stepfault-backend/pkg/apperror"
	"stepfault-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				response.Error(c, appErr.Code, appErr.Message, nil)
			} else {
				// Never expose internal error details to clients. Log the
				// actual error server-side, send a generic message out.
				logger.Log.Error("unhandled request error", "error", err)
				response.Error(c, http.StatusInternalServerError,
					"An error occurred processing your message. Please try again later.",
					"Internal server error")
			}
		}
	}
}
