package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"form-data-backend/internal/delivery/http/response"
	"form-data-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error attached with c.Error. Application errors
// keep their status and detail; anything else becomes a generic 500.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Code >= http.StatusInternalServerError {
				cause := error(appErr)
				if appErr.Err != nil {
					cause = appErr.Err
				}
				logger.Error("request failed",
					"request_id", GetRequestID(c),
					"path", c.FullPath(),
					"error", cause,
				)
			}
			response.AppError(c, appErr)
			return
		}

		// Never expose internal error details to clients
		logger.Error("internal server error",
			"request_id", GetRequestID(c),
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", err,
		)
		response.Error(c, http.StatusInternalServerError, apperror.KindInternal,
			"An unexpected error occurred. Please try again later.", nil)
	}
}
