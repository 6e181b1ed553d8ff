package response

import (
	"time"

	"form-data-backend/internal/domain"
	"form-data-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// Response standardizes the API JSON envelope
type Response struct {
	Success   bool                   `json:"success"`
	Data      interface{}            `json:"data"`
	Error     *string                `json:"error"`
	Message   *string                `json:"message"`
	Errors    map[string]interface{} `json:"errors,omitempty"`
	Timestamp string                 `json:"timestamp"`
	RequestID string                 `json:"request_id,omitempty"`
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func requestID(c *gin.Context) string {
	reqID, _ := c.Get(string(domain.KeyRequestID))
	idStr, _ := reqID.(string)
	return idStr
}

// Success sends a success envelope
func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{
		Success:   true,
		Data:      data,
		Message:   optional(message),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		RequestID: requestID(c),
	})
}

// Error sends a failure envelope. kind is the short error code
// (see apperror.Kind*); errors carries structured detail and may be nil.
func Error(c *gin.Context, code int, kind, message string, errors map[string]interface{}) {
	c.JSON(code, Response{
		Success:   false,
		Error:     optional(kind),
		Message:   optional(message),
		Errors:    errors,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		RequestID: requestID(c),
	})
}

// AppError renders an *apperror.AppError
func AppError(c *gin.Context, err *apperror.AppError) {
	Error(c, err.Code, err.Kind, err.Message, err.Details)
}
