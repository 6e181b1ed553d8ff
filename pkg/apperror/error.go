package apperror

import "net/http"

// Kind codes reported in the envelope's "error" field
const (
	KindBadRequest      = "BAD_REQUEST"
	KindValidation      = "VALIDATION_ERROR"
	KindNotFound        = "NOT_FOUND"
	KindTooManyRequests = "TOO_MANY_REQUESTS"
	KindInternal        = "INTERNAL_ERROR"
)

type AppError struct {
	Code    int                    `json:"code"`
	Kind    string                 `json:"kind"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Err     error                  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetails attaches the structured error detail object
func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	e.Details = details
	return e
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Kind:    kindFor(code),
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

// Unprocessable reports a payload that parsed but failed validation
func Unprocessable(message string, fields []string) *AppError {
	return New(http.StatusUnprocessableEntity, message, nil).
		WithDetails(map[string]interface{}{"fields": fields})
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message, nil)
}

func TooManyRequests(message string) *AppError {
	return New(http.StatusTooManyRequests, message, nil)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, "Internal Server Error", err)
}

func kindFor(code int) string {
	switch code {
	case http.StatusUnprocessableEntity:
		return KindValidation
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusTooManyRequests:
		return KindTooManyRequests
	}
	if code >= http.StatusInternalServerError {
		return KindInternal
	}
	return KindBadRequest
}
