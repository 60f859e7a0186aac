package apierrors

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-race-nft/internal/logger"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	ErrCodeBadRequest       ErrorCode = "bad_request"
	ErrCodeValidationFailed ErrorCode = "validation_failed"
	ErrCodeUnauthorized     ErrorCode = "unauthorized"

	// Server errors (5xx)
	ErrCodeInternalError ErrorCode = "internal_error"
	ErrCodeServiceError  ErrorCode = "service_error"
)

// Response is the error envelope returned by every endpoint
type Response struct {
	Error     Detail `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// Detail contains error information.
// Details is only set for client errors; it never carries upstream error text.
type Detail struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

// New builds an error envelope carrying the request id of c
func New(c *gin.Context, code ErrorCode, message string, details ...string) Response {
	return Response{
		Error: Detail{
			Code:    code,
			Message: message,
			Details: strings.Join(details, ", "),
		},
		RequestID: logger.RequestID(c.Request.Context()),
	}
}

// Respond writes an error envelope with the given status
func Respond(c *gin.Context, status int, code ErrorCode, message string, details ...string) {
	c.JSON(status, New(c, code, message, details...))
}

// Abort writes an error envelope and stops the handler chain
func Abort(c *gin.Context, status int, code ErrorCode, message string, details ...string) {
	c.AbortWithStatusJSON(status, New(c, code, message, details...))
}
