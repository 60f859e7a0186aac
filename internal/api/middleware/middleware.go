package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/feral-file/ff-race-nft/internal/api/apierrors"
	"github.com/feral-file/ff-race-nft/internal/logger"
)

const (
	REQUEST_ID_HEADER = "X-Request-ID"
	REQUEST_ID_KEY    = "request_id"

	// MAX_REQUEST_ID_LENGTH bounds client supplied ids before they reach the logs
	MAX_REQUEST_ID_LENGTH = 128
)

// RequestID assigns a correlation id to every request.
// A client supplied X-Request-ID is reused; otherwise a uuid is generated.
// The id is echoed in the response header and carried on the request context for logging.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(REQUEST_ID_HEADER)
		if id == "" || len(id) > MAX_REQUEST_ID_LENGTH {
			id = uuid.NewString()
		}

		c.Set(REQUEST_ID_KEY, id)
		c.Header(REQUEST_ID_HEADER, id)
		c.Request = c.Request.WithContext(logger.WithRequestID(c.Request.Context(), id))

		c.Next()
	}
}

// GetRequestID returns the correlation id assigned by RequestID
func GetRequestID(c *gin.Context) string {
	return c.GetString(REQUEST_ID_KEY)
}

// Logger returns a gin middleware for structured logging using zap
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		logger.InfoCtx(c.Request.Context(), "API request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.String("user_agent", c.Request.UserAgent()),
		)
	}
}

// Recovery returns a gin middleware for panic recovery with logging.
// The panic value is logged server-side only; the client gets the standard error envelope.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.ErrorCtx(c.Request.Context(), fmt.Errorf("panic recovered: %v", r),
					zap.String("path", c.Request.URL.Path),
				)
				apierrors.Abort(c, http.StatusInternalServerError, apierrors.ErrCodeInternalError, "Internal server error")
			}
		}()
		c.Next()
	}
}
