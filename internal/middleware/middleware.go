package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/justsurfingit/job-board-api/internal/apperr"
	"github.com/justsurfingit/job-board-api/internal/dtos"
	"go.uber.org/zap"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"

	InternalMessage = "An unexpected error occurred"
)

// RequestID reuses an incoming X-Request-ID or mints one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(RequestIDHeader))
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID returns the id set by RequestID, or "".
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// Logger writes one access log line per request.
func Logger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path += "?" + raw
		}

		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.String("request_id", GetRequestID(c)),
		}

		switch {
		case status >= http.StatusInternalServerError:
			log.Error("request", fields...)
		case status >= http.StatusBadRequest:
			log.Warn("request", fields...)
		default:
			log.Info("request", fields...)
		}
	}
}

// Recovery turns a panic into a 500 error body.
func Recovery(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("panic recovered",
					zap.Any("panic", r),
					zap.String("request_id", GetRequestID(c)),
					zap.Stack("stack"),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, errorBody(apperr.Internal(InternalMessage, nil)))
			}
		}()
		c.Next()
	}
}

// ErrorHandler renders the last error a handler attached with c.Error.
// Errors that are not an *apperr.Error, and internal ones, are logged with
// their stack and reported with a generic message.
func ErrorHandler(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		e, ok := apperr.As(err)
		if !ok || e.Kind == apperr.KindInternal {
			var stack []byte
			if ok {
				stack = e.Stack
			}
			log.Error("unhandled error",
				zap.Error(err),
				zap.String("request_id", GetRequestID(c)),
				zap.ByteString("stack", stack),
			)
			e = apperr.Internal(InternalMessage, err)
		}

		c.JSON(e.Status(), errorBody(e))
	}
}

func errorBody(e *apperr.Error) dtos.ErrorResponse {
	message := e.Message
	if e.Kind == apperr.KindInternal {
		message = InternalMessage
	}
	return dtos.ErrorResponse{
		Message:   message,
		Status:    e.Status(),
		Timestamp: time.Now().UTC(),
		Errors:    e.Fields,
	}
}
