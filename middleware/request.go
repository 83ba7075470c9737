package middleware

import (
	"time"

	"servicehub/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	HeaderRequestID  = "X-Request-Id"
	ContextRequestID = "requestID"
	ContextLogger    = "logger"
)

// RequestID keeps the caller's X-Request-Id or assigns a new one, echoes it in
// the response and stores a request-scoped logger in the context.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.New().String()
			c.Request.Header.Set(HeaderRequestID, id)
		}
		c.Header(HeaderRequestID, id)
		c.Set(ContextRequestID, id)
		c.Set(ContextLogger, utils.GetLogger().With(zap.String("request_id", id)))
		c.Next()
	}
}

// RequestLogger writes one log line per request once the handler chain returns.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger := utils.GetLogger()
		if l, ok := c.Get(ContextLogger); ok {
			if zl, ok := l.(*zap.Logger); ok {
				logger = zl
			}
		}
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("dur", time.Since(start)),
			zap.Int("bytes", c.Writer.Size()),
			zap.String("ip", clientIP(c)),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}
		logger.Info("http", fields...)
	}
}
