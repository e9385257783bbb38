package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderXRequestID carries the request correlation id.
const HeaderXRequestID = "X-Request-ID"

// RequestID attaches a correlation id to every request, preserving one the
// client already sent.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderXRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(HeaderXRequestID, id)
		c.Writer.Header().Set(HeaderXRequestID, id)
		c.Next()
	}
}

// RateLimit rejects requests above the configured rate with 429. A nil
// limiter passes everything through.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter != nil && !m.limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: rejecting %s", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"response": "too many requests, slow down",
				"status":   "error",
			})
			return
		}
		c.Next()
	}
}
