package api

import (
	"net/http"
	"time"

	"auctionary/internal/logging"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthHeader carries the opaque session token on authenticated requests.
const AuthHeader = "X-Authorization"

const userIDKey = "user_id"

// RequestID attaches a uuid to each request for log correlation, reusing a
// client-supplied one when present.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

// RequestLogger logs incoming requests with timing
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next() // process request

		logging.Info("http request", map[string]any{
			"request_id": c.GetString("request_id"),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency":    time.Since(start).String(),
		})
	}
}

// Auth resolves the bearer token to a user id before handler invocation on
// protected routes. Missing or unknown tokens abort with 401.
func (h *Handler) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(AuthHeader)
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		user, err := h.store.UserByToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error_message": "server error"})
			return
		}
		if user == nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		c.Set(userIDKey, user.UserID)
		c.Next()
	}
}

// currentUserID returns the user id set by Auth
func currentUserID(c *gin.Context) int64 {
	return c.GetInt64(userIDKey)
}
