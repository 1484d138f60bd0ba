package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionMiddleware assigns a session id to the request if the client did
// not send one. The booking form carries it across quote and submit calls
// so a submission can be traced back to one form session in the logs.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader("X-Session-ID")
		if sessionID == "" {
			sessionID = uuid.NewString()
		}

		c.Set("sessionId", sessionID)
		c.Writer.Header().Set("X-Session-ID", sessionID)

		c.Next()
	}
}
