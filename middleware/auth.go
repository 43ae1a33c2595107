package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/Swapnil-DevGeek/note-taker/services"
	"github.com/Swapnil-DevGeek/note-taker/utils"
)

// EmailKey is the context key holding the authenticated email claim.
const EmailKey = "email"

// AuthMiddleware validates the signed token carried verbatim in the
// Authorization header (no "Bearer" prefix — the web client sends the
// raw token) and attaches the email claim to the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			utils.TrackAuthAttempt("failure", "missing_token")
			utils.Unauthorized(c, "Unauthorized")
			c.Abort()
			return
		}

		email, err := services.ParseToken(tokenString)
		if err != nil {
			utils.TrackAuthAttempt("failure", "invalid_token")
			utils.Unauthorized(c, "Unauthorized")
			c.Abort()
			return
		}

		c.Set(EmailKey, email)
		c.Next()
	}
}
