package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Swapnil-DevGeek/note-taker/utils"
)

func CORSMiddleware() gin.HandlerFunc {
	origin := utils.GetEnvAsString("CORS_ORIGIN", "http://localhost:5173")

	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers",
			"Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Methods",
			"POST, GET, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Max-Age", "86400") // 24 hours

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
