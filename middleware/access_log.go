package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mileusna/useragent"
	"go.uber.org/zap"

	"github.com/Swapnil-DevGeek/note-taker/utils"
)

// AccessLogMiddleware writes one structured log line per request,
// including the client browser and OS parsed from the User-Agent.
func AccessLogMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		ua := useragent.Parse(c.Request.UserAgent())
		utils.Logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.String("browser", ua.Name),
			zap.String("os", ua.OS),
		)
	}
}
