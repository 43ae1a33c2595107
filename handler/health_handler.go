package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Swapnil-DevGeek/note-taker/utils"
)

var startTime = time.Now()

func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":         "ok",
		"uptime_seconds": int64(time.Since(startTime).Seconds()),
		"cpu_percent":    utils.GetCPUUsage(),
		"memory_percent": utils.GetMemoryUsage(),
	})
}
