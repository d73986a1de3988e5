package handler

import (
	"main/services"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports dependency reachability and basic system load.
func HealthHandler(c *gin.Context) {
	mongoUp := utils.PingMongo(c.Request.Context())

	redisUp := false
	if services.TokenBlacklist != nil {
		redisUp = services.TokenBlacklist.IsConnected()
	}

	status := "ok"
	if !mongoUp {
		status = "degraded"
	}

	utils.Success(c, gin.H{
		"status":    status,
		"mongo":     mongoUp,
		"redis":     redisUp,
		"cpu_usage": utils.GetCPUUsage(),
	})
}
