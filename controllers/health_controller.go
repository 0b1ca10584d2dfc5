package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"altairis/config"
	"altairis/response"
)

// HealthCheck kiểm tra kết nối DB và Redis
func HealthCheck(c *gin.Context) {
	status := gin.H{
		"database":  "ok",
		"redis":     "ok",
		"timestamp": time.Now().UTC(),
	}
	healthy := true

	sqlDB, err := config.DB.DB()
	if err != nil || sqlDB.Ping() != nil {
		status["database"] = "down"
		healthy = false
	}

	// Redis không bắt buộc, chỉ báo trạng thái
	if config.RedisClient == nil || config.RedisClient.Ping(config.Ctx).Err() != nil {
		status["redis"] = "down"
	}

	if !healthy {
		response.ServerError(c)
		return
	}
	response.Success(c, status)
}

// DatabaseHealth kiểm tra riêng kết nối database
func DatabaseHealth(c *gin.Context) {
	sqlDB, err := config.DB.DB()
	if err != nil || sqlDB.Ping() != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, gin.H{"database": "ok", "timestamp": time.Now().UTC()})
}
