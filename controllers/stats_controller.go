package controllers

import (
	"github.com/gin-gonic/gin"

	"altairis/response"
)

// GetDashboardStats trả về số liệu vận hành, cache Redis 60 giây
func GetDashboardStats(c *gin.Context) {
	stats, err := statsService.GetDashboardStats()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, stats)
}
