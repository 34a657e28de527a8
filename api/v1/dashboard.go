package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nusava/nusava-backend/services"
)

var dashboardService = services.NewDashboardService()

// AgentDashboard returns the agent's own listing activity stats
func AgentDashboard(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	stats, err := dashboardService.AgentDashboard(userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to build dashboard: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   stats,
	})
}

// AdminDashboard returns platform-wide stats
func AdminDashboard(c *gin.Context) {
	stats, err := dashboardService.AdminDashboard()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to build dashboard: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   stats,
	})
}
