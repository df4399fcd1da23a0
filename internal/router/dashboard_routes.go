package router

import (
	"github.com/gin-gonic/gin"

	"pulseboard/internal/handler"
)

func registerDashboardRoutes(router *gin.RouterGroup, dashboardHandler *handler.DashboardHandler) {
	router.GET("/all-data/", dashboardHandler.GetAllData)
	router.GET("/analytics/", dashboardHandler.GetAnalytics)
}
