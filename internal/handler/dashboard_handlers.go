// Package handler contains the gin handlers for the dashboard API.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"pulseboard/internal/service"
)

type DashboardHandler struct {
	service *service.DashboardService
	logger  *logrus.Logger
}

func NewDashboardHandler(service *service.DashboardService, logger *logrus.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		logger:  logger,
	}
}

// Index serves the dashboard page.
func (h *DashboardHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", nil)
}

// GetAllData returns the latest records of all seven domains in one payload.
func (h *DashboardHandler) GetAllData(c *gin.Context) {
	data, err := h.service.AllData(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("all-data query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, data)
}

// GetAnalytics returns the grouped sensor averages and per-category revenue.
func (h *DashboardHandler) GetAnalytics(c *gin.Context) {
	analytics, err := h.service.Analytics(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("analytics query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, analytics)
}
