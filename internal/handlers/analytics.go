// internal/handlers/analytics.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pawanbishnoiii/shineveda-backend/internal/services"
	"github.com/pawanbishnoiii/shineveda-backend/internal/utils"
)

type AnalyticsHandler struct {
	analyticsService *services.AnalyticsService
}

func NewAnalyticsHandler(analyticsService *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// Track handles POST /v1/track. Always answers 202: a lost view event must
// never surface as a storefront error.
func (h *AnalyticsHandler) Track(c *gin.Context) {
	var req services.RecordPageViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	if err := h.analyticsService.RecordPageView(&req, c.ClientIP(), c.Request.UserAgent()); err != nil {
		logrus.WithError(err).Warn("Failed to record page view")
	}

	c.Status(202)
}

// Dashboard handles GET /v1/admin/dashboard
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	stats, err := h.analyticsService.GetDashboardStats()
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, stats)
}
