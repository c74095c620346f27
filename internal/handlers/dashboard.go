package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/riskbee/riskbee-backend/internal/services"
)

type DashboardHandler struct {
	dashboardService services.DashboardService
}

func NewDashboardHandler(dashboardService services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (dh *DashboardHandler) ChartData(c *gin.Context) {
	s, ok := requestScope(c)
	if !ok {
		return
	}
	data, err := dh.dashboardService.ChartData(c.Request.Context(), s)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, data)
}
