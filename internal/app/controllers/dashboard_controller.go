package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lucasmt/monitoria/internal/app/models/dto"
	"github.com/lucasmt/monitoria/internal/app/services"
	"github.com/lucasmt/monitoria/internal/middleware"
)

// DashboardController handles summary statistics
type DashboardController struct {
	dashboardService services.DashboardService
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService services.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// GetStats returns entity counts for the caller's scope.
func (c *DashboardController) GetStats(ctx *gin.Context) {
	principal, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	stats, err := c.dashboardService.GetStats(ctx, principal)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(stats))
}
