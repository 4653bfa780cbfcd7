package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lucasmt/monitoria/internal/app/models/dto"
	"github.com/lucasmt/monitoria/internal/app/services"
	"github.com/lucasmt/monitoria/internal/middleware"
)

// MonitorController handles staff-account operations
type MonitorController struct {
	monitorService services.MonitorService
}

// NewMonitorController creates a new MonitorController
func NewMonitorController(monitorService services.MonitorService) *MonitorController {
	return &MonitorController{monitorService: monitorService}
}

// ListMonitors returns every staff account.
func (c *MonitorController) ListMonitors(ctx *gin.Context) {
	principal, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	monitors, err := c.monitorService.ListMonitors(ctx, principal)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(monitors))
}

// CreateMonitor registers a staff account.
func (c *MonitorController) CreateMonitor(ctx *gin.Context) {
	principal, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	var req dto.CreateMonitorRequest
	if !bindJSON(ctx, &req) {
		return
	}

	monitor, err := c.monitorService.CreateMonitor(ctx, principal, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(monitor))
}

// UpdateMonitor updates a staff account.
func (c *MonitorController) UpdateMonitor(ctx *gin.Context) {
	principal, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateMonitorRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := c.monitorService.UpdateMonitor(ctx, principal, id, req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Monitor updated"))
}

// DeleteMonitor deletes a staff account.
func (c *MonitorController) DeleteMonitor(ctx *gin.Context) {
	principal, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.monitorService.DeleteMonitor(ctx, principal, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Monitor deleted"))
}
