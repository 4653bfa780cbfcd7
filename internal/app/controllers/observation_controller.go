package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lucasmt/monitoria/internal/app/models/dto"
	"github.com/lucasmt/monitoria/internal/app/services"
	"github.com/lucasmt/monitoria/internal/middleware"
)

// ObservationController handles behavioral record operations
type ObservationController struct {
	observationService services.ObservationService
}

// NewObservationController creates a new ObservationController
func NewObservationController(observationService services.ObservationService) *ObservationController {
	return &ObservationController{observationService: observationService}
}

// ListObservationsByStudent returns a student's observations, newest first.
func (c *ObservationController) ListObservationsByStudent(ctx *gin.Context) {
	principal, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	studentID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	observations, err := c.observationService.ListObservationsByStudent(ctx, principal, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(observations))
}

// CreateObservation records an observation.
func (c *ObservationController) CreateObservation(ctx *gin.Context) {
	principal, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	var req dto.CreateObservationRequest
	if !bindJSON(ctx, &req) {
		return
	}

	observation, err := c.observationService.CreateObservation(ctx, principal, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(observation))
}

// UpdateObservation updates an observation's mutable fields.
func (c *ObservationController) UpdateObservation(ctx *gin.Context) {
	principal, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateObservationRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := c.observationService.UpdateObservation(ctx, principal, id, req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Observation updated"))
}

// DeleteObservation removes an observation.
func (c *ObservationController) DeleteObservation(ctx *gin.Context) {
	principal, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.observationService.DeleteObservation(ctx, principal, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Observation deleted"))
}
