package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lucasmt/monitoria/internal/app/models/dto"
	"github.com/lucasmt/monitoria/internal/app/services"
	"github.com/lucasmt/monitoria/internal/middleware"
)

// SchoolController handles school catalog operations
type SchoolController struct {
	schoolService services.SchoolService
}

// NewSchoolController creates a new SchoolController
func NewSchoolController(schoolService services.SchoolService) *SchoolController {
	return &SchoolController{schoolService: schoolService}
}

// ListSchools returns the schools visible to the caller.
func (c *SchoolController) ListSchools(ctx *gin.Context) {
	principal, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	schools, err := c.schoolService.ListSchools(ctx, principal)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(schools))
}

// CreateSchool registers a school.
func (c *SchoolController) CreateSchool(ctx *gin.Context) {
	principal, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	var req dto.CreateSchoolRequest
	if !bindJSON(ctx, &req) {
		return
	}

	school, err := c.schoolService.CreateSchool(ctx, principal, req.Name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(school))
}

// UpdateSchool renames a school.
func (c *SchoolController) UpdateSchool(ctx *gin.Context) {
	principal, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateSchoolRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := c.schoolService.UpdateSchool(ctx, principal, id, req.Name); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("School updated"))
}

// DeleteSchool removes a school.
func (c *SchoolController) DeleteSchool(ctx *gin.Context) {
	principal, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.schoolService.DeleteSchool(ctx, principal, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("School deleted"))
}
