package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lucasmt/monitoria/internal/app/models/dto"
	"github.com/lucasmt/monitoria/internal/app/services"
	"github.com/lucasmt/monitoria/internal/middleware"
)

// GradeController handles grade record operations
type GradeController struct {
	gradeService services.GradeService
}

// NewGradeController creates a new GradeController
func NewGradeController(gradeService services.GradeService) *GradeController {
	return &GradeController{gradeService: gradeService}
}

// ListGradesByStudent returns a student's grades, newest first.
func (c *GradeController) ListGradesByStudent(ctx *gin.Context) {
	principal, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	studentID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	grades, err := c.gradeService.ListGradesByStudent(ctx, principal, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(grades))
}

// CreateGrade records a grade.
func (c *GradeController) CreateGrade(ctx *gin.Context) {
	principal, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	var req dto.CreateGradeRequest
	if !bindJSON(ctx, &req) {
		return
	}

	grade, err := c.gradeService.CreateGrade(ctx, principal, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(grade))
}

// UpdateGrade changes the value of a grade.
func (c *GradeController) UpdateGrade(ctx *gin.Context) {
	principal, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateGradeRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := c.gradeService.UpdateGrade(ctx, principal, id, req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Grade updated"))
}

// DeleteGrade removes a grade.
func (c *GradeController) DeleteGrade(ctx *gin.Context) {
	principal, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.gradeService.DeleteGrade(ctx, principal, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Grade deleted"))
}
