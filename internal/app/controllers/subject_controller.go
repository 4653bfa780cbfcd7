package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lucasmt/monitoria/internal/app/models/dto"
	"github.com/lucasmt/monitoria/internal/app/services"
	"github.com/lucasmt/monitoria/internal/middleware"
)

// SubjectController handles subject catalog operations
type SubjectController struct {
	subjectService services.SubjectService
}

// NewSubjectController creates a new SubjectController
func NewSubjectController(subjectService services.SubjectService) *SubjectController {
	return &SubjectController{subjectService: subjectService}
}

// ListSubjects returns the subjects visible to the caller, optionally
// filtered by school.
func (c *SubjectController) ListSubjects(ctx *gin.Context) {
	principal, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	var schoolID *int64
	if schoolStr := ctx.Query("schoolId"); schoolStr != "" {
		id, err := strconv.ParseInt(schoolStr, 10, 64)
		if err != nil {
			detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid schoolId parameter").WithField("schoolId")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
			return
		}
		schoolID = &id
	}

	subjects, err := c.subjectService.ListSubjects(ctx, principal, schoolID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(subjects))
}

// CreateSubject registers a subject.
func (c *SubjectController) CreateSubject(ctx *gin.Context) {
	principal, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	var req dto.CreateSubjectRequest
	if !bindJSON(ctx, &req) {
		return
	}

	subject, err := c.subjectService.CreateSubject(ctx, principal, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(subject))
}

// UpdateSubject renames a subject.
func (c *SubjectController) UpdateSubject(ctx *gin.Context) {
	principal, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateSubjectRequest
	if !bindJSON(ctx, &req) {
		return
	}

	if err := c.subjectService.UpdateSubject(ctx, principal, id, req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Subject updated"))
}

// DeleteSubject removes a subject.
func (c *SubjectController) DeleteSubject(ctx *gin.Context) {
	principal, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.subjectService.DeleteSubject(ctx, principal, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Subject deleted"))
}
