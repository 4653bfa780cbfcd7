package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	appauth "github.com/lucasmt/monitoria/internal/app/auth"
	"github.com/lucasmt/monitoria/internal/app/models/dto"
	"github.com/lucasmt/monitoria/internal/middleware"
)

// requirePrincipal pulls the authenticated principal from the request
// context. Routes behind RequireSession always have one; a miss means the
// route was wired without the middleware and the request is rejected.
func requirePrincipal(ctx *gin.Context) (appauth.Principal, bool) {
	principal, ok := middleware.GetPrincipal(ctx)
	if !ok {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
	}
	return principal, ok
}

// parseIDParam parses a numeric path parameter, writing a 400 on failure.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name+" parameter").WithField(name)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return 0, false
	}
	return id, true
}

// bindJSON binds the request body, writing a 400 with the binding error on
// failure.
func bindJSON(ctx *gin.Context, target interface{}) bool {
	if err := ctx.ShouldBindJSON(target); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return false
	}
	return true
}
