package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lucasmt/monitoria/internal/app/models/dto"
	"github.com/lucasmt/monitoria/internal/app/services"
	"github.com/lucasmt/monitoria/internal/middleware"
)

// CookieSettings describes how the session cookie is written
type CookieSettings struct {
	Name   string
	MaxAge time.Duration
	Secure bool
}

// AuthController handles login, logout and session introspection
type AuthController struct {
	authService services.AuthService
	cookie      CookieSettings
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, cookie CookieSettings) *AuthController {
	return &AuthController{
		authService: authService,
		cookie:      cookie,
	}
}

// Login authenticates a monitor and establishes a session. The token is set
// as an HTTP-only cookie and also returned in the body for clients that
// prefer the Authorization header.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(ctx, &req) {
		return
	}

	monitor, token, err := c.authService.Login(ctx, req.Username, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.cookie.Name, token, int(c.cookie.MaxAge.Seconds()), "/", "", c.cookie.Secure, true)

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.LoginResponse{
		User: dto.PrincipalData{
			ID:       monitor.ID,
			Name:     monitor.Name,
			Role:     string(monitor.Role),
			SchoolID: monitor.SchoolID,
		},
		Token: token,
	}))
}

// Logout clears the session cookie. The token itself simply expires; there
// is no server-side session state to revoke.
func (c *AuthController) Logout(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.cookie.Name, "", -1, "/", "", c.cookie.Secure, true)

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Logged out"))
}

// Me returns the identity carried by the current session.
func (c *AuthController) Me(ctx *gin.Context) {
	principal, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.PrincipalData{
		ID:       principal.ID,
		Name:     principal.Name,
		Role:     string(principal.Role),
		SchoolID: principal.SchoolID,
	}))
}
