package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	appauth "github.com/lucasmt/monitoria/internal/app/auth"
	"github.com/lucasmt/monitoria/internal/app/models"
	"github.com/lucasmt/monitoria/internal/app/models/dto"
	"github.com/lucasmt/monitoria/internal/pkg/auth"
)

// principalKey is the gin context key holding the resolved Principal.
const principalKey = "principal"

// AuthMiddleware resolves the session token into a request principal
type AuthMiddleware struct {
	sessionService *auth.SessionService
	cookieName     string
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(sessionService *auth.SessionService, cookieName string) *AuthMiddleware {
	return &AuthMiddleware{
		sessionService: sessionService,
		cookieName:     cookieName,
	}
}

// RequireSession validates the session token and stores the principal in the
// request context. The token is read from the HTTP-only cookie first, with
// an Authorization header fallback for non-browser clients.
func (m *AuthMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(m.cookieName)
		if err != nil || tokenString == "" {
			header := c.GetHeader("Authorization")
			if header != "" {
				tokenString, err = auth.ExtractBearerToken(header)
			}
			if tokenString == "" || err != nil {
				abortUnauthorized(c, dto.ErrorCodeUnauthorized, "Authentication required")
				return
			}
		}

		claims, err := m.sessionService.Resolve(tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				abortUnauthorized(c, dto.ErrorCodeExpiredToken, "Session expired")
				return
			}
			abortUnauthorized(c, dto.ErrorCodeInvalidToken, "Invalid session token")
			return
		}

		c.Set(principalKey, appauth.Principal{
			ID:       claims.MonitorID,
			Name:     claims.Name,
			Role:     models.Role(claims.Role),
			SchoolID: claims.SchoolID,
		})

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, code dto.ErrorCode, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}

// GetPrincipal returns the principal stored by RequireSession. The boolean
// is false on routes reached without the middleware.
func GetPrincipal(c *gin.Context) (appauth.Principal, bool) {
	value, exists := c.Get(principalKey)
	if !exists {
		return appauth.Principal{}, false
	}
	principal, ok := value.(appauth.Principal)
	return principal, ok
}
