package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Session token errors
var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrExpiredToken  = errors.New("token expired")
	ErrInvalidFormat = errors.New("invalid token format")
)

// SessionConfig defines session token settings
type SessionConfig struct {
	SecretKey string
	TokenTTL  time.Duration
	Issuer    string
}

// SessionService issues and resolves signed session tokens
type SessionService struct {
	config SessionConfig
}

// NewSessionService creates a new session service
func NewSessionService(config SessionConfig) *SessionService {
	return &SessionService{
		config: config,
	}
}

// SessionClaims defines the signed token content. SchoolID is nil for
// administrator sessions.
type SessionClaims struct {
	MonitorID int64  `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	SchoolID  *int64 `json:"schoolId,omitempty"`
	jwt.RegisteredClaims
}

// Issue creates a signed session token for the given identity.
func (s *SessionService) Issue(monitorID int64, name, role string, schoolID *int64) (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		MonitorID: monitorID,
		Name:      name,
		Role:      role,
		SchoolID:  schoolID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Subject:   fmt.Sprintf("%d", monitorID),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.SecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return signed, nil
}

// Resolve validates a token and returns its claims. Callers treat any error
// as "unauthenticated"; the distinction between expired and invalid exists
// only for logging.
func (s *SessionService) Resolve(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.SecretKey), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// ExtractBearerToken pulls the raw token out of an Authorization header value.
func ExtractBearerToken(header string) (string, error) {
	if !strings.HasPrefix(header, "Bearer ") {
		return "", ErrInvalidFormat
	}
	token := strings.TrimPrefix(header, "Bearer ")
	if token == "" {
		return "", ErrInvalidFormat
	}
	return token, nil
}
