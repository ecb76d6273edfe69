package middleware

import (
	"errors"
	"strings"

	"job-board/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const (
	CtxUserIDKey      = "user_id"
	CtxEmailKey       = "email"
	CtxIsRecruiterKey = "is_recruiter"
)

type AuthMiddleware struct {
	jwt jwt.Service
}

func NewAuthMiddleware(jwtSvc jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwtSvc}
}

func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := bearerTokenFromHeader(c.Get("Authorization"))
		if !ok {
			// The websocket handshake cannot set headers from the browser,
			// so the token may ride in the query string instead.
			token = strings.TrimSpace(c.Query("token"))
			if token == "" {
				return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
			}
		}

		claims, err := m.jwt.ValidateToken(token)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return NewAppError(fiber.StatusUnauthorized, "Token expired", nil, err)
			}
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, err)
		}

		if claims.TokenType != jwt.TokenTypeAccess || m.jwt.IsRefreshToken(claims) {
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, nil)
		}

		c.Locals(CtxUserIDKey, claims.UserID)
		c.Locals(CtxEmailKey, claims.Email)
		c.Locals(CtxIsRecruiterKey, claims.IsRecruiter)

		return c.Next()
	}
}

// RequireRecruiter rejects non-recruiter callers. It must run after
// Middleware.
func (m *AuthMiddleware) RequireRecruiter() fiber.Handler {
	return func(c fiber.Ctx) error {
		isRecruiter, ok := c.Locals(CtxIsRecruiterKey).(bool)
		if !ok || !isRecruiter {
			return NewAppError(fiber.StatusForbidden, "Recruiter account required", nil, nil)
		}
		return c.Next()
	}
}

// RequireApplicant rejects recruiter callers. It must run after Middleware.
func (m *AuthMiddleware) RequireApplicant() fiber.Handler {
	return func(c fiber.Ctx) error {
		isRecruiter, ok := c.Locals(CtxIsRecruiterKey).(bool)
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}
		if isRecruiter {
			return NewAppError(fiber.StatusForbidden, "Applicant account required", nil, nil)
		}
		return c.Next()
	}
}

func UserIDFromCtx(c fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals(CtxUserIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

func bearerTokenFromHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}

	return token, true
}
