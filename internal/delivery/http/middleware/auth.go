package middleware

import (
	"errors"
	"slices"
	"strings"

	"talent-match/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const (
	CtxCallerKey = "caller"
	CtxUserIDKey = "user_id"
)

// Caller is the identity resolved from the bearer token. Authorization beyond
// the per-route role gate belongs to the identity service.
type Caller struct {
	UserID    uuid.UUID
	Role      string
	CompanyID *uuid.UUID
}

func CallerFrom(c fiber.Ctx) (Caller, bool) {
	caller, ok := c.Locals(CtxCallerKey).(Caller)
	if !ok || caller.UserID == uuid.Nil {
		return Caller{}, false
	}
	return caller, true
}

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
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}

		claims, err := m.jwt.ValidateToken(token)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return NewAppError(fiber.StatusUnauthorized, "Token expired", nil, err)
			}
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil, err)
		}

		c.Locals(CtxCallerKey, Caller{UserID: claims.UserID, Role: claims.Role, CompanyID: claims.CompanyID})
		c.Locals(CtxUserIDKey, claims.UserID)

		return c.Next()
	}
}

// RequireRole rejects callers whose role is not listed. It must run after
// the auth middleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c fiber.Ctx) error {
		caller, ok := CallerFrom(c)
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}
		if !slices.Contains(roles, caller.Role) {
			return NewAppError(fiber.StatusForbidden, "Forbidden", nil, nil)
		}
		return c.Next()
	}
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
