package middleware

import (
	"strings"

	"attendly-api/internal/config"
	"attendly-api/internal/core/domain"
	"attendly-api/internal/pkg/jwt"
	"attendly-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// identityKey is the locals slot holding the authenticated identity
const identityKey = "identity"

// AuthMiddleware is the route guard for authenticated pages: a missing
// or invalid token answers 401, which the client treats as its
// redirect-to-login signal.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var accessToken string

		// 1. Try to get token from cookie first
		accessToken = c.Cookies("access_token")

		// 2. If not in cookie, try Authorization header
		if accessToken == "" {
			authHeader := c.Get("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				accessToken = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		// 3. No token found
		if accessToken == "" {
			return response.Unauthorized(c, "Access token required")
		}

		// 4. Validate token
		claims, err := jwt.ValidateAccessToken(accessToken, cfg.JWT.Secret)
		if err != nil {
			if err == jwt.ErrTokenExpired {
				return response.Unauthorized(c, "Access token expired")
			}
			return response.Unauthorized(c, "Invalid access token")
		}

		// 5. Set identity in context
		c.Locals(identityKey, &domain.Identity{
			UserID:   claims.UserID,
			Username: claims.Username,
			FullName: claims.FullName,
			Role:     claims.Role,
		})

		return c.Next()
	}
}

// RoleMiddleware restricts a route to the given roles: an authenticated
// identity outside the allowed set answers 403, the client's
// redirect-to-role-home signal.
func RoleMiddleware(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity := CurrentIdentity(c)
		if identity == nil {
			return response.Unauthorized(c, "Unauthorized")
		}

		for _, allowedRole := range allowedRoles {
			if identity.Role == allowedRole {
				return c.Next()
			}
		}

		return response.Forbidden(c, "You don't have permission to access this resource")
	}
}

// AdminOnly middleware allows only the admin role
func AdminOnly() fiber.Handler {
	return RoleMiddleware(domain.RoleAdmin)
}

// CurrentIdentity returns the authenticated identity set by
// AuthMiddleware, or nil on unguarded routes
func CurrentIdentity(c *fiber.Ctx) *domain.Identity {
	identity, ok := c.Locals(identityKey).(*domain.Identity)
	if !ok {
		return nil
	}
	return identity
}
