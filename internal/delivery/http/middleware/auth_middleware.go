package middleware

import (
	"net/http"
	"strings"

	"landhub/internal/delivery/http/response"
	"landhub/internal/domain/service"
	"landhub/internal/infra/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// ContextKeyAdminEmail is where Authenticate stores the caller's email.
const ContextKeyAdminEmail = "adminEmail"

// AuthMiddleware guards the administrative surface. Every mutating route
// behind it requires a valid admin session token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the Bearer token and checks the admin role claim.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Error(c, http.StatusUnauthorized, "authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Error(c, http.StatusUnauthorized, "invalid token format, must be Bearer token")
		}

		token, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			return response.Error(c, http.StatusUnauthorized, "invalid or expired token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return response.Error(c, http.StatusUnauthorized, "failed to parse token claims")
		}

		role, _ := claims["role"].(string)
		if role != auth.AdminRole {
			return response.Error(c, http.StatusForbidden, "admin access required")
		}

		if email, ok := claims["sub"].(string); ok {
			c.Set(ContextKeyAdminEmail, email)
		}

		return next(c)
	}
}
