package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"card-tracker/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware guards the admin surface. There is a single principal
// (the admin session minted by login), so passing validation is the whole
// authorization decision.
type AuthMiddleware struct {
	jwtSvc *jwt.Service
}

const ctxAdminKey = "admin_session"

func NewAuthMiddleware(jwtSvc *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{jwtSvc: jwtSvc}
}

func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		claims, err := m.jwtSvc.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxAdminKey, claims.Subject)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

func IsAdmin(c *gin.Context) bool {
	subject, exists := c.Get(ctxAdminKey)
	if !exists {
		return false
	}
	s, ok := subject.(string)
	return ok && s == jwt.SubjectAdmin
}
