package middleware

import (
	"errors"
	"net/http"
	"strings"

	"hrms/internal/models"
	"hrms/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ClaimsKey is the gin context key under which validated claims are stored.
const ClaimsKey = "claims"

// AuthMiddleware creates a Gin middleware for JWT authentication. A missing,
// malformed, invalid or expired bearer token rejects the request with 403;
// on success the decoded claims are attached to the request context.
func AuthMiddleware(tokens *service.TokenService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusForbidden, gin.H{"detail": "Authorization header required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusForbidden, gin.H{"detail": "Authorization header format must be Bearer <token>"})
			c.Abort()
			return
		}

		claims, err := tokens.Validate(parts[1])
		if err != nil {
			if errors.Is(err, service.ErrTokenExpired) {
				c.JSON(http.StatusForbidden, gin.H{"detail": "Token expired"})
				c.Abort()
				return
			}
			logger.Debug("Invalid JWT token", zap.Error(err))
			c.JSON(http.StatusForbidden, gin.H{"detail": "Invalid token"})
			c.Abort()
			return
		}

		c.Set(ClaimsKey, claims)

		c.Next()
	}
}

// ClaimsFromContext returns the claims attached by AuthMiddleware.
func ClaimsFromContext(c *gin.Context) (*models.Claims, bool) {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*models.Claims)
	return claims, ok
}
