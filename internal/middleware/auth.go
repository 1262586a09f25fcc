package middleware

import (
	"net/http"
	"strings"

	"iinreg_backend/internal/auth"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware закрывает админские эндпоинты: требует
// Authorization: Bearer <JWT> с админским scope (выдается /admin/login)
func AdminAuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if _, err := auth.ParseAdminToken(jwtSecret, tokenStr); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Next()
	}
}
