package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nusava/nusava-backend/models"
)

// AgentMiddleware ensures the caller is an agent or an admin.
// This middleware should be used after AuthMiddleware.
func AgentMiddleware() gin.HandlerFunc {
	return requireRoles(models.RoleAgent, models.RoleAdmin)
}

// AdminMiddleware ensures the caller is an admin.
// This middleware should be used after AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return requireRoles(models.RoleAdmin)
}

func requireRoles(allowed ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Get role from context (set by AuthMiddleware)
		role, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Authentication required",
			})
			c.Abort()
			return
		}

		roleStr, ok := role.(string)
		if ok {
			for _, want := range allowed {
				if roleStr == string(want) {
					c.Next()
					return
				}
			}
		}

		c.JSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": "Insufficient privileges",
		})
		c.Abort()
	}
}
