package middlewares

import (
	"github.com/gin-gonic/gin"
)

const RoleCookie = "tastyeats-role"

// The role is an unauthenticated client-side label ("user" or "chef")
// deciding which view the client renders. It is not an access control
// mechanism and nothing here verifies it.
func RoleMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetHeader("X-Role")
		if role == "" {
			role, _ = c.Cookie(RoleCookie)
		}
		c.Set("role", role)
		c.Next()
	}
}

func RequireRole(requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get("role")
		allowed := false
		for _, r := range requiredRoles {
			if role == r {
				allowed = true
				break
			}
		}
		if !allowed {
			c.JSON(403, gin.H{"ok": false, "error": "forbidden"})
			c.Abort()
			return
		}
		c.Next()
	}
}
