// File: middleware/role.go
package middleware

import (
	"net/http"

	"fairway/models"

	"github.com/gin-gonic/gin"
)

// RequireRoles gates a route group to the listed roles. Must run after
// JWTAuthMiddleware.
func RequireRoles(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		role := c.GetString(CtxUserRole)
		if !allowed[role] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient role for this operation"})
			return
		}
		c.Next()
	}
}

// RequireAdmin gates a route group to the administrative roles that may
// manage tee-time inventory.
func RequireAdmin() gin.HandlerFunc {
	return RequireRoles(models.RoleSuperAdmin, models.RoleSiteAdmin, models.RoleCourseAdmin)
}

// RequireSuperAdmin gates a route group to super admins only.
func RequireSuperAdmin() gin.HandlerFunc {
	return RequireRoles(models.RoleSuperAdmin)
}
