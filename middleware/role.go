package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripnest/utils"
)

// RequireRoles aborts with 403 unless the authenticated actor has one of the
// given roles. Must run after ActorAuth.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := GetActor(c)
		if actor == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false, "message": "authentication required",
			})
			return
		}
		for _, role := range roles {
			if actor.Role == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"success": false, "message": "insufficient role",
		})
	}
}

// RequireStaff limits an endpoint to vendors and admins.
func RequireStaff() gin.HandlerFunc {
	return RequireRoles(utils.RoleVendor, utils.RoleAdmin)
}
