package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tripnest/utils"
)

// actorContextKey is the gin context key holding the authenticated actor.
const actorContextKey = "actor"

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// ActorAuth verifies the bearer token and stores the actor claims on the
// context. With optional true, requests without a token pass through
// unauthenticated; an invalid token is rejected either way.
func ActorAuth(optional bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			if optional {
				c.Next()
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false, "message": "authentication required",
			})
			return
		}

		actor, err := utils.ParseActorToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false, "message": "invalid or expired token",
			})
			return
		}

		c.Set(actorContextKey, actor)
		c.Next()
	}
}

// GetActor returns the authenticated actor from the context, or nil for
// guest requests.
func GetActor(c *gin.Context) *utils.Actor {
	v, ok := c.Get(actorContextKey)
	if !ok {
		return nil
	}
	actor, ok := v.(*utils.Actor)
	if !ok {
		return nil
	}
	return actor
}
