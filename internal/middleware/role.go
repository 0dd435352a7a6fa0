package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lotusspa/salon-scheduler/internal/domain/account"
)

// RequireRoles gates a route group to the given roles. It must run
// after AuthMiddleware.
func RequireRoles(roles ...account.Role) gin.HandlerFunc {
	allowed := make(map[account.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		v, _ := c.Get(ContextUserRole)
		roleStr, _ := v.(string)
		role, err := account.ParseRole(roleStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		if _, ok := allowed[role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}
