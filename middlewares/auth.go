package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"

	"matsal-partner-api/pkg/resp"
	"matsal-partner-api/utils"
)

// AuthMiddleware validates the bearer token and, when roles are given,
// enforces the role allow-list. Claims land on the request context for
// handlers via utils.CurrentUser.
func AuthMiddleware(secret string, requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			resp.Unauthorized(c, "missing or invalid token")
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(strings.TrimPrefix(h, "Bearer "), secret)
		if err != nil {
			resp.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		c.Set("userId", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("name", claims.Name)
		c.Set("role", string(claims.Role))

		if len(requiredRoles) > 0 {
			allowed := false
			for _, r := range requiredRoles {
				if string(claims.Role) == r {
					allowed = true
					break
				}
			}
			if !allowed {
				resp.Forbidden(c, "forbidden")
				c.Abort()
				return
			}
		}

		c.Next()
	}
}
