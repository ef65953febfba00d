package utils

import (
	"github.com/gin-gonic/gin"

	"matsal-partner-api/entity"
)

// CurrentUser rebuilds the user record the auth middleware stored on the
// request context.
func CurrentUser(c *gin.Context) (entity.User, bool) {
	id, ok := c.Get("userId")
	if !ok {
		return entity.User{}, false
	}
	uid, ok := id.(int)
	if !ok {
		return entity.User{}, false
	}
	return entity.User{
		ID:    uid,
		Email: c.GetString("email"),
		Name:  c.GetString("name"),
		Role:  entity.Role(c.GetString("role")),
	}, true
}
