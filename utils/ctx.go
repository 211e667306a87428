package utils

import "github.com/gin-gonic/gin"

// CurrentAdminID reads the admin id the auth middleware stored on the
// request context.
func CurrentAdminID(c *gin.Context) uint {
	v, _ := c.Get("adminId")
	switch id := v.(type) {
	case uint:
		return id
	case int:
		return uint(id)
	case int64:
		return uint(id)
	case float64:
		return uint(id)
	default:
		return 0
	}
}
