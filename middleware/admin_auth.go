package middleware

import (
	"net/http"

	"servicehub/models"
	"servicehub/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthAdminMiddleware admits only bearers of a valid admin token.
func JWTAuthAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c, false) {
			return
		}
		if c.GetString(ContextRole) != models.RoleAdmin {
			utils.JSONError(c, http.StatusForbidden, "Forbidden", "admin access required")
			return
		}
		c.Next()
	}
}
