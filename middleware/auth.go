package middleware

import (
	"net/http"
	"strings"

	"servicehub/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by JWTAuthMiddleware.
const (
	ContextUserID = "userID"
	ContextEmail  = "email"
	ContextRole   = "role"
)

// JWTAuthMiddleware validates the bearer token and stores the caller's
// identity in the context. With optional set, requests without a usable
// token pass through anonymously.
func JWTAuthMiddleware(optional bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authenticate(c, optional) {
			c.Next()
		}
	}
}

// authenticate loads the caller's claims into c. It reports false after
// answering 401.
func authenticate(c *gin.Context, optional bool) bool {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		if optional {
			return true
		}
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "missing or invalid Authorization header")
		return false
	}
	tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

	claims, err := utils.ParseToken(tokenString)
	if err != nil {
		if optional {
			return true
		}
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "invalid token")
		return false
	}

	c.Set(ContextUserID, claims.UserID)
	c.Set(ContextEmail, claims.Email)
	c.Set(ContextRole, claims.Role)
	return true
}

// RequireRole rejects authenticated callers whose role is not listed.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextRole)
		for _, r := range roles {
			if r == role {
				c.Next()
				return
			}
		}
		utils.JSONError(c, http.StatusForbidden, "Forbidden", "requires role "+strings.Join(roles, " or "))
	}
}

// UserID returns the authenticated caller's id, if any.
func UserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok && id > 0
}
