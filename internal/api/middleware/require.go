package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/applytrack/server/internal/authz"
	"github.com/applytrack/server/internal/models"
)

// RequireRoles allows only callers whose role is in the allow-list.
func RequireRoles(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := Claims(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if !authz.HasRole(claims, roles...) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		c.Next()
	}
}

// RequireAnyType allows callers carrying at least one of the capability tags;
// Admin and Management pass unconditionally.
func RequireAnyType(types ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := Claims(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if !authz.HasAnyType(claims, types...) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		c.Next()
	}
}
