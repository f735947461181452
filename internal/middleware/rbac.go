package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ZeeshanMalik1/switch2itech-backend/internal/model"
)

// RequireRole passes the request through when the caller's role is in the
// allow-list. There is no implicit admin bypass: routes that admins may hit
// list admin explicitly. Composes after AuthMiddleware.
func RequireRole(roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := GetCurrentUserRole(c)
		for _, r := range roles {
			if userRole == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"status":  "error",
			"message": fmt.Sprintf("Access denied. Your role: %s", userRole),
		})
	}
}
