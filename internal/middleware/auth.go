package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ZeeshanMalik1/switch2itech-backend/internal/model"
	jwtpkg "github.com/ZeeshanMalik1/switch2itech-backend/pkg/jwt"
)

// SessionCookie is the cookie carrying the JWT. The same token is also
// accepted via the Authorization header; the cookie is checked first.
const SessionCookie = "jwt"

func AuthMiddleware(jwtSecret string, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenStr string

		// 1. HttpOnly cookie (browser clients)
		if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
			tokenStr = cookie
		}

		// 2. Fallback to Authorization header (mobile / API clients)
		if tokenStr == "" {
			authHeader := c.GetHeader("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				tokenStr = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		if tokenStr == "" {
			abortUnauthorized(c, "Not authorized. Please log in.")
			return
		}

		claims, err := jwtpkg.ParseToken(jwtSecret, tokenStr)
		if err != nil {
			if errors.Is(err, jwtpkg.ErrExpired) {
				abortUnauthorized(c, "Session expired. Please log in again.")
			} else {
				abortUnauthorized(c, "Invalid token. Please log in again.")
			}
			return
		}

		var user model.User
		if err := db.First(&user, claims.UserID).Error; err != nil {
			abortUnauthorized(c, "The user belonging to this token no longer exists.")
			return
		}

		c.Set("user", &user)
		c.Set("userID", user.ID)
		c.Set("userRole", user.Role)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"status":  "error",
		"message": message,
	})
}

func GetCurrentUser(c *gin.Context) *model.User {
	u, exists := c.Get("user")
	if !exists {
		return nil
	}
	return u.(*model.User)
}

func GetCurrentUserID(c *gin.Context) uint {
	id, _ := c.Get("userID")
	return id.(uint)
}

func GetCurrentUserRole(c *gin.Context) model.Role {
	role, _ := c.Get("userRole")
	return role.(model.Role)
}
