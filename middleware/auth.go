package middleware

import (
	"strings"

	"stayhub/response"
	"stayhub/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token and optionally gates by role.
// The resolved identity is stored on the context for handlers.
func AuthMiddleware(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userInfo, err := services.ParseToken(tokenString)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		if len(roles) > 0 {
			hasRole := false
			for _, role := range roles {
				if role == userInfo.Role {
					hasRole = true
					break
				}
			}
			if !hasRole {
				response.Forbidden(c)
				c.Abort()
				return
			}
		}

		c.Set("userEmail", userInfo.Email)
		c.Set("userRole", userInfo.Role)
		c.Next()
	}
}
