package controllers

import (
	"stayhub/response"

	"github.com/gin-gonic/gin"
)

// GetProfile returns the authenticated user's account
func GetProfile(c *gin.Context) {
	user, err := getCurrentUser(c)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	response.Success(c, toUserResponse(user))
}
