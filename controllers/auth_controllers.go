package controllers

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"stayhub/dto"
	"stayhub/models"
	"stayhub/response"
	"stayhub/services"

	"github.com/gin-gonic/gin"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"
)

func toUserResponse(user models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      user.Role,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// getCurrentUser resolves the authenticated user from the identity the
// middleware stored on the context.
func getCurrentUser(c *gin.Context) (models.User, error) {
	email, exists := c.Get("userEmail")
	if !exists {
		return models.User{}, errors.New("no authenticated user on context")
	}

	return services.GetUserByEmail(email.(string))
}

func RegisterUser(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	input.Email = strings.ToLower(input.Email)

	if _, err := services.GetUserByEmail(input.Email); err == nil {
		response.Conflict(c, "Email already registered")
		return
	}

	// Public registration is always a regular user account
	user, err := services.CreateUser(models.User{
		Email:    input.Email,
		Password: input.Password,
		FullName: input.FullName,
		Role:     models.RoleUser,
	})
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, toUserResponse(user))
}

func Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	input.Email = strings.ToLower(input.Email)

	user, err := services.GetUserByEmail(input.Email)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	if err := services.CheckPassword(user, input.Password); err != nil {
		response.Unauthorized(c)
		return
	}

	accessToken, err := services.GenerateToken(services.UserInfo{
		Email: user.Email,
		Role:  user.Role,
	}, services.AccessTokenExpiryMinutes)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{
		"user_info":   toUserResponse(user),
		"accessToken": accessToken,
	})
}

func Logout(c *gin.Context) {
	cookies := c.Request.Cookies()
	for _, cookie := range cookies {
		c.SetCookie(cookie.Name, "", -1, "/", "", cookie.Secure, cookie.HttpOnly)
	}

	response.Success(c, nil)
}

func ForgotPassword(c *gin.Context) {
	var input dto.ForgotPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	// Reset delivery is out of scope; reply as if the mail went out
	response.Success(c, gin.H{
		"message": fmt.Sprintf("Password reset instructions sent to %s", input.Email),
	})
}

// AuthGoogle signs a user in with a Google ID token, creating the account on
// first login.
func AuthGoogle(c *gin.Context) {
	var input dto.GoogleAuthInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	payload, err := verifyGoogleIDToken(input.TokenID)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	googleUser := dto.GoogleUser{
		Name:          claimString(payload, "name"),
		Email:         claimString(payload, "email"),
		VerifiedEmail: claimBool(payload, "email_verified"),
	}

	if !googleUser.VerifiedEmail {
		response.BadRequest(c, "Email has not been verified")
		return
	}

	user, err := services.GetUserByEmail(googleUser.Email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user, err = services.CreateGoogleUser(googleUser.Name, googleUser.Email)
		if err != nil {
			response.ServerError(c)
			return
		}
	} else if err != nil {
		response.ServerError(c)
		return
	}

	accessToken, err := services.GenerateToken(services.UserInfo{
		Email: user.Email,
		Role:  user.Role,
	}, services.AccessTokenExpiryMinutes)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{
		"user_info":   toUserResponse(user),
		"accessToken": accessToken,
	})
}

func verifyGoogleIDToken(tokenID string) (*idtoken.Payload, error) {
	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	return idtoken.Validate(context.Background(), tokenID, clientID)
}

func claimString(payload *idtoken.Payload, key string) string {
	if v, ok := payload.Claims[key].(string); ok {
		return v
	}
	return ""
}

func claimBool(payload *idtoken.Payload, key string) bool {
	if v, ok := payload.Claims[key].(bool); ok {
		return v
	}
	return false
}
