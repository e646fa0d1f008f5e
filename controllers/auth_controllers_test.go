package controllers_test

import (
	"net/http"
	"testing"

	"stayhub/config"
	"stayhub/dto"
	"stayhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterUser(t *testing.T) {
	router := setupTest(t)

	recorder := doRequest(t, router, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"email":    "New.Guest@Example.com",
		"password": "secret1",
		"fullName": "New Guest",
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var user dto.UserResponse
	decodeData(t, recorder, &user)
	assert.Equal(t, "new.guest@example.com", user.Email)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.True(t, user.IsActive)

	// Password never leaves the server
	assert.NotContains(t, recorder.Body.String(), "secret1")

	var stored models.User
	require.NoError(t, config.DB.Where("email = ?", "new.guest@example.com").First(&stored).Error)
	assert.NotEqual(t, "secret1", stored.Password)
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	router := setupTest(t)
	createTestUser(t, "guest@example.com", models.RoleUser)

	recorder := doRequest(t, router, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"email":    "Guest@Example.com",
		"password": "secret1",
	})
	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	router := setupTest(t)

	recorder := doRequest(t, router, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"email":    "guest@example.com",
		"password": "abc",
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestLogin(t *testing.T) {
	router := setupTest(t)
	createTestUser(t, "guest@example.com", models.RoleUser)

	recorder := doRequest(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "guest@example.com",
		"password": "secret1",
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var result struct {
		AccessToken string           `json:"accessToken"`
		UserInfo    dto.UserResponse `json:"user_info"`
	}
	decodeData(t, recorder, &result)
	assert.NotEmpty(t, result.AccessToken)
	assert.Equal(t, "guest@example.com", result.UserInfo.Email)

	// The issued token works against a protected route
	recorder = doRequest(t, router, http.MethodGet, "/api/v1/users/me", result.AccessToken, nil)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	router := setupTest(t)
	createTestUser(t, "guest@example.com", models.RoleUser)

	recorder := doRequest(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "guest@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestLoginUnknownEmail(t *testing.T) {
	router := setupTest(t)

	recorder := doRequest(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "nobody@example.com",
		"password": "secret1",
	})
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestGetProfileRequiresToken(t *testing.T) {
	router := setupTest(t)

	recorder := doRequest(t, router, http.MethodGet, "/api/v1/users/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestGetProfile(t *testing.T) {
	router := setupTest(t)
	user, token := createTestUser(t, "guest@example.com", models.RoleUser)

	recorder := doRequest(t, router, http.MethodGet, "/api/v1/users/me", token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var profile dto.UserResponse
	decodeData(t, recorder, &profile)
	assert.Equal(t, user.ID, profile.ID)
	assert.Equal(t, "guest@example.com", profile.Email)
}
