package validator

import (
	"testing"

	"stayhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateUser(t *testing.T) {
	valid := models.User{Email: "guest@example.com", Password: "secret1", Role: models.RoleUser}
	assert.NoError(t, ValidateUser(&valid))

	tests := []struct {
		name string
		user models.User
	}{
		{"missing email", models.User{Password: "secret1", Role: models.RoleUser}},
		{"bad email", models.User{Email: "not-an-email", Password: "secret1", Role: models.RoleUser}},
		{"missing password", models.User{Email: "guest@example.com", Role: models.RoleUser}},
		{"short password", models.User{Email: "guest@example.com", Password: "abc", Role: models.RoleUser}},
		{"bad role", models.User{Email: "guest@example.com", Password: "secret1", Role: "owner"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, ValidateUser(&tt.user))
		})
	}
}

func TestValidateRoom(t *testing.T) {
	assert.NoError(t, ValidateRoom(&models.Room{Title: "Loft", Price: 100}))
	assert.Error(t, ValidateRoom(&models.Room{Price: 100}))
	assert.Error(t, ValidateRoom(&models.Room{Title: "Loft"}))
	assert.Error(t, ValidateRoom(&models.Room{Title: "Loft", Price: -5}))
}

func TestValidateRating(t *testing.T) {
	for rating := 1; rating <= 5; rating++ {
		assert.NoError(t, ValidateRating(rating))
	}
	assert.Error(t, ValidateRating(0))
	assert.Error(t, ValidateRating(6))
	assert.Error(t, ValidateRating(-1))
}

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2026-03-15")
	require.NoError(t, err)
	assert.Equal(t, 2026, parsed.Year())
	assert.Equal(t, 15, parsed.Day())

	_, err = ParseDate("15/03/2026")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}
