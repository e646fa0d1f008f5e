package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"stayhub/config"
	"stayhub/models"
	"stayhub/validator"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func GetUserByEmail(email string) (models.User, error) {
	var user models.User
	err := config.DB.Where("email = ?", email).First(&user).Error
	return user, err
}

func GetUserByID(id uint) (models.User, error) {
	var user models.User
	err := config.DB.First(&user, id).Error
	return user, err
}

// CreateUser registers a new account. Public registration always gets the
// user role regardless of input.
func CreateUser(input models.User) (models.User, error) {
	if input.Role == "" {
		input.Role = models.RoleUser
	}

	if err := validator.ValidateUser(&input); err != nil {
		return models.User{}, err
	}

	_, err := GetUserByEmail(input.Email)
	if err == nil {
		return models.User{}, fmt.Errorf("email %s is already registered", input.Email)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}
	input.Password = string(hashed)
	input.IsActive = true

	if err := config.DB.Create(&input).Error; err != nil {
		return models.User{}, err
	}

	return input, nil
}

// CreateGoogleUser provisions an account for a verified Google identity.
// The generated password is random and never surfaced.
func CreateGoogleUser(name, email string) (models.User, error) {
	raw := make([]byte, 16)
	if _, err := rand.Read(raw); err != nil {
		return models.User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(hex.EncodeToString(raw)), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Email:    email,
		FullName: name,
		Password: string(hashed),
		Role:     models.RoleUser,
		IsActive: true,
	}

	if err := config.DB.Create(&user).Error; err != nil {
		return models.User{}, err
	}

	return user, nil
}

// CheckPassword compares a plaintext password against the stored hash
func CheckPassword(user models.User, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password))
}
