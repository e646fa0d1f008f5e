package validator

import (
	"regexp"
	"time"

	"stayhub/errors"
	"stayhub/models"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// DateLayout is the wire format for calendar dates
const DateLayout = "2006-01-02"

// ValidateUser checks registration input
func ValidateUser(user *models.User) error {
	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email is required", nil)
	}

	if !emailRegex.MatchString(user.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Invalid email address", nil)
	}

	if user.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Password is required", nil)
	}

	if len(user.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Password must be at least 6 characters", nil)
	}

	if user.Role != models.RoleUser && user.Role != models.RoleAdmin {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Invalid role", nil)
	}

	return nil
}

// ValidateRoom checks room create input
func ValidateRoom(room *models.Room) error {
	if room.Title == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Title is required", nil)
	}

	if room.Price <= 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Price must be positive", nil)
	}

	return nil
}

// ValidateRating checks a review rating is an integer in [1,5]
func ValidateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return errors.NewAppError(errors.ErrCodeInvalidRating, "Rating must be between 1 and 5", nil)
	}
	return nil
}

// ParseDate parses a calendar date in the wire format, normalized to UTC midnight
func ParseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid date format, expected YYYY-MM-DD", err)
	}
	return parsed, nil
}
