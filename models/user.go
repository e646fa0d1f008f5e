package models

import (
	"time"
)

// User roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Email     string    `gorm:"unique;not null" json:"email"`
	FullName  string    `json:"fullName"`
	Password  string    `json:"-"`
	Role      string    `gorm:"default:user" json:"role"`
	IsActive  bool      `json:"isActive"`
	Bookings  []Booking `gorm:"foreignKey:UserID" json:"bookings,omitempty"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
