package models

import "time"

type Review struct {
	ID        uint `json:"id" gorm:"primaryKey"`
	BookingID uint `gorm:"unique" json:"bookingId"`
	UserID    uint `json:"userId"`
	RoomID    uint `gorm:"index" json:"roomId"`

	Rating  int    `gorm:"not null" json:"rating"`
	Comment string `json:"comment"`

	IsVerified bool `json:"isVerified"`
	IsApproved bool `json:"isApproved"`
	IsFlagged  bool `json:"isFlagged"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
