package dto

import "time"

type ReviewRequest struct {
	BookingID uint   `json:"bookingId" binding:"required"`
	RoomID    uint   `json:"roomId" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Comment   string `json:"comment"`
}

type ModerateReviewRequest struct {
	IsApproved *bool `json:"isApproved" binding:"required"`
	IsFlagged  bool  `json:"isFlagged"`
}

// ReviewWithUser is a room review enriched with the reviewer's identity
type ReviewWithUser struct {
	ID         uint      `json:"id"`
	BookingID  uint      `json:"bookingId"`
	RoomID     uint      `json:"roomId"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	IsVerified bool      `json:"isVerified"`
	CreatedAt  time.Time `json:"createdAt"`
	UserName   string    `json:"userName"`
	UserEmail  string    `json:"userEmail,omitempty"`
}
