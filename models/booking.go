package models

import (
	"time"
)

// Booking status values
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusModified  = "modified"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

// Payment methods
const (
	PaymentMethodQRCode    = "qr_code"
	PaymentMethodPayOnSite = "pay_on_site"
)

// Payment status values
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

// Cancellation policy tiers
const (
	PolicyFlexible = "flexible"
	PolicyModerate = "moderate"
	PolicyStrict   = "strict"
)

type Booking struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId"`
	User      *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	RoomID    uint      `json:"roomId"`
	Room      *Room     `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	StartDate time.Time `gorm:"not null" json:"startDate"`
	EndDate   time.Time `gorm:"not null" json:"endDate"`

	Guests     int     `gorm:"default:1" json:"guests"`
	TotalPrice float64 `gorm:"not null" json:"totalPrice"`
	Status     string  `gorm:"default:pending" json:"status"`

	PaymentMethod string `json:"paymentMethod"`
	PaymentStatus string `gorm:"default:pending" json:"paymentStatus"`
	TransactionID string `json:"transactionId,omitempty"`

	CancellationPolicy string     `gorm:"default:flexible" json:"cancellationPolicy"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`
	CancellationReason string     `json:"cancellationReason,omitempty"`
	RefundAmount       *float64   `json:"refundAmount,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	Modifications []BookingModification `gorm:"foreignKey:BookingID" json:"modifications,omitempty"`
	Review        *Review               `gorm:"foreignKey:BookingID" json:"review,omitempty"`
}

// Nights is the whole-day difference between end and start date
func (b *Booking) Nights() int {
	return int(b.EndDate.Sub(b.StartDate).Hours() / 24)
}
