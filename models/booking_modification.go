package models

import "time"

// BookingModification is an immutable audit row recording one booking change
type BookingModification struct {
	ID        uint `json:"id" gorm:"primaryKey"`
	BookingID uint `gorm:"index" json:"bookingId"`

	OldStartDate time.Time `json:"oldStartDate"`
	OldEndDate   time.Time `json:"oldEndDate"`
	NewStartDate time.Time `json:"newStartDate"`
	NewEndDate   time.Time `json:"newEndDate"`

	OldGuests int `json:"oldGuests"`
	NewGuests int `json:"newGuests"`

	OldPrice float64 `json:"oldPrice"`
	NewPrice float64 `json:"newPrice"`
	// positive = additional charge, negative = refund owed
	PriceDifference float64 `json:"priceDifference"`

	ModificationReason string    `json:"modificationReason,omitempty"`
	ModifiedAt         time.Time `gorm:"autoCreateTime" json:"modifiedAt"`
	ModifiedByUserID   uint      `json:"modifiedByUserId"`
}
