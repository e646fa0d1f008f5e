package models

import "time"

// RoomAvailability is a per-date calendar override for a room.
// One row per (room, date); writes to an existing date update in place.
type RoomAvailability struct {
	ID     uint      `json:"id" gorm:"primaryKey"`
	RoomID uint      `gorm:"uniqueIndex:idx_room_date" json:"roomId"`
	Date   time.Time `gorm:"uniqueIndex:idx_room_date" json:"date"`

	IsAvailable   bool     `json:"isAvailable"`
	PriceOverride *float64 `json:"priceOverride,omitempty"`
	Notes         string   `json:"notes,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
