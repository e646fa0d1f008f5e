package models

import (
	"encoding/json"
	"time"
)

type Room struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`

	Price         float64  `gorm:"not null" json:"price"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"`

	Location  string   `json:"location"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	PropertyType string `gorm:"default:room" json:"propertyType"`
	Bedrooms     int    `gorm:"default:1" json:"bedrooms"`
	Beds         int    `gorm:"default:1" json:"beds"`
	Bathrooms    int    `gorm:"default:1" json:"bathrooms"`
	MaxGuests    int    `gorm:"default:2" json:"maxGuests"`

	Amenities      json.RawMessage `gorm:"type:json" json:"amenities"`
	BookingOptions json.RawMessage `gorm:"type:json" json:"bookingOptions"`

	IsGuestFavourite bool `json:"isGuestFavourite"`
	IsLuxe           bool `json:"isLuxe"`

	ImageURL string          `json:"imageUrl"`
	Images   json.RawMessage `gorm:"type:json" json:"images"`

	IsAvailable bool `json:"isAvailable"`
	IsDeleted   bool `json:"isDeleted"`

	HostID *uint `json:"hostId,omitempty"`
	Host   *User `gorm:"foreignKey:HostID" json:"host,omitempty"`

	Bookings     []Booking          `gorm:"foreignKey:RoomID" json:"bookings,omitempty"`
	Reviews      []Review           `gorm:"foreignKey:RoomID" json:"reviews,omitempty"`
	Availability []RoomAvailability `gorm:"foreignKey:RoomID" json:"availability,omitempty"`
}

// AmenityList decodes the stored amenity set; nil on absent or malformed data
func (r *Room) AmenityList() []string {
	return decodeStringSet(r.Amenities)
}

// BookingOptionList decodes the stored booking-option set
func (r *Room) BookingOptionList() []string {
	return decodeStringSet(r.BookingOptions)
}

// HasAmenities reports whether required is a subset of the room's amenity set.
// A room with no amenity set never matches a non-empty requirement.
func (r *Room) HasAmenities(required []string) bool {
	return isSubset(required, r.AmenityList())
}

// HasBookingOptions reports whether required is a subset of the room's options
func (r *Room) HasBookingOptions(required []string) bool {
	return isSubset(required, r.BookingOptionList())
}

func decodeStringSet(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}
	var values []string
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil
	}
	return values
}

func isSubset(required, available []string) bool {
	if len(required) == 0 {
		return true
	}
	if len(available) == 0 {
		return false
	}
	set := make(map[string]bool, len(available))
	for _, v := range available {
		set[v] = true
	}
	for _, v := range required {
		if !set[v] {
			return false
		}
	}
	return true
}
