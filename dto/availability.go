package dto

type AvailabilityRequest struct {
	RoomID        uint     `json:"roomId" binding:"required"`
	Date          string   `json:"date" binding:"required"`
	IsAvailable   *bool    `json:"isAvailable"`
	PriceOverride *float64 `json:"priceOverride,omitempty"`
	Notes         string   `json:"notes,omitempty"`
}

type AvailabilityUpdateRequest struct {
	IsAvailable   *bool    `json:"isAvailable,omitempty"`
	PriceOverride *float64 `json:"priceOverride,omitempty"`
	Notes         *string  `json:"notes,omitempty"`
}

type BlockDatesRequest struct {
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
	Notes     string `json:"notes,omitempty"`
}

type BlockDatesResponse struct {
	Message string `json:"message"`
	Created int    `json:"created"`
}
