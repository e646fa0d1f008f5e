package dto

import "stayhub/models"

// SearchFilters is the merged state of a user's fuzzy search session
type SearchFilters struct {
	Query        string   `json:"query,omitempty"`
	PropertyType string   `json:"propertyType,omitempty"`
	MinPrice     *float64 `json:"minPrice,omitempty"`
	MaxPrice     *float64 `json:"maxPrice,omitempty"`
	Location     string   `json:"location,omitempty"`
}

type ScoredRoom struct {
	Room  models.Room `json:"room"`
	Score int         `json:"score"`
}
