package services

import (
	"encoding/json"
	"testing"

	"stayhub/dto"
	"stayhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeQuery(t *testing.T) {
	assert.Equal(t, "cafe in paris", NormalizeQuery("  Café in Paris "))
	assert.Equal(t, "apartment", NormalizeQuery("APARTMENT"))
}

func TestMergeFilters(t *testing.T) {
	min := 50.0
	max := 200.0
	old := &dto.SearchFilters{Query: "loft", MinPrice: &min, MaxPrice: &max}

	merged := MergeFilters(old, &dto.SearchFilters{PropertyType: "apartment"})
	assert.Equal(t, "loft", merged.Query)
	assert.Equal(t, "apartment", merged.PropertyType)
	require.NotNil(t, merged.MinPrice)
	assert.Equal(t, 50.0, *merged.MinPrice)

	// A new min above the old max drops the stale max
	newMin := 500.0
	merged = MergeFilters(old, &dto.SearchFilters{MinPrice: &newMin})
	assert.Nil(t, merged.MaxPrice)
	assert.Equal(t, 500.0, *merged.MinPrice)
}

func TestSearchRoomsScoresPropertyType(t *testing.T) {
	amenities, _ := json.Marshal([]string{"wifi", "pool"})
	rooms := []models.Room{
		{ID: 1, Title: "Downtown Loft", PropertyType: "apartment", Location: "Paris", Amenities: amenities},
		{ID: 2, Title: "Country Cottage", PropertyType: "house", Location: "Lyon"},
	}

	scored := SearchRooms("apartment in paris", rooms)
	require.NotEmpty(t, scored)
	assert.Equal(t, uint(1), scored[0].Room.ID)

	for _, s := range scored {
		assert.Greater(t, s.Score, 0)
	}
}

func TestSearchRoomsNoMatches(t *testing.T) {
	rooms := []models.Room{
		{ID: 1, Title: "Beach Hut", PropertyType: "house"},
	}

	scored := SearchRooms("zzzzzz qqqqq", rooms)
	assert.Empty(t, scored)
}
