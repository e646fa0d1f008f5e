package services

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"

	"stayhub/dto"
	"stayhub/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/redis/go-redis/v9"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// SaveLastFilters remembers a user's search filters for follow-up queries
func SaveLastFilters(ctx context.Context, rdb *redis.Client, key string, filters *dto.SearchFilters) error {
	b, _ := json.Marshal(filters)
	return rdb.Set(ctx, "last_filters:"+key, b, 30*time.Minute).Err()
}

func GetLastFilters(ctx context.Context, rdb *redis.Client, key string) (*dto.SearchFilters, error) {
	val, err := rdb.Get(ctx, "last_filters:"+key).Result()
	if err != nil {
		return nil, err
	}
	var filters dto.SearchFilters
	json.Unmarshal([]byte(val), &filters)
	return &filters, nil
}

func ClearLastFilters(ctx context.Context, rdb *redis.Client, key string) error {
	return rdb.Del(ctx, "last_filters:"+key).Err()
}

// MergeFilters overlays a new search request onto the previous one
func MergeFilters(old *dto.SearchFilters, next *dto.SearchFilters) *dto.SearchFilters {
	next.Query = orString(next.Query, old.Query)
	next.PropertyType = orString(next.PropertyType, old.PropertyType)
	next.Location = orString(next.Location, old.Location)

	// Re-entered price bounds replace a contradictory previous range
	if next.MinPrice != nil && old.MaxPrice != nil && *next.MinPrice > *old.MaxPrice {
		next.MaxPrice = nil
	} else {
		next.MaxPrice = orFloatPointer(next.MaxPrice, old.MaxPrice)
	}

	if next.MaxPrice != nil && old.MinPrice != nil && *next.MaxPrice < *old.MinPrice {
		next.MinPrice = nil
	} else {
		next.MinPrice = orFloatPointer(next.MinPrice, old.MinPrice)
	}

	return next
}

func orString(newVal, oldVal string) string {
	if newVal != "" {
		return newVal
	}
	return oldVal
}

func orFloatPointer(newVal, oldVal *float64) *float64 {
	if newVal != nil {
		return newVal
	}
	return oldVal
}

// NormalizeQuery lowercases and strips diacritics for matching
func NormalizeQuery(input string) string {
	input = strings.TrimSpace(input)
	return strings.ToLower(unidecode.Unidecode(input))
}

func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

func similarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

var propertyTypeKeywords = map[string][]string{
	"house":       {"house", "home", "villa"},
	"apartment":   {"apartment", "flat", "condo"},
	"room":        {"room", "private room"},
	"guest_house": {"guest house", "guesthouse", "hostel"},
}

// parsePropertyType maps a free-text query to a property type, or ""
func parsePropertyType(query string) string {
	normalized := NormalizeQuery(query)
	for propertyType, keywords := range propertyTypeKeywords {
		matcher := createMatcher(keywords)
		match := matcher.Closest(normalized)
		if match != "" && strings.Contains(normalized, match) {
			return propertyType
		}
	}
	return ""
}

// prepareLocationList builds the unique normalized location vocabulary
func prepareLocationList(rooms []models.Room) []string {
	uniqueValues := make(map[string]bool)

	for _, room := range rooms {
		if room.Location != "" {
			uniqueValues[NormalizeQuery(room.Location)] = true
		}
	}

	uniqueList := make([]string, 0, len(uniqueValues))
	for val := range uniqueValues {
		uniqueList = append(uniqueList, val)
	}
	return uniqueList
}

func scoreRoom(query string, room models.Room, cmLocation *closestmatch.ClosestMatch) int {
	normalizedQuery := NormalizeQuery(query)
	score := 0

	if propertyType := parsePropertyType(normalizedQuery); propertyType != "" && propertyType == room.PropertyType {
		score += 20
	}

	if room.Location != "" && cmLocation.Closest(normalizedQuery) == NormalizeQuery(room.Location) {
		score += 13
	}

	normalizedTitle := NormalizeQuery(room.Title)
	if similarity(normalizedQuery, normalizedTitle) > 0.7 || strings.Contains(normalizedTitle, normalizedQuery) {
		score += 12
	}

	for _, amenity := range room.AmenityList() {
		if strings.Contains(normalizedQuery, NormalizeQuery(amenity)) {
			score += 4
		}
	}

	return score
}

// SearchRooms scores every candidate room against the query concurrently and
// returns matches ordered by descending score.
func SearchRooms(query string, rooms []models.Room) []dto.ScoredRoom {
	cmLocation := createMatcher(prepareLocationList(rooms))

	scoreCh := make(chan dto.ScoredRoom, len(rooms))
	var wg sync.WaitGroup

	for _, room := range rooms {
		wg.Add(1)
		go func(room models.Room) {
			defer wg.Done()
			score := scoreRoom(query, room, cmLocation)
			if score > 0 {
				scoreCh <- dto.ScoredRoom{
					Room:  room,
					Score: score,
				}
			}
		}(room)
	}

	go func() {
		wg.Wait()
		close(scoreCh)
	}()

	var scored []dto.ScoredRoom
	for scoredRoom := range scoreCh {
		scored = append(scored, scoredRoom)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}
