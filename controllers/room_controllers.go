package controllers

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"stayhub/config"
	"stayhub/dto"
	"stayhub/models"
	"stayhub/response"
	"stayhub/services"
	"stayhub/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func parseSkipLimit(c *gin.Context) (int, int) {
	skip := 0
	limit := 100

	if parsed, err := strconv.Atoi(c.Query("skip")); err == nil && parsed >= 0 {
		skip = parsed
	}
	if parsed, err := strconv.Atoi(c.Query("limit")); err == nil && parsed > 0 {
		limit = parsed
	}

	return skip, limit
}

func parseFormBool(value string) bool {
	switch strings.ToLower(value) {
	case "true", "1", "yes":
		return true
	}
	return false
}

func splitCSV(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// GetAllRooms lists non-deleted rooms with optional filters.
// Amenity and booking-option subset filters run after the paginated fetch,
// so a page can come back short of the limit.
func GetAllRooms(c *gin.Context) {
	skip, limit := parseSkipLimit(c)

	query := config.DB.Model(&models.Room{}).Where("is_deleted = ?", false)

	if propertyType := c.Query("property_type"); propertyType != "" {
		query = query.Where("property_type = ?", propertyType)
	}
	if minPriceStr := c.Query("min_price"); minPriceStr != "" {
		if minPrice, err := strconv.ParseFloat(minPriceStr, 64); err == nil {
			query = query.Where("price >= ?", minPrice)
		}
	}
	if maxPriceStr := c.Query("max_price"); maxPriceStr != "" {
		if maxPrice, err := strconv.ParseFloat(maxPriceStr, 64); err == nil {
			query = query.Where("price <= ?", maxPrice)
		}
	}
	if bedroomsStr := c.Query("bedrooms"); bedroomsStr != "" {
		if bedrooms, err := strconv.Atoi(bedroomsStr); err == nil {
			query = query.Where("bedrooms >= ?", bedrooms)
		}
	}
	if bedsStr := c.Query("beds"); bedsStr != "" {
		if beds, err := strconv.Atoi(bedsStr); err == nil {
			query = query.Where("beds >= ?", beds)
		}
	}
	if bathroomsStr := c.Query("bathrooms"); bathroomsStr != "" {
		if bathrooms, err := strconv.Atoi(bathroomsStr); err == nil {
			query = query.Where("bathrooms >= ?", bathrooms)
		}
	}
	if favStr := c.Query("is_guest_favourite"); favStr != "" {
		query = query.Where("is_guest_favourite = ?", parseFormBool(favStr))
	}
	if luxeStr := c.Query("is_luxe"); luxeStr != "" {
		query = query.Where("is_luxe = ?", parseFormBool(luxeStr))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var rooms []models.Room
	if err := query.Offset(skip).Limit(limit).Find(&rooms).Error; err != nil {
		response.ServerError(c)
		return
	}

	requiredAmenities := splitCSV(c.Query("amenities"))
	requiredOptions := splitCSV(c.Query("booking_options"))

	if len(requiredAmenities) > 0 || len(requiredOptions) > 0 {
		filtered := make([]models.Room, 0, len(rooms))
		for _, room := range rooms {
			if !room.HasAmenities(requiredAmenities) {
				continue
			}
			if !room.HasBookingOptions(requiredOptions) {
				continue
			}
			filtered = append(filtered, room)
		}
		rooms = filtered
	}

	response.SuccessWithTotal(c, rooms, int(total))
}

// GetRoomDetail returns one room; soft-deleted rooms read as absent
func GetRoomDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid room id")
		return
	}

	var room models.Room
	if err := config.DB.Where("id = ? AND is_deleted = ?", id, false).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, room)
}

func roomFromForm(c *gin.Context) (models.Room, error) {
	room := models.Room{
		Title:        c.PostForm("title"),
		Description:  c.PostForm("description"),
		Location:     c.PostForm("location"),
		PropertyType: c.DefaultPostForm("property_type", "room"),
		Bedrooms:     1,
		Beds:         1,
		Bathrooms:    1,
		MaxGuests:    2,
		IsAvailable:  true,
	}

	if priceStr := c.PostForm("price"); priceStr != "" {
		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil {
			return room, errors.New("invalid price")
		}
		room.Price = price
	}
	if originalStr := c.PostForm("original_price"); originalStr != "" {
		original, err := strconv.ParseFloat(originalStr, 64)
		if err != nil {
			return room, errors.New("invalid original_price")
		}
		room.OriginalPrice = &original
	}
	if latStr := c.PostForm("latitude"); latStr != "" {
		lat, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			return room, errors.New("invalid latitude")
		}
		room.Latitude = &lat
	}
	if lonStr := c.PostForm("longitude"); lonStr != "" {
		lon, err := strconv.ParseFloat(lonStr, 64)
		if err != nil {
			return room, errors.New("invalid longitude")
		}
		room.Longitude = &lon
	}

	for field, target := range map[string]*int{
		"bedrooms":   &room.Bedrooms,
		"beds":       &room.Beds,
		"bathrooms":  &room.Bathrooms,
		"max_guests": &room.MaxGuests,
	} {
		if str := c.PostForm(field); str != "" {
			value, err := strconv.Atoi(str)
			if err != nil {
				return room, errors.New("invalid " + field)
			}
			*target = value
		}
	}

	amenities, err := parseJSONList(c.DefaultPostForm("amenities", "[]"))
	if err != nil {
		return room, errors.New("invalid JSON in amenities")
	}
	room.Amenities = amenities

	options, err := parseJSONList(c.DefaultPostForm("booking_options", "[]"))
	if err != nil {
		return room, errors.New("invalid JSON in booking_options")
	}
	room.BookingOptions = options

	room.IsGuestFavourite = parseFormBool(c.DefaultPostForm("is_guest_favourite", "false"))
	room.IsLuxe = parseFormBool(c.DefaultPostForm("is_luxe", "false"))

	return room, nil
}

// parseJSONList validates a JSON string-array payload and returns it raw
func parseJSONList(value string) (json.RawMessage, error) {
	var list []string
	if err := json.Unmarshal([]byte(value), &list); err != nil {
		return nil, err
	}
	return json.RawMessage(value), nil
}

// CreateRoom creates a listing from multipart form input. Admin only; the
// creator becomes the room's host.
func CreateRoom(c *gin.Context) {
	user, err := getCurrentUser(c)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	room, err := roomFromForm(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := validator.ValidateRoom(&room); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if file, err := c.FormFile("file"); err == nil && file != nil {
		imageURL, err := services.SaveImage(file)
		if err != nil {
			services.Log.Error("Failed to store room image: %v", err)
			response.ServerError(c)
			return
		}
		room.ImageURL = imageURL
	}

	room.HostID = &user.ID

	if err := config.DB.Create(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, room)
}

// UpdateRoom partially updates a listing from multipart form input
func UpdateRoom(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid room id")
		return
	}

	var room models.Room
	if err := config.DB.Where("id = ? AND is_deleted = ?", id, false).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	if file, err := c.FormFile("file"); err == nil && file != nil {
		imageURL, err := services.SaveImage(file)
		if err != nil {
			response.ServerError(c)
			return
		}
		room.ImageURL = imageURL
	}

	if title, ok := c.GetPostForm("title"); ok {
		room.Title = title
	}
	if description, ok := c.GetPostForm("description"); ok {
		room.Description = description
	}
	if priceStr, ok := c.GetPostForm("price"); ok {
		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil {
			response.BadRequest(c, "Invalid price")
			return
		}
		room.Price = price
	}
	if originalStr, ok := c.GetPostForm("original_price"); ok {
		original, err := strconv.ParseFloat(originalStr, 64)
		if err != nil {
			response.BadRequest(c, "Invalid original_price")
			return
		}
		room.OriginalPrice = &original
	}
	if location, ok := c.GetPostForm("location"); ok {
		room.Location = location
	}
	if propertyType, ok := c.GetPostForm("property_type"); ok {
		room.PropertyType = propertyType
	}
	for field, target := range map[string]*int{
		"bedrooms":   &room.Bedrooms,
		"beds":       &room.Beds,
		"bathrooms":  &room.Bathrooms,
		"max_guests": &room.MaxGuests,
	} {
		if str, ok := c.GetPostForm(field); ok {
			value, err := strconv.Atoi(str)
			if err != nil {
				response.BadRequest(c, "Invalid "+field)
				return
			}
			*target = value
		}
	}
	if amenitiesStr, ok := c.GetPostForm("amenities"); ok {
		amenities, err := parseJSONList(amenitiesStr)
		if err != nil {
			response.BadRequest(c, "Invalid JSON in amenities")
			return
		}
		room.Amenities = amenities
	}
	if optionsStr, ok := c.GetPostForm("booking_options"); ok {
		options, err := parseJSONList(optionsStr)
		if err != nil {
			response.BadRequest(c, "Invalid JSON in booking_options")
			return
		}
		room.BookingOptions = options
	}
	if favStr, ok := c.GetPostForm("is_guest_favourite"); ok {
		room.IsGuestFavourite = parseFormBool(favStr)
	}
	if luxeStr, ok := c.GetPostForm("is_luxe"); ok {
		room.IsLuxe = parseFormBool(luxeStr)
	}
	if availableStr, ok := c.GetPostForm("is_available"); ok {
		room.IsAvailable = parseFormBool(availableStr)
	}

	if err := config.DB.Save(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, room)
}

// DeleteRoom soft-deletes a listing; the row and its history remain
func DeleteRoom(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid room id")
		return
	}

	var room models.Room
	if err := config.DB.Where("id = ? AND is_deleted = ?", id, false).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	room.IsDeleted = true
	if err := config.DB.Save(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"message": "Room deleted successfully"})
}

// GetAllRoomsAdmin lists every room including soft-deleted ones
func GetAllRoomsAdmin(c *gin.Context) {
	skip, limit := parseSkipLimit(c)

	var total int64
	if err := config.DB.Model(&models.Room{}).Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var rooms []models.Room
	if err := config.DB.Offset(skip).Limit(limit).Find(&rooms).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithTotal(c, rooms, int(total))
}

// SearchRooms runs a fuzzy free-text search over the catalogue, merging the
// caller's previous filters from the cache.
func SearchRooms(c *gin.Context) {
	user, err := getCurrentUser(c)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	filters := &dto.SearchFilters{
		Query:        c.Query("q"),
		PropertyType: c.Query("property_type"),
		Location:     c.Query("location"),
	}
	if minPriceStr := c.Query("min_price"); minPriceStr != "" {
		if minPrice, err := strconv.ParseFloat(minPriceStr, 64); err == nil {
			filters.MinPrice = &minPrice
		}
	}
	if maxPriceStr := c.Query("max_price"); maxPriceStr != "" {
		if maxPrice, err := strconv.ParseFloat(maxPriceStr, 64); err == nil {
			filters.MaxPrice = &maxPrice
		}
	}

	if config.RedisClient != nil {
		cacheKey := user.Email
		if previous, err := services.GetLastFilters(config.Ctx, config.RedisClient, cacheKey); err == nil && previous != nil {
			filters = services.MergeFilters(previous, filters)
		}
		if err := services.SaveLastFilters(config.Ctx, config.RedisClient, cacheKey, filters); err != nil {
			services.Log.Error("Failed to save search filters: %v", err)
		}
	}

	if filters.Query == "" {
		response.BadRequest(c, "Search query is required")
		return
	}

	query := config.DB.Model(&models.Room{}).Where("is_deleted = ?", false)
	if filters.PropertyType != "" {
		query = query.Where("property_type = ?", filters.PropertyType)
	}
	if filters.MinPrice != nil {
		query = query.Where("price >= ?", *filters.MinPrice)
	}
	if filters.MaxPrice != nil {
		query = query.Where("price <= ?", *filters.MaxPrice)
	}

	var rooms []models.Room
	if err := query.Find(&rooms).Error; err != nil {
		response.ServerError(c)
		return
	}

	scored := services.SearchRooms(filters.Query, rooms)

	response.SuccessWithTotal(c, scored, len(scored))
}
