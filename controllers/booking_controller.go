package controllers

import (
	"errors"
	"fmt"
	"time"

	"stayhub/config"
	"stayhub/dto"
	"stayhub/models"
	"stayhub/response"
	"stayhub/services"
	"stayhub/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func bookingCacheKey(userID uint) string {
	return fmt.Sprintf("bookings:user:%d", userID)
}

func invalidateBookingCache(userID uint) {
	if config.RedisClient == nil {
		return
	}
	if err := services.DeleteFromRedis(config.Ctx, config.RedisClient, bookingCacheKey(userID)); err != nil {
		services.Log.Error("Failed to invalidate booking cache for user %d: %v", userID, err)
	}
}

// CreateBooking reserves a room for the caller. The price is the room's
// current nightly rate times the night count; per-date overrides do not
// participate in pricing.
func CreateBooking(c *gin.Context) {
	user, err := getCurrentUser(c)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	var request dto.BookingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	startDate, err := validator.ParseDate(request.StartDate)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	endDate, err := validator.ParseDate(request.EndDate)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var room models.Room
	if err := config.DB.Where("id = ? AND is_deleted = ?", request.RoomID, false).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFoundMessage(c, "Room not found")
			return
		}
		response.ServerError(c)
		return
	}

	if !room.IsAvailable {
		response.BadRequest(c, "Room is not available")
		return
	}

	nights := services.Nights(startDate, endDate)
	if nights <= 0 {
		response.BadRequest(c, "Check-out date must be after check-in date")
		return
	}

	guests := request.Guests
	if guests <= 0 {
		guests = 1
	}

	paymentStatus, bookingStatus := services.PaymentOutcome(request.PaymentMethod)

	booking := models.Booking{
		UserID:             user.ID,
		RoomID:             room.ID,
		StartDate:          startDate,
		EndDate:            endDate,
		Guests:             guests,
		TotalPrice:         services.TotalPrice(nights, room.Price),
		Status:             bookingStatus,
		PaymentMethod:      request.PaymentMethod,
		PaymentStatus:      paymentStatus,
		CancellationPolicy: models.PolicyFlexible,
	}

	if err := config.DB.Create(&booking).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateBookingCache(user.ID)

	response.Success(c, booking)
}

// GetBookings lists the caller's bookings, served from cache when possible
func GetBookings(c *gin.Context) {
	user, err := getCurrentUser(c)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	var bookings []models.Booking

	cacheKey := bookingCacheKey(user.ID)
	if config.RedisClient != nil {
		if err := services.GetFromRedis(config.Ctx, config.RedisClient, cacheKey, &bookings); err == nil && len(bookings) > 0 {
			response.SuccessWithTotal(c, bookings, len(bookings))
			return
		}
	}

	if err := config.DB.Preload("Room").Where("user_id = ?", user.ID).Find(&bookings).Error; err != nil {
		response.ServerError(c)
		return
	}

	if config.RedisClient != nil {
		if err := services.SetToRedis(config.Ctx, config.RedisClient, cacheKey, bookings, 10*time.Minute); err != nil {
			services.Log.Error("Failed to cache bookings for user %d: %v", user.ID, err)
		}
	}

	response.SuccessWithTotal(c, bookings, len(bookings))
}
