package controllers

import (
	"errors"
	"fmt"
	"strconv"
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

// loadOwnedBooking fetches a booking scoped to its owner. A booking that
// exists but belongs to someone else reads as absent.
func loadOwnedBooking(bookingID int, userID uint) (models.Booking, error) {
	var booking models.Booking
	err := config.DB.Where("id = ? AND user_id = ?", bookingID, userID).First(&booking).Error
	return booking, err
}

// ModifyBooking changes a booking's dates or guest count, repricing against
// the room's current nightly rate and recording one audit row.
func ModifyBooking(c *gin.Context) {
	user, err := getCurrentUser(c)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	bookingID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid booking id")
		return
	}

	var request dto.ModificationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	booking, err := loadOwnedBooking(bookingID, user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFoundMessage(c, "Booking not found")
			return
		}
		response.ServerError(c)
		return
	}

	if booking.Status == models.BookingStatusCancelled {
		response.BadRequest(c, "Cannot modify cancelled booking")
		return
	}

	newStart := booking.StartDate
	newEnd := booking.EndDate
	newGuests := booking.Guests

	if request.NewStartDate != nil {
		newStart, err = validator.ParseDate(*request.NewStartDate)
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}
	}
	if request.NewEndDate != nil {
		newEnd, err = validator.ParseDate(*request.NewEndDate)
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}
	}
	if request.NewGuests != nil {
		newGuests = *request.NewGuests
	}

	nights := services.Nights(newStart, newEnd)
	if nights <= 0 {
		response.BadRequest(c, "Check-out date must be after check-in date")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, booking.RoomID).Error; err != nil {
		response.ServerError(c)
		return
	}

	newPrice := services.TotalPrice(nights, room.Price)

	modification := models.BookingModification{
		BookingID:          booking.ID,
		OldStartDate:       booking.StartDate,
		OldEndDate:         booking.EndDate,
		NewStartDate:       newStart,
		NewEndDate:         newEnd,
		OldGuests:          booking.Guests,
		NewGuests:          newGuests,
		OldPrice:           booking.TotalPrice,
		NewPrice:           newPrice,
		PriceDifference:    newPrice - booking.TotalPrice,
		ModificationReason: request.ModificationReason,
		ModifiedByUserID:   user.ID,
	}

	booking.StartDate = newStart
	booking.EndDate = newEnd
	booking.Guests = newGuests
	booking.TotalPrice = newPrice
	booking.Status = models.BookingStatusModified
	booking.UpdatedAt = time.Now()

	// Audit row and booking update land together or not at all
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&modification).Error; err != nil {
			return err
		}
		return tx.Save(&booking).Error
	})
	if err != nil {
		response.ServerError(c)
		return
	}

	invalidateBookingCache(user.ID)

	response.Success(c, modification)
}

// CancelBooking cancels a booking and computes the policy-based refund.
// The refund amount is recorded, not transferred.
func CancelBooking(c *gin.Context) {
	user, err := getCurrentUser(c)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	bookingID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid booking id")
		return
	}

	var request dto.CancellationRequest
	if err := c.ShouldBindJSON(&request); err != nil && err.Error() != "EOF" {
		response.BadRequest(c, err.Error())
		return
	}

	booking, err := loadOwnedBooking(bookingID, user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFoundMessage(c, "Booking not found")
			return
		}
		response.ServerError(c)
		return
	}

	if booking.Status == models.BookingStatusCancelled {
		response.Conflict(c, "Booking already cancelled")
		return
	}

	now := time.Now()
	refund := services.CalculateRefund(
		booking.CancellationPolicy,
		booking.TotalPrice,
		services.DaysUntilCheckIn(booking.StartDate, now),
	)

	booking.Status = models.BookingStatusCancelled
	booking.CancelledAt = &now
	booking.CancellationReason = request.CancellationReason
	booking.RefundAmount = &refund

	if err := config.DB.Save(&booking).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateBookingCache(user.ID)

	response.Success(c, dto.CancellationResponse{
		BookingID:          booking.ID,
		Status:             booking.Status,
		RefundAmount:       refund,
		CancellationPolicy: booking.CancellationPolicy,
		Message:            fmt.Sprintf("Booking cancelled. Refund amount: %.2f", refund),
	})
}

// GetBookingHistory lists the modification audit trail for an owned booking
func GetBookingHistory(c *gin.Context) {
	user, err := getCurrentUser(c)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	bookingID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid booking id")
		return
	}

	if _, err := loadOwnedBooking(bookingID, user.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFoundMessage(c, "Booking not found")
			return
		}
		response.ServerError(c)
		return
	}

	var modifications []models.BookingModification
	if err := config.DB.Where("booking_id = ?", bookingID).Find(&modifications).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithTotal(c, modifications, len(modifications))
}
