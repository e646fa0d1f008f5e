package controllers

import (
	"errors"
	"fmt"
	"strconv"

	"stayhub/config"
	"stayhub/dto"
	"stayhub/models"
	"stayhub/response"
	"stayhub/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// loadHostedRoom fetches a room scoped to its host. A room hosted by someone
// else reads as absent, same as ownership checks on bookings.
func loadHostedRoom(roomID uint, hostID uint) (models.Room, error) {
	var room models.Room
	err := config.DB.Where("id = ? AND host_id = ?", roomID, hostID).First(&room).Error
	return room, err
}

// SetAvailability upserts the calendar entry for one (room, date)
func SetAvailability(c *gin.Context) {
	user, err := getCurrentUser(c)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	var request dto.AvailabilityRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	date, err := validator.ParseDate(request.Date)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if _, err := loadHostedRoom(request.RoomID, user.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFoundMessage(c, "Room not found or you're not the host")
			return
		}
		response.ServerError(c)
		return
	}

	isAvailable := true
	if request.IsAvailable != nil {
		isAvailable = *request.IsAvailable
	}

	var availability models.RoomAvailability
	err = config.DB.Where("room_id = ? AND date = ?", request.RoomID, date).First(&availability).Error
	if err == nil {
		availability.IsAvailable = isAvailable
		availability.PriceOverride = request.PriceOverride
		availability.Notes = request.Notes
		if err := config.DB.Save(&availability).Error; err != nil {
			response.ServerError(c)
			return
		}
		response.Success(c, availability)
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		response.ServerError(c)
		return
	}

	availability = models.RoomAvailability{
		RoomID:        request.RoomID,
		Date:          date,
		IsAvailable:   isAvailable,
		PriceOverride: request.PriceOverride,
		Notes:         request.Notes,
	}

	if err := config.DB.Create(&availability).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, availability)
}

// GetRoomAvailability returns a room's calendar entries within a date range
func GetRoomAvailability(c *gin.Context) {
	roomID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid room id")
		return
	}

	startDate, err := validator.ParseDate(c.Query("start_date"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	endDate, err := validator.ParseDate(c.Query("end_date"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var availability []models.RoomAvailability
	err = config.DB.Where("room_id = ? AND date >= ? AND date <= ?", roomID, startDate, endDate).
		Order("date").Find(&availability).Error
	if err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithTotal(c, availability, len(availability))
}

// UpdateDateAvailability partially updates an existing calendar entry
func UpdateDateAvailability(c *gin.Context) {
	user, err := getCurrentUser(c)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	roomID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid room id")
		return
	}

	date, err := validator.ParseDate(c.Param("date"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var request dto.AvailabilityUpdateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if _, err := loadHostedRoom(uint(roomID), user.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFoundMessage(c, "Room not found or you're not the host")
			return
		}
		response.ServerError(c)
		return
	}

	var availability models.RoomAvailability
	if err := config.DB.Where("room_id = ? AND date = ?", roomID, date).First(&availability).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFoundMessage(c, "Availability record not found")
			return
		}
		response.ServerError(c)
		return
	}

	if request.IsAvailable != nil {
		availability.IsAvailable = *request.IsAvailable
	}
	if request.PriceOverride != nil {
		availability.PriceOverride = request.PriceOverride
	}
	if request.Notes != nil {
		availability.Notes = *request.Notes
	}

	if err := config.DB.Save(&availability).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, availability)
}

// BlockDates marks every date in an inclusive range unavailable, upserting
// per date. The returned count covers newly created rows only.
func BlockDates(c *gin.Context) {
	user, err := getCurrentUser(c)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	roomID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid room id")
		return
	}

	var request dto.BlockDatesRequest
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

	if endDate.Before(startDate) {
		response.BadRequest(c, "end_date must not be before start_date")
		return
	}

	if _, err := loadHostedRoom(uint(roomID), user.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFoundMessage(c, "Room not found or you're not the host")
			return
		}
		response.ServerError(c)
		return
	}

	created := 0
	for date := startDate; !date.After(endDate); date = date.AddDate(0, 0, 1) {
		var existing models.RoomAvailability
		err := config.DB.Where("room_id = ? AND date = ?", roomID, date).First(&existing).Error
		if err == nil {
			existing.IsAvailable = false
			existing.Notes = request.Notes
			if err := config.DB.Save(&existing).Error; err != nil {
				response.ServerError(c)
				return
			}
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			response.ServerError(c)
			return
		}

		entry := models.RoomAvailability{
			RoomID:      uint(roomID),
			Date:        date,
			IsAvailable: false,
			Notes:       request.Notes,
		}
		if err := config.DB.Create(&entry).Error; err != nil {
			response.ServerError(c)
			return
		}
		created++
	}

	blocked := int(endDate.Sub(startDate).Hours()/24) + 1

	response.Success(c, dto.BlockDatesResponse{
		Message: fmt.Sprintf("Blocked %d dates", blocked),
		Created: created,
	})
}
