package controllers

import (
	"errors"
	"strconv"

	"stayhub/config"
	"stayhub/dto"
	"stayhub/models"
	"stayhub/response"
	"stayhub/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateReview submits a review for a completed booking owned by the caller.
// One review per booking; reviews from completed bookings are auto-verified
// and approved until moderated.
func CreateReview(c *gin.Context) {
	user, err := getCurrentUser(c)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	var request dto.ReviewRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := validator.ValidateRating(request.Rating); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	var booking models.Booking
	err = config.DB.Where("id = ? AND user_id = ? AND status = ?",
		request.BookingID, user.ID, models.BookingStatusCompleted).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFoundMessage(c, "Booking not found or not eligible for review")
			return
		}
		response.ServerError(c)
		return
	}

	var existing models.Review
	err = config.DB.Where("booking_id = ?", request.BookingID).First(&existing).Error
	if err == nil {
		response.Conflict(c, "Review already submitted for this booking")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		response.ServerError(c)
		return
	}

	review := models.Review{
		BookingID:  request.BookingID,
		UserID:     user.ID,
		RoomID:     request.RoomID,
		Rating:     request.Rating,
		Comment:    request.Comment,
		IsVerified: true,
		IsApproved: true,
	}

	if err := config.DB.Create(&review).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, review)
}

// GetRoomReviews lists approved reviews for a room, with reviewer identity
func GetRoomReviews(c *gin.Context) {
	roomID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid room id")
		return
	}

	skip := 0
	limit := 20
	if parsed, err := strconv.Atoi(c.Query("skip")); err == nil && parsed >= 0 {
		skip = parsed
	}
	if parsed, err := strconv.Atoi(c.Query("limit")); err == nil && parsed > 0 {
		limit = parsed
	}

	var reviews []models.Review
	err = config.DB.Where("room_id = ? AND is_approved = ?", roomID, true).
		Offset(skip).Limit(limit).Find(&reviews).Error
	if err != nil {
		response.ServerError(c)
		return
	}

	result := make([]dto.ReviewWithUser, 0, len(reviews))
	for _, review := range reviews {
		enriched := dto.ReviewWithUser{
			ID:         review.ID,
			BookingID:  review.BookingID,
			RoomID:     review.RoomID,
			Rating:     review.Rating,
			Comment:    review.Comment,
			IsVerified: review.IsVerified,
			CreatedAt:  review.CreatedAt,
			UserName:   "Anonymous",
		}

		var reviewer models.User
		if err := config.DB.First(&reviewer, review.UserID).Error; err == nil {
			enriched.UserName = reviewer.FullName
			enriched.UserEmail = reviewer.Email
		}

		result = append(result, enriched)
	}

	response.SuccessWithTotal(c, result, len(result))
}

// GetMyReviews lists every review the caller has submitted
func GetMyReviews(c *gin.Context) {
	user, err := getCurrentUser(c)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	var reviews []models.Review
	if err := config.DB.Where("user_id = ?", user.ID).Find(&reviews).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithTotal(c, reviews, len(reviews))
}

// ModerateReview flips a review's approved/flagged flags. Admin only.
func ModerateReview(c *gin.Context) {
	reviewID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid review id")
		return
	}

	var request dto.ModerateReviewRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var review models.Review
	if err := config.DB.First(&review, reviewID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFoundMessage(c, "Review not found")
			return
		}
		response.ServerError(c)
		return
	}

	review.IsApproved = *request.IsApproved
	review.IsFlagged = request.IsFlagged

	if err := config.DB.Save(&review).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"message": "Review moderated successfully"})
}
