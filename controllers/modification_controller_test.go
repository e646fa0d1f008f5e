package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"stayhub/config"
	"stayhub/dto"
	"stayhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModifyBooking(t *testing.T) {
	router := setupTest(t)
	user, token := createTestUser(t, "guest@example.com", models.RoleUser)
	room := createTestRoom(t, models.Room{Price: 100})

	// 2 nights at 100
	booking := seedBooking(t, user.ID, room.ID, models.BookingStatusConfirmed, 200, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC))

	recorder := doRequest(t, router, http.MethodPut, bookingPath(booking.ID, "modify"), token, map[string]interface{}{
		"newEndDate":         "2026-10-06",
		"newGuests":          3,
		"modificationReason": "longer stay",
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var modification models.BookingModification
	decodeData(t, recorder, &modification)
	assert.Equal(t, 200.0, modification.OldPrice)
	assert.Equal(t, 500.0, modification.NewPrice)
	assert.Equal(t, 300.0, modification.PriceDifference)
	assert.Equal(t, 1, modification.OldGuests)
	assert.Equal(t, 3, modification.NewGuests)
	assert.Equal(t, user.ID, modification.ModifiedByUserID)

	var updated models.Booking
	require.NoError(t, config.DB.First(&updated, booking.ID).Error)
	assert.Equal(t, models.BookingStatusModified, updated.Status)
	assert.Equal(t, 500.0, updated.TotalPrice)
	assert.Equal(t, 3, updated.Guests)

	var count int64
	config.DB.Model(&models.BookingModification{}).Where("booking_id = ?", booking.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestModifyBookingDefaultsToCurrentValues(t *testing.T) {
	router := setupTest(t)
	user, token := createTestUser(t, "guest@example.com", models.RoleUser)
	room := createTestRoom(t, models.Room{Price: 100})
	booking := seedBooking(t, user.ID, room.ID, models.BookingStatusConfirmed, 200, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC))

	recorder := doRequest(t, router, http.MethodPut, bookingPath(booking.ID, "modify"), token, map[string]interface{}{
		"newGuests": 4,
	})
	require.Equal(t, http.StatusOK, recorder.Code)

	var modification models.BookingModification
	decodeData(t, recorder, &modification)
	assert.Equal(t, 0.0, modification.PriceDifference)
	assert.Equal(t, 4, modification.NewGuests)
	assert.True(t, modification.NewStartDate.Equal(modification.OldStartDate))
	assert.True(t, modification.NewEndDate.Equal(modification.OldEndDate))
}

func TestModifyCancelledBookingRejected(t *testing.T) {
	router := setupTest(t)
	user, token := createTestUser(t, "guest@example.com", models.RoleUser)
	room := createTestRoom(t, models.Room{})
	booking := seedBooking(t, user.ID, room.ID, models.BookingStatusCancelled, 200, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC))

	recorder := doRequest(t, router, http.MethodPut, bookingPath(booking.ID, "modify"), token, map[string]interface{}{
		"newGuests": 2,
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestModifyForeignBookingReadsAsMissing(t *testing.T) {
	router := setupTest(t)
	alice, _ := createTestUser(t, "alice@example.com", models.RoleUser)
	_, bobToken := createTestUser(t, "bob@example.com", models.RoleUser)
	room := createTestRoom(t, models.Room{})
	booking := seedBooking(t, alice.ID, room.ID, models.BookingStatusConfirmed, 200, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC))

	recorder := doRequest(t, router, http.MethodPut, bookingPath(booking.ID, "modify"), bobToken, map[string]interface{}{
		"newGuests": 2,
	})
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestCancelBookingFullRefund(t *testing.T) {
	router := setupTest(t)
	user, token := createTestUser(t, "guest@example.com", models.RoleUser)
	room := createTestRoom(t, models.Room{})

	// Flexible policy, check-in well in the future
	booking := seedBooking(t, user.ID, room.ID, models.BookingStatusConfirmed, 400, time.Now().AddDate(0, 0, 10))

	recorder := doRequest(t, router, http.MethodPost, bookingPath(booking.ID, "cancel"), token, map[string]interface{}{
		"cancellationReason": "change of plans",
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var result dto.CancellationResponse
	decodeData(t, recorder, &result)
	assert.Equal(t, models.BookingStatusCancelled, result.Status)
	assert.Equal(t, 400.0, result.RefundAmount)
	assert.Equal(t, models.PolicyFlexible, result.CancellationPolicy)

	var updated models.Booking
	require.NoError(t, config.DB.First(&updated, booking.ID).Error)
	assert.Equal(t, models.BookingStatusCancelled, updated.Status)
	require.NotNil(t, updated.RefundAmount)
	assert.Equal(t, 400.0, *updated.RefundAmount)
	assert.NotNil(t, updated.CancelledAt)
	assert.Equal(t, "change of plans", updated.CancellationReason)
}

func TestCancelBookingHalfRefundSameDay(t *testing.T) {
	router := setupTest(t)
	user, token := createTestUser(t, "guest@example.com", models.RoleUser)
	room := createTestRoom(t, models.Room{})

	booking := seedBooking(t, user.ID, room.ID, models.BookingStatusConfirmed, 400, time.Now().Add(6*time.Hour))

	recorder := doRequest(t, router, http.MethodPost, bookingPath(booking.ID, "cancel"), token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var result dto.CancellationResponse
	decodeData(t, recorder, &result)
	assert.Equal(t, 200.0, result.RefundAmount)
}

func TestCancelStrictPolicyNoRefund(t *testing.T) {
	router := setupTest(t)
	user, token := createTestUser(t, "guest@example.com", models.RoleUser)
	room := createTestRoom(t, models.Room{})

	booking := models.Booking{
		UserID:             user.ID,
		RoomID:             room.ID,
		StartDate:          time.Now().AddDate(0, 0, 3),
		EndDate:            time.Now().AddDate(0, 0, 5),
		Guests:             1,
		TotalPrice:         400,
		Status:             models.BookingStatusConfirmed,
		PaymentStatus:      models.PaymentStatusPending,
		CancellationPolicy: models.PolicyStrict,
	}
	require.NoError(t, config.DB.Create(&booking).Error)

	recorder := doRequest(t, router, http.MethodPost, bookingPath(booking.ID, "cancel"), token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var result dto.CancellationResponse
	decodeData(t, recorder, &result)
	assert.Equal(t, 0.0, result.RefundAmount)
}

func TestCancelTwiceConflicts(t *testing.T) {
	router := setupTest(t)
	user, token := createTestUser(t, "guest@example.com", models.RoleUser)
	room := createTestRoom(t, models.Room{})
	booking := seedBooking(t, user.ID, room.ID, models.BookingStatusConfirmed, 400, time.Now().AddDate(0, 0, 10))

	recorder := doRequest(t, router, http.MethodPost, bookingPath(booking.ID, "cancel"), token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = doRequest(t, router, http.MethodPost, bookingPath(booking.ID, "cancel"), token, nil)
	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestGetBookingHistory(t *testing.T) {
	router := setupTest(t)
	user, token := createTestUser(t, "guest@example.com", models.RoleUser)
	room := createTestRoom(t, models.Room{Price: 100})
	booking := seedBooking(t, user.ID, room.ID, models.BookingStatusConfirmed, 200, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC))

	for _, guests := range []int{2, 3} {
		recorder := doRequest(t, router, http.MethodPut, bookingPath(booking.ID, "modify"), token, map[string]interface{}{
			"newGuests": guests,
		})
		require.Equal(t, http.StatusOK, recorder.Code)
	}

	recorder := doRequest(t, router, http.MethodGet, bookingPath(booking.ID, "history"), token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var history []models.BookingModification
	decodeData(t, recorder, &history)
	assert.Len(t, history, 2)
}
