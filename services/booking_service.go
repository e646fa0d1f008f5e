package services

import (
	"math"
	"time"

	"stayhub/models"
)

// Nights is the whole-day difference between check-out and check-in
func Nights(startDate, endDate time.Time) int {
	return int(endDate.Sub(startDate).Hours() / 24)
}

// TotalPrice computes the booking price from the room's current nightly rate.
// Per-date price overrides are not consulted here.
func TotalPrice(nights int, nightlyPrice float64) float64 {
	return float64(nights) * nightlyPrice
}

// PaymentOutcome maps a payment method to the initial payment and booking status.
// QR payments stay pending until confirmed; pay-on-site confirms the booking
// with payment still owed. Unknown methods default to pending.
func PaymentOutcome(paymentMethod string) (paymentStatus, bookingStatus string) {
	switch paymentMethod {
	case models.PaymentMethodQRCode:
		return models.PaymentStatusPending, models.BookingStatusPending
	case models.PaymentMethodPayOnSite:
		return models.PaymentStatusPending, models.BookingStatusConfirmed
	default:
		return models.PaymentStatusPending, models.BookingStatusPending
	}
}

// DaysUntilCheckIn is the whole number of days from now until check-in,
// rounded toward negative infinity.
func DaysUntilCheckIn(startDate, now time.Time) int {
	return int(math.Floor(startDate.Sub(now).Hours() / 24))
}

// CalculateRefund computes the refund for cancelling a booking under its
// policy tier. Unknown policies refund nothing.
//
//	flexible: full refund >= 1 day out, otherwise 50%
//	moderate: full >= 5 days, 50% >= 1 day, otherwise 0
//	strict:   full >= 14 days, 50% >= 7 days, otherwise 0
func CalculateRefund(policy string, totalPrice float64, daysUntilCheckIn int) float64 {
	switch policy {
	case models.PolicyFlexible:
		if daysUntilCheckIn >= 1 {
			return totalPrice
		}
		return totalPrice * 0.5

	case models.PolicyModerate:
		if daysUntilCheckIn >= 5 {
			return totalPrice
		}
		if daysUntilCheckIn >= 1 {
			return totalPrice * 0.5
		}
		return 0

	case models.PolicyStrict:
		if daysUntilCheckIn >= 14 {
			return totalPrice
		}
		if daysUntilCheckIn >= 7 {
			return totalPrice * 0.5
		}
		return 0
	}

	return 0
}
