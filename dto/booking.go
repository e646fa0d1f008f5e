package dto

type BookingRequest struct {
	RoomID        uint   `json:"roomId" binding:"required"`
	StartDate     string `json:"startDate" binding:"required"`
	EndDate       string `json:"endDate" binding:"required"`
	Guests        int    `json:"guests"`
	PaymentMethod string `json:"paymentMethod"`
}

type ModificationRequest struct {
	NewStartDate       *string `json:"newStartDate,omitempty"`
	NewEndDate         *string `json:"newEndDate,omitempty"`
	NewGuests          *int    `json:"newGuests,omitempty"`
	ModificationReason string  `json:"modificationReason,omitempty"`
}

type CancellationRequest struct {
	CancellationReason string `json:"cancellationReason,omitempty"`
}

type CancellationResponse struct {
	BookingID          uint    `json:"bookingId"`
	Status             string  `json:"status"`
	RefundAmount       float64 `json:"refundAmount"`
	CancellationPolicy string  `json:"cancellationPolicy"`
	Message            string  `json:"message"`
}
