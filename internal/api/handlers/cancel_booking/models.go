package cancel_booking

import (
	"time"

	cancelBooking "github.com/m04kA/FitStudio-BookingService/internal/usecase/cancel_booking"
)

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	BookingID int64  `json:"bookingId"`
	ClassID   int64  `json:"classId"`
	UserID    int64  `json:"userId"`
	BookedAt  string `json:"bookedAt"`
	ClassName string `json:"className"`
	StartTime string `json:"startTime"`
	SpotsLeft int    `json:"spotsLeft"`
	Capacity  int    `json:"capacity"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelBooking.Response) *CancelBookingResponse {
	return &CancelBookingResponse{
		BookingID: resp.BookingID,
		ClassID:   resp.ClassID,
		UserID:    resp.UserID,
		BookedAt:  resp.BookedAt.Format(time.RFC3339),
		ClassName: resp.ClassName,
		StartTime: resp.StartTime.Format(time.RFC3339),
		SpotsLeft: resp.SpotsLeft,
		Capacity:  resp.Capacity,
	}
}
