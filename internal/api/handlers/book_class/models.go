package book_class

import (
	"time"

	bookClass "github.com/m04kA/FitStudio-BookingService/internal/usecase/book_class"
)

// BookClassRequest HTTP request model
type BookClassRequest struct {
	ClassID int64 `json:"classId"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	BookingID  int64  `json:"bookingId"`
	ClassID    int64  `json:"classId"`
	UserID     int64  `json:"userId"`
	Status     string `json:"status"`
	Position   int    `json:"position"`
	BookedAt   string `json:"bookedAt"`
	ClassName  string `json:"className"`
	StartTime  string `json:"startTime"`
	SpotsLeft  int    `json:"spotsLeft"`
	Capacity   int    `json:"capacity"`
	Instructor string `json:"instructor"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BookClassRequest) ToUseCaseRequest(userID int64) *bookClass.Request {
	return &bookClass.Request{
		UserID:  userID,
		ClassID: r.ClassID,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookClass.Response) *BookingResponse {
	return &BookingResponse{
		BookingID:  resp.BookingID,
		ClassID:    resp.ClassID,
		UserID:     resp.UserID,
		Status:     resp.Status,
		Position:   resp.Position,
		BookedAt:   resp.BookedAt.Format(time.RFC3339),
		ClassName:  resp.ClassName,
		StartTime:  resp.StartTime.Format(time.RFC3339),
		SpotsLeft:  resp.SpotsLeft,
		Capacity:   resp.Capacity,
		Instructor: resp.Instructor,
	}
}
