package get_class_bookings

import (
	"context"

	"github.com/m04kA/FitStudio-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetClassBookings(ctx context.Context, classID int64) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
