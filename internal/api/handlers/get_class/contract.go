package get_class

import (
	"context"

	"github.com/m04kA/FitStudio-BookingService/internal/service/classes/models"
)

type ClassService interface {
	GetByID(ctx context.Context, id int64) (*models.ClassResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
