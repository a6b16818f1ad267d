package list_classes

import (
	"context"

	"github.com/m04kA/FitStudio-BookingService/internal/service/classes/models"
)

type ClassService interface {
	List(ctx context.Context, req *models.ListClassesRequest) (*models.ClassListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
