package list_instructors

import (
	"context"

	"github.com/m04kA/FitStudio-BookingService/internal/service/instructors/models"
)

type InstructorService interface {
	List(ctx context.Context, req *models.ListInstructorsRequest) (*models.InstructorListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
