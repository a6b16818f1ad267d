package get_instructor

import (
	"context"

	classModels "github.com/m04kA/FitStudio-BookingService/internal/service/classes/models"
	"github.com/m04kA/FitStudio-BookingService/internal/service/instructors/models"
)

type InstructorService interface {
	GetByID(ctx context.Context, id int64) (*models.InstructorResponse, error)
}

type ClassService interface {
	GetByInstructor(ctx context.Context, instructor string) (*classModels.ClassListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
