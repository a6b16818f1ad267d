package instructors

import (
	"context"

	"github.com/m04kA/FitStudio-BookingService/internal/domain"
)

// InstructorRepository интерфейс репозитория инструкторов
type InstructorRepository interface {
	GetAll(ctx context.Context) ([]*domain.Instructor, error)
	GetByID(ctx context.Context, id int64) (*domain.Instructor, error)
	GetBySpecialty(ctx context.Context, specialty string) ([]*domain.Instructor, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
