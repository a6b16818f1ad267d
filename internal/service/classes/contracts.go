package classes

import (
	"context"

	"github.com/m04kA/FitStudio-BookingService/internal/domain"
)

// ClassRepository интерфейс репозитория классов
type ClassRepository interface {
	GetAll(ctx context.Context) ([]*domain.ClassSession, error)
	GetByID(ctx context.Context, id int64) (*domain.ClassSession, error)
	GetByInstructor(ctx context.Context, instructor string) ([]*domain.ClassSession, error)
	GetByType(ctx context.Context, classType domain.ClassType) ([]*domain.ClassSession, error)
	GetAvailable(ctx context.Context) ([]*domain.ClassSession, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
