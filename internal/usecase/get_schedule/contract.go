package get_schedule

import (
	"context"
	"time"

	"github.com/m04kA/FitStudio-BookingService/internal/domain"
)

// ClassRepository интерфейс репозитория классов
type ClassRepository interface {
	GetByDateRange(ctx context.Context, from, to time.Time) ([]*domain.ClassSession, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реализация TimeProvider с реальным временем
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
