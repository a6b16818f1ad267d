package get_schedule

import (
	"time"

	"github.com/m04kA/FitStudio-BookingService/internal/domain"
)

// ViewMode режим отображения расписания
type ViewMode string

const (
	ViewWeek ViewMode = "week" // 7-дневное окно от начала недели
	ViewDay  ViewMode = "day"  // Один календарный день
)

// Request модель запроса расписания
type Request struct {
	// Anchor дата-якорь: для недельного режима - любая дата внутри недели
	// (окно начинается с понедельника этой недели), для дневного - сам день
	Anchor time.Time

	// View режим отображения (week или day)
	View ViewMode

	// Types активные фильтры по типам классов
	// Пустой список = без фильтрации
	Types []domain.ClassType
}

// Response модель ответа с расписанием по дням
type Response struct {
	From time.Time // Начало окна (локальная полночь)
	To   time.Time // Конец окна (не включается)
	Days []DaySchedule
}

// DaySchedule классы одного календарного дня, по возрастанию времени начала
type DaySchedule struct {
	Date    time.Time
	Classes []*domain.ClassSession
}
