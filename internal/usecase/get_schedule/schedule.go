package get_schedule

import (
	"sort"
	"time"

	"github.com/m04kA/FitStudio-BookingService/internal/domain"
)

// startOfLocalDay возвращает полночь календарного дня t в таймзоне студии
// Компоненты даты берутся как есть - дата "2026-03-02", распарсенная в UTC,
// остается вторым марта независимо от смещения таймзоны студии
func startOfLocalDay(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// startOfWeek возвращает полночь понедельника недели, содержащей t
func startOfWeek(t time.Time, loc *time.Location) time.Time {
	day := startOfLocalDay(t, loc)

	// time.Weekday нумерует воскресенье нулем, неделя расписания начинается с понедельника
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// filterByTypes оставляет только классы разрешенных типов
// Пустой список типов означает отсутствие фильтрации
func filterByTypes(classes []*domain.ClassSession, types []domain.ClassType) []*domain.ClassSession {
	if len(types) == 0 {
		return classes
	}

	allowed := make(map[domain.ClassType]struct{}, len(types))
	for _, t := range types {
		allowed[t] = struct{}{}
	}

	filtered := make([]*domain.ClassSession, 0, len(classes))
	for _, class := range classes {
		if _, ok := allowed[class.Type]; ok {
			filtered = append(filtered, class)
		}
	}

	return filtered
}

// classesForDay выбирает классы, начинающиеся в тот же календарный день, что и day
// Сравнение идет по компонентам год/месяц/число в локальной таймзоне,
// а не по интервалам - классы на границах суток попадают ровно в один день
func classesForDay(classes []*domain.ClassSession, day time.Time, loc *time.Location) []*domain.ClassSession {
	result := make([]*domain.ClassSession, 0)
	for _, class := range classes {
		if domain.SameLocalDay(class.StartTime, day, loc) {
			result = append(result, class)
		}
	}
	return result
}

// sortByStartTime сортирует классы по возрастанию времени начала
// При равном времени порядок стабилизируется по id
func sortByStartTime(classes []*domain.ClassSession) {
	sort.SliceStable(classes, func(i, j int) bool {
		if classes[i].StartTime.Equal(classes[j].StartTime) {
			return classes[i].ID < classes[j].ID
		}
		return classes[i].StartTime.Before(classes[j].StartTime)
	})
}
