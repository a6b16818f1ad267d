package classes

import (
	"sort"
	"strings"

	"github.com/m04kA/FitStudio-BookingService/internal/domain"
	"github.com/m04kA/FitStudio-BookingService/internal/service/classes/models"
)

// filterBySearch оставляет классы, у которых название или имя инструктора
// содержит искомую подстроку без учета регистра
func filterBySearch(classes []*domain.ClassSession, search string) []*domain.ClassSession {
	query := strings.ToLower(strings.TrimSpace(search))
	if query == "" {
		return classes
	}

	filtered := make([]*domain.ClassSession, 0, len(classes))
	for _, class := range classes {
		if strings.Contains(strings.ToLower(class.Name), query) ||
			strings.Contains(strings.ToLower(class.Instructor), query) {
			filtered = append(filtered, class)
		}
	}

	return filtered
}

// filterByDifficulty оставляет классы с точно совпадающим уровнем сложности
func filterByDifficulty(classes []*domain.ClassSession, difficulty domain.Difficulty) []*domain.ClassSession {
	filtered := make([]*domain.ClassSession, 0, len(classes))
	for _, class := range classes {
		if class.Difficulty == difficulty {
			filtered = append(filtered, class)
		}
	}
	return filtered
}

// filterAvailable оставляет классы со свободными местами
func filterAvailable(classes []*domain.ClassSession) []*domain.ClassSession {
	filtered := make([]*domain.ClassSession, 0, len(classes))
	for _, class := range classes {
		if !class.IsFull() {
			filtered = append(filtered, class)
		}
	}
	return filtered
}

// sortClasses сортирует список по выбранному критерию
// Равные элементы упорядочиваются по названию, затем по id - порядок детерминирован
func sortClasses(classes []*domain.ClassSession, sortBy string) {
	var less func(a, b *domain.ClassSession) bool

	switch sortBy {
	case models.SortByDuration:
		less = func(a, b *domain.ClassSession) bool {
			if a.DurationMinutes != b.DurationMinutes {
				return a.DurationMinutes < b.DurationMinutes
			}
			return byNameThenID(a, b)
		}
	case models.SortByDifficulty:
		less = func(a, b *domain.ClassSession) bool {
			if a.Difficulty.Rank() != b.Difficulty.Rank() {
				return a.Difficulty.Rank() < b.Difficulty.Rank()
			}
			return byNameThenID(a, b)
		}
	default:
		less = byNameThenID
	}

	sort.SliceStable(classes, func(i, j int) bool {
		return less(classes[i], classes[j])
	})
}

func byNameThenID(a, b *domain.ClassSession) bool {
	an, bn := strings.ToLower(a.Name), strings.ToLower(b.Name)
	if an != bn {
		return an < bn
	}
	return a.ID < b.ID
}
