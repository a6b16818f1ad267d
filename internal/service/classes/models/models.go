package models

import (
	"errors"
	"time"

	"github.com/m04kA/FitStudio-BookingService/internal/domain"
)

var (
	// ErrInvalidClassType возвращается при некорректном типе класса
	ErrInvalidClassType = errors.New("invalid class type")

	// ErrInvalidDifficulty возвращается при некорректном уровне сложности
	ErrInvalidDifficulty = errors.New("invalid difficulty level")

	// ErrInvalidSort возвращается при некорректном варианте сортировки
	ErrInvalidSort = errors.New("invalid sort option")
)

// Варианты сортировки каталога классов
const (
	SortByName       = "name"       // По названию, лексикографически (по умолчанию)
	SortByDuration   = "duration"   // По длительности, по возрастанию
	SortByDifficulty = "difficulty" // По рангу сложности: beginner < intermediate < advanced
)

// Request модели

// ListClassesRequest запрос каталога классов с фильтрацией и сортировкой
type ListClassesRequest struct {
	Search        string  `json:"search,omitempty"`        // Подстрока в названии или имени инструктора
	Type          *string `json:"type,omitempty"`          // Точный фильтр по типу (опционально)
	Difficulty    *string `json:"difficulty,omitempty"`    // Точный фильтр по сложности (опционально)
	OnlyAvailable bool    `json:"onlyAvailable,omitempty"` // Только классы со свободными местами
	SortBy        string  `json:"sortBy,omitempty"`        // name | duration | difficulty
}

// Response модели

// ClassResponse ответ с данными класса
type ClassResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Type            string    `json:"type"`
	Instructor      string    `json:"instructor"`
	Difficulty      string    `json:"difficulty"`
	StartTime       time.Time `json:"startTime"`
	DurationMinutes int       `json:"durationMinutes"`
	Capacity        int       `json:"capacity"`
	BookedCount     int       `json:"bookedCount"`
	SpotsLeft       int       `json:"spotsLeft"`
	IsFull          bool      `json:"isFull"`
	Equipment       []string  `json:"equipment"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ClassListResponse ответ со списком классов
type ClassListResponse struct {
	Classes []ClassResponse `json:"classes"`
}

// Методы конвертации

// FromDomainClass конвертирует domain модель в DTO
func FromDomainClass(c *domain.ClassSession) *ClassResponse {
	if c == nil {
		return nil
	}

	equipment := c.Equipment
	if equipment == nil {
		equipment = []string{}
	}

	return &ClassResponse{
		ID:              c.ID,
		Name:            c.Name,
		Type:            string(c.Type),
		Instructor:      c.Instructor,
		Difficulty:      string(c.Difficulty),
		StartTime:       c.StartTime,
		DurationMinutes: c.DurationMinutes,
		Capacity:        c.Capacity,
		BookedCount:     c.BookedCount,
		SpotsLeft:       c.SpotsLeft(),
		IsFull:          c.IsFull(),
		Equipment:       equipment,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

// FromDomainClassList конвертирует список domain моделей в DTO
func FromDomainClassList(classes []*domain.ClassSession) *ClassListResponse {
	if classes == nil {
		return &ClassListResponse{
			Classes: []ClassResponse{},
		}
	}

	resp := &ClassListResponse{
		Classes: make([]ClassResponse, len(classes)),
	}

	for i, class := range classes {
		if classResp := FromDomainClass(class); classResp != nil {
			resp.Classes[i] = *classResp
		}
	}

	return resp
}

// ToDomainClassType конвертирует строку в domain.ClassType с валидацией
func ToDomainClassType(classType string) (domain.ClassType, error) {
	t := domain.ClassType(classType)
	if !domain.ValidClassType(t) {
		return "", ErrInvalidClassType
	}
	return t, nil
}

// ToDomainDifficulty конвертирует строку в domain.Difficulty с валидацией
func ToDomainDifficulty(difficulty string) (domain.Difficulty, error) {
	d := domain.Difficulty(difficulty)
	if !domain.ValidDifficulty(d) {
		return "", ErrInvalidDifficulty
	}
	return d, nil
}

// ValidSortOption проверяет вариант сортировки
// Пустая строка допустима и означает сортировку по умолчанию
func ValidSortOption(sortBy string) bool {
	switch sortBy {
	case "", SortByName, SortByDuration, SortByDifficulty:
		return true
	}
	return false
}
