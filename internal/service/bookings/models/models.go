package models

import (
	"errors"
	"time"

	"github.com/m04kA/FitStudio-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidScope возвращается при некорректном scope выборки
	ErrInvalidScope = errors.New("invalid bookings scope")
)

// Request модели

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID int64   `json:"userId"`
	Scope  string  `json:"scope,omitempty"`  // upcoming | past | all (по умолчанию all)
	Status *string `json:"status,omitempty"` // Фильтр по статусу (опционально)
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID       int64     `json:"id"`
	ClassID  int64     `json:"classId"`
	UserID   int64     `json:"userId"`
	Status   string    `json:"status"`
	Position int       `json:"position"`
	BookedAt time.Time `json:"bookedAt"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserBookingResponse бронирование, обогащенное данными класса
type UserBookingResponse struct {
	BookingResponse

	// Денормализованные данные класса
	ClassName       string    `json:"className"`
	ClassType       string    `json:"classType"`
	Instructor      string    `json:"instructor"`
	StartTime       time.Time `json:"startTime"`
	DurationMinutes int       `json:"durationMinutes"`
	Capacity        int       `json:"capacity"`
	BookedCount     int       `json:"bookedCount"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// UserBookingListResponse ответ со списком бронирований пользователя
type UserBookingListResponse struct {
	Bookings []UserBookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:        b.ID,
		ClassID:   b.ClassID,
		UserID:    b.UserID,
		Status:    string(b.Status),
		Position:  b.Position,
		BookedAt:  b.BookedAt,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}

// FromDomainBookingWithClass конвертирует обогащенную domain модель в DTO
func FromDomainBookingWithClass(bc *domain.BookingWithClass) *UserBookingResponse {
	if bc == nil {
		return nil
	}

	return &UserBookingResponse{
		BookingResponse: *FromDomainBooking(&bc.Booking),
		ClassName:       bc.Class.Name,
		ClassType:       string(bc.Class.Type),
		Instructor:      bc.Class.Instructor,
		StartTime:       bc.Class.StartTime,
		DurationMinutes: bc.Class.DurationMinutes,
		Capacity:        bc.Class.Capacity,
		BookedCount:     bc.Class.BookedCount,
	}
}

// FromDomainBookingWithClassList конвертирует список обогащенных domain моделей в DTO
func FromDomainBookingWithClassList(items []*domain.BookingWithClass) *UserBookingListResponse {
	if items == nil {
		return &UserBookingListResponse{
			Bookings: []UserBookingResponse{},
		}
	}

	resp := &UserBookingListResponse{
		Bookings: make([]UserBookingResponse, len(items)),
	}

	for i, item := range items {
		if itemResp := FromDomainBookingWithClass(item); itemResp != nil {
			resp.Bookings[i] = *itemResp
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !domain.ValidBookingStatus(s) {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// ToDomainScope конвертирует строку в domain.UserBookingsScope с валидацией
// Пустая строка означает scope по умолчанию - all
func ToDomainScope(scope string) (domain.UserBookingsScope, error) {
	if scope == "" {
		return domain.ScopeAll, nil
	}

	s := domain.UserBookingsScope(scope)
	switch s {
	case domain.ScopeUpcoming, domain.ScopePast, domain.ScopeAll:
		return s, nil
	}

	return "", ErrInvalidScope
}
