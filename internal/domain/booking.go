package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusPending   BookingStatus = "pending"
)

// Booking represents a user's reservation against one class session
// Отмена бронирования физически удаляет запись - истории отмен нет
type Booking struct {
	ID      int64
	ClassID int64
	UserID  int64
	Status  BookingStatus

	// Position значение BookedCount класса на момент создания бронирования
	// Используется только для отображения ("вы 10-й из 10")
	Position int

	BookedAt  time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsConfirmed returns true if the booking is confirmed
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// UserBookingsScope scope выборки бронирований пользователя
type UserBookingsScope string

const (
	ScopeUpcoming UserBookingsScope = "upcoming"
	ScopePast     UserBookingsScope = "past"
	ScopeAll      UserBookingsScope = "all"
)

// BookingWithClass бронирование, обогащенное данными класса
// Используется в списке бронирований пользователя
type BookingWithClass struct {
	Booking Booking
	Class   ClassSession
}
