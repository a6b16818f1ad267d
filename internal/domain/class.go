package domain

import "time"

// ClassType represents the type of a fitness class
type ClassType string

const (
	TypeYoga     ClassType = "yoga"
	TypePilates  ClassType = "pilates"
	TypeHIIT     ClassType = "hiit"
	TypeSpin     ClassType = "spin"
	TypeStrength ClassType = "strength"
	TypeCardio   ClassType = "cardio"
)

// Difficulty represents the difficulty level of a class
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// ClassSession represents a scheduled fitness class with a fixed capacity
type ClassSession struct {
	ID              int64
	Name            string
	Type            ClassType
	Instructor      string // Имя инструктора (строковая ссылка, не FK)
	Difficulty      Difficulty
	StartTime       time.Time
	DurationMinutes int
	Capacity        int
	BookedCount     int
	Equipment       []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EndTime returns the time the class ends
func (c *ClassSession) EndTime() time.Time {
	return c.StartTime.Add(time.Duration(c.DurationMinutes) * time.Minute)
}

// HasStarted returns true if the class has already started at the given moment
func (c *ClassSession) HasStarted(now time.Time) bool {
	return !c.StartTime.After(now)
}

// SpotsLeft returns the number of free spots in the class
func (c *ClassSession) SpotsLeft() int {
	left := c.Capacity - c.BookedCount
	if left < 0 {
		return 0
	}
	return left
}

// IsFull returns true if the class has no free spots
func (c *ClassSession) IsFull() bool {
	return c.BookedCount >= c.Capacity
}

// CanBook returns true if one more booking fits into the class
// Проверка обязана выполняться по свежему состоянию класса (под блокировкой),
// а не по снапшоту, который видел клиент
func (c *ClassSession) CanBook() bool {
	return c.BookedCount < c.Capacity
}

// BookedCountAfterBook returns the booked count after one more booking
// Caller must check CanBook first
func (c *ClassSession) BookedCountAfterBook() int {
	return c.BookedCount + 1
}

// BookedCountAfterCancel returns the booked count after one cancellation,
// clamped at zero
func (c *ClassSession) BookedCountAfterCancel() int {
	if c.BookedCount <= 0 {
		return 0
	}
	return c.BookedCount - 1
}

// OccupancyRate returns the occupancy rate as a percentage (0-100)
func (c *ClassSession) OccupancyRate() float64 {
	if c.Capacity == 0 {
		return 0
	}
	return float64(c.BookedCount) / float64(c.Capacity) * 100
}
