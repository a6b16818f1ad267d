package domain

import "time"

// Business validation constants
const (
	MinCapacity        = 1
	MaxCapacity        = 500
	MinDurationMinutes = 15
	MaxDurationMinutes = 240
	MaxNameLength      = 120
	MaxBioLength       = 2000
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// DaysInWeek размер окна недельного расписания
const DaysInWeek = 7

// AllClassTypes полный список типов классов
// Используется для валидации и для кнопок фильтров расписания
var AllClassTypes = []ClassType{
	TypeYoga,
	TypePilates,
	TypeHIIT,
	TypeSpin,
	TypeStrength,
	TypeCardio,
}

// AllDifficulties полный список уровней сложности
var AllDifficulties = []Difficulty{
	DifficultyBeginner,
	DifficultyIntermediate,
	DifficultyAdvanced,
}

// difficultyRank порядок сложности для сортировки
var difficultyRank = map[Difficulty]int{
	DifficultyBeginner:     1,
	DifficultyIntermediate: 2,
	DifficultyAdvanced:     3,
}

// Rank returns the sort rank of the difficulty (beginner < intermediate < advanced)
// Unknown difficulties sort last
func (d Difficulty) Rank() int {
	if r, ok := difficultyRank[d]; ok {
		return r
	}
	return len(difficultyRank) + 1
}

// ValidClassType returns true if t is one of the known class types
func ValidClassType(t ClassType) bool {
	for _, known := range AllClassTypes {
		if t == known {
			return true
		}
	}
	return false
}

// ValidDifficulty returns true if d is one of the known difficulty levels
func ValidDifficulty(d Difficulty) bool {
	for _, known := range AllDifficulties {
		if d == known {
			return true
		}
	}
	return false
}

// ValidBookingStatus returns true if s is a known booking status
func ValidBookingStatus(s BookingStatus) bool {
	return s == StatusConfirmed || s == StatusPending
}

// SameLocalDay reports whether two timestamps fall on the same calendar day
// in the given location. Сравниваются компоненты год/месяц/день после
// приведения к таймзоне студии, без нормализации в UTC
func SameLocalDay(a, b time.Time, loc *time.Location) bool {
	y1, m1, d1 := a.In(loc).Date()
	y2, m2, d2 := b.In(loc).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
