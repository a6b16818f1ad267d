package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassSession_CapacityPredicates(t *testing.T) {
	tests := []struct {
		name        string
		capacity    int
		bookedCount int
		wantCanBook bool
		wantIsFull  bool
		wantSpots   int
	}{
		{"empty class", 10, 0, true, false, 10},
		{"one spot left", 10, 9, true, false, 1},
		{"full class", 10, 10, false, true, 0},
		{"overbooked is clamped", 10, 11, false, true, 0},
		{"single spot class", 1, 0, true, false, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &ClassSession{Capacity: tt.capacity, BookedCount: tt.bookedCount}

			assert.Equal(t, tt.wantCanBook, c.CanBook())
			assert.Equal(t, tt.wantIsFull, c.IsFull())
			assert.Equal(t, tt.wantSpots, c.SpotsLeft())
		})
	}
}

func TestClassSession_BookedCountAfterBook(t *testing.T) {
	c := &ClassSession{Capacity: 10, BookedCount: 4}

	assert.Equal(t, 5, c.BookedCountAfterBook())
	// Метод чистый, состояние не меняется
	assert.Equal(t, 4, c.BookedCount)
}

func TestClassSession_BookedCountAfterCancel(t *testing.T) {
	tests := []struct {
		name        string
		bookedCount int
		want        int
	}{
		{"regular decrement", 5, 4},
		{"last booking", 1, 0},
		{"zero is clamped", 0, 0},
		{"negative is clamped", -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &ClassSession{Capacity: 10, BookedCount: tt.bookedCount}
			assert.Equal(t, tt.want, c.BookedCountAfterCancel())
		})
	}
}

func TestClassSession_HasStarted(t *testing.T) {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	c := &ClassSession{StartTime: start, DurationMinutes: 60}

	assert.False(t, c.HasStarted(start.Add(-time.Minute)))
	// Момент начала считается стартовавшим
	assert.True(t, c.HasStarted(start))
	assert.True(t, c.HasStarted(start.Add(time.Minute)))
	assert.Equal(t, start.Add(60*time.Minute), c.EndTime())
}

func TestSameLocalDay(t *testing.T) {
	moscow, err := time.LoadLocation("Europe/Moscow")
	assert.NoError(t, err)

	tests := []struct {
		name string
		a    time.Time
		b    time.Time
		want bool
	}{
		{
			"same day same zone",
			time.Date(2026, 3, 2, 8, 0, 0, 0, moscow),
			time.Date(2026, 3, 2, 23, 59, 0, 0, moscow),
			true,
		},
		{
			"different days",
			time.Date(2026, 3, 2, 23, 59, 0, 0, moscow),
			time.Date(2026, 3, 3, 0, 0, 0, 0, moscow),
			false,
		},
		{
			// 23:00 UTC первого марта - это уже 02:00 второго марта в Москве
			"utc evening crosses into next local day",
			time.Date(2026, 3, 1, 23, 0, 0, 0, time.UTC),
			time.Date(2026, 3, 2, 12, 0, 0, 0, moscow),
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SameLocalDay(tt.a, tt.b, moscow))
		})
	}
}

func TestDifficulty_Rank(t *testing.T) {
	assert.Less(t, DifficultyBeginner.Rank(), DifficultyIntermediate.Rank())
	assert.Less(t, DifficultyIntermediate.Rank(), DifficultyAdvanced.Rank())
}

func TestValidators(t *testing.T) {
	assert.True(t, ValidClassType(TypeYoga))
	assert.False(t, ValidClassType(ClassType("crossfit")))

	assert.True(t, ValidDifficulty(DifficultyAdvanced))
	assert.False(t, ValidDifficulty(Difficulty("expert")))

	assert.True(t, ValidBookingStatus(StatusConfirmed))
	assert.False(t, ValidBookingStatus(BookingStatus("cancelled")))
}
