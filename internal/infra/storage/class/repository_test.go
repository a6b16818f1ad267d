package class

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/FitStudio-BookingService/internal/domain"
)

func classRows(classes ...*domain.ClassSession) *sqlmock.Rows {
	rows := sqlmock.NewRows(classColumns)
	for _, c := range classes {
		rows.AddRow(c.ID, c.Name, c.Type, c.Instructor, c.Difficulty, c.StartTime,
			c.DurationMinutes, c.Capacity, c.BookedCount, pq.Array(c.Equipment),
			c.CreatedAt, c.UpdatedAt)
	}
	return rows
}

func testClass() *domain.ClassSession {
	return &domain.ClassSession{
		ID:              42,
		Name:            "Morning Flow Yoga",
		Type:            domain.TypeYoga,
		Instructor:      "Sarah Mitchell",
		Difficulty:      domain.DifficultyBeginner,
		StartTime:       time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		DurationMinutes: 60,
		Capacity:        20,
		BookedCount:     5,
		Equipment:       []string{"mat", "blocks"},
		CreatedAt:       time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt:       time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery(`SELECT .+ FROM classes WHERE id = \$1`).
		WithArgs(int64(42)).
		WillReturnRows(classRows(testClass()))

	class, err := repo.GetByID(context.Background(), 42)

	assert.NoError(t, err)
	assert.Equal(t, int64(42), class.ID)
	assert.Equal(t, domain.TypeYoga, class.Type)
	assert.Equal(t, []string{"mat", "blocks"}, class.Equipment)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery(`SELECT .+ FROM classes WHERE id = \$1`).
		WithArgs(int64(404)).
		WillReturnRows(classRows())

	_, err = repo.GetByID(context.Background(), 404)

	assert.ErrorIs(t, err, ErrClassNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_ForcesZeroBookedCount(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	class := testClass()
	class.ID = 0
	class.BookedCount = 99 // Значение из входных данных игнорируется

	mock.ExpectQuery(`INSERT INTO classes .+ RETURNING id, created_at, updated_at`).
		WithArgs(class.Name, class.Type, class.Instructor, class.Difficulty,
			class.StartTime, class.DurationMinutes, class.Capacity, 0, pq.Array(class.Equipment)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(42), time.Now(), time.Now()))

	created, err := repo.Create(context.Background(), class)

	assert.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
	assert.Equal(t, 0, created.BookedCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByDateRange_HalfOpenInterval(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	from := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT .+ FROM classes WHERE start_time >= \$1 AND start_time < \$2 ORDER BY start_time ASC, id ASC`).
		WithArgs(from, to).
		WillReturnRows(classRows(testClass()))

	classes, err := repo.GetByDateRange(context.Background(), from, to)

	assert.NoError(t, err)
	assert.Len(t, classes, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAvailable(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery(`SELECT .+ FROM classes WHERE booked_count < capacity`).
		WillReturnRows(classRows(testClass()))

	classes, err := repo.GetAvailable(context.Background())

	assert.NoError(t, err)
	assert.Len(t, classes, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateBookedCount(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectExec(`UPDATE classes SET booked_count = \$1, updated_at = NOW\(\) WHERE id = \$2`).
		WithArgs(6, int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.UpdateBookedCount(context.Background(), 42, 6)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateBookedCount_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectExec(`UPDATE classes SET booked_count = \$1`).
		WithArgs(6, int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.UpdateBookedCount(context.Background(), 404, 6)

	assert.ErrorIs(t, err, ErrClassNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_ReturnsDeletedClass(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery(`DELETE FROM classes WHERE id = \$1 RETURNING`).
		WithArgs(int64(42)).
		WillReturnRows(classRows(testClass()))

	deleted, err := repo.Delete(context.Background(), 42)

	assert.NoError(t, err)
	assert.Equal(t, int64(42), deleted.ID)
	assert.Equal(t, "Morning Flow Yoga", deleted.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
