package booking

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/FitStudio-BookingService/internal/domain"
)

func bookingRows(bookings ...*domain.Booking) *sqlmock.Rows {
	rows := sqlmock.NewRows(bookingColumns)
	for _, b := range bookings {
		rows.AddRow(b.ID, b.ClassID, b.UserID, b.Status, b.Position, b.BookedAt,
			b.CreatedAt, b.UpdatedAt)
	}
	return rows
}

func testBooking() *domain.Booking {
	return &domain.Booking{
		ID:       100,
		ClassID:  42,
		UserID:   7,
		Status:   domain.StatusConfirmed,
		Position: 5,
		BookedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestCreate_AppliesDefaults(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	// Статус и booked_at не заполнены - контракт хранилища подставляет дефолты
	booking := &domain.Booking{ClassID: 42, UserID: 7, Position: 5}

	mock.ExpectQuery(`INSERT INTO bookings .+ RETURNING id, created_at, updated_at`).
		WithArgs(int64(42), int64(7), domain.StatusConfirmed, 5, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(100), time.Now(), time.Now()))

	created, err := repo.Create(context.Background(), booking)

	assert.NoError(t, err)
	assert.Equal(t, int64(100), created.ID)
	assert.Equal(t, domain.StatusConfirmed, created.Status)
	assert.False(t, created.BookedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByUserID_WithStatusFilter(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery(`SELECT .+ FROM bookings WHERE user_id = \$1 AND status = \$2 ORDER BY booked_at DESC, id DESC`).
		WithArgs(int64(7), domain.StatusConfirmed).
		WillReturnRows(bookingRows(testBooking()))

	status := domain.StatusConfirmed
	bookings, err := repo.GetByUserID(context.Background(), 7, &status)

	assert.NoError(t, err)
	assert.Len(t, bookings, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByClassID(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery(`SELECT .+ FROM bookings WHERE class_id = \$1`).
		WithArgs(int64(42)).
		WillReturnRows(bookingRows(testBooking()))

	bookings, err := repo.GetByClassID(context.Background(), 42)

	assert.NoError(t, err)
	assert.Len(t, bookings, 1)
	assert.Equal(t, int64(42), bookings[0].ClassID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_ReturnsDeletedBooking(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery(`DELETE FROM bookings WHERE id = \$1 RETURNING`).
		WithArgs(int64(100)).
		WillReturnRows(bookingRows(testBooking()))

	deleted, err := repo.Delete(context.Background(), 100)

	assert.NoError(t, err)
	assert.Equal(t, int64(100), deleted.ID)
	assert.Equal(t, int64(42), deleted.ClassID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery(`DELETE FROM bookings WHERE id = \$1 RETURNING`).
		WithArgs(int64(404)).
		WillReturnRows(bookingRows())

	_, err = repo.Delete(context.Background(), 404)

	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountByClassID(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bookings WHERE class_id = \$1`).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	count, err := repo.CountByClassID(context.Background(), 42)

	assert.NoError(t, err)
	assert.Equal(t, 5, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
