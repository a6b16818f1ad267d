package cancel_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/FitStudio-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/FitStudio-BookingService/internal/infra/storage/booking"
)

// Mock repositories
type MockBookingRepo struct{ mock.Mock }
type MockClassRepo struct{ mock.Mock }

func (m *MockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepo) Delete(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockClassRepo) GetByID(ctx context.Context, id int64) (*domain.ClassSession, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClassSession), args.Error(1)
}

func (m *MockClassRepo) UpdateBookedCount(ctx context.Context, id int64, bookedCount int) error {
	return m.Called(ctx, id, bookedCount).Error(0)
}

type stubTxManager struct{}

func (stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct{ now time.Time }

func (p fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestUseCase(bookings *MockBookingRepo, classes *MockClassRepo, now time.Time) *UseCase {
	uc := NewUseCase(bookings, classes, stubTxManager{}, nopLogger{})
	uc.timeProvider = fixedTimeProvider{now: now}
	return uc
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

func testClass(booked int) *domain.ClassSession {
	return &domain.ClassSession{
		ID:              42,
		Name:            "Morning Flow Yoga",
		StartTime:       time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		DurationMinutes: 60,
		Capacity:        10,
		BookedCount:     booked,
	}
}

func TestExecute_Success(t *testing.T) {
	now := time.Date(2026, 3, 1, 15, 0, 0, 0, time.UTC)
	bookings := new(MockBookingRepo)
	classes := new(MockClassRepo)
	uc := newTestUseCase(bookings, classes, now)

	bookings.On("GetByID", mock.Anything, int64(100)).Return(testBooking(), nil)
	classes.On("GetByID", mock.Anything, int64(42)).Return(testClass(5), nil)
	bookings.On("Delete", mock.Anything, int64(100)).Return(testBooking(), nil)
	// Ровно один декремент на одну отмену
	classes.On("UpdateBookedCount", mock.Anything, int64(42), 4).Return(nil).Once()

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 100, UserID: 7})

	assert.NoError(t, err)
	assert.Equal(t, int64(100), resp.BookingID)
	assert.Equal(t, 6, resp.SpotsLeft)
	classes.AssertExpectations(t)
	bookings.AssertExpectations(t)
}

func TestExecute_DecrementClampedAtZero(t *testing.T) {
	// Счетчик уже на нуле из-за рассинхрона - декремент не уводит его в минус
	now := time.Date(2026, 3, 1, 15, 0, 0, 0, time.UTC)
	bookings := new(MockBookingRepo)
	classes := new(MockClassRepo)
	uc := newTestUseCase(bookings, classes, now)

	bookings.On("GetByID", mock.Anything, int64(100)).Return(testBooking(), nil)
	classes.On("GetByID", mock.Anything, int64(42)).Return(testClass(0), nil)
	bookings.On("Delete", mock.Anything, int64(100)).Return(testBooking(), nil)
	classes.On("UpdateBookedCount", mock.Anything, int64(42), 0).Return(nil).Once()

	_, err := uc.Execute(context.Background(), &Request{BookingID: 100, UserID: 7})

	assert.NoError(t, err)
	classes.AssertExpectations(t)
}

func TestExecute_BookingNotFound(t *testing.T) {
	bookings := new(MockBookingRepo)
	classes := new(MockClassRepo)
	uc := newTestUseCase(bookings, classes, time.Now())

	bookings.On("GetByID", mock.Anything, int64(100)).Return(nil, bookingRepo.ErrBookingNotFound)

	_, err := uc.Execute(context.Background(), &Request{BookingID: 100, UserID: 7})

	assert.ErrorIs(t, err, ErrBookingNotFound)
	bookings.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestExecute_AccessDenied(t *testing.T) {
	bookings := new(MockBookingRepo)
	classes := new(MockClassRepo)
	uc := newTestUseCase(bookings, classes, time.Now())

	bookings.On("GetByID", mock.Anything, int64(100)).Return(testBooking(), nil)

	// Чужое бронирование
	_, err := uc.Execute(context.Background(), &Request{BookingID: 100, UserID: 8})

	assert.ErrorIs(t, err, ErrAccessDenied)
	bookings.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	classes.AssertNotCalled(t, "UpdateBookedCount", mock.Anything, mock.Anything, mock.Anything)
}

func TestExecute_ClassStarted(t *testing.T) {
	// Сейчас позже времени начала класса - отмена запрещена
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	bookings := new(MockBookingRepo)
	classes := new(MockClassRepo)
	uc := newTestUseCase(bookings, classes, now)

	bookings.On("GetByID", mock.Anything, int64(100)).Return(testBooking(), nil)
	classes.On("GetByID", mock.Anything, int64(42)).Return(testClass(5), nil)

	_, err := uc.Execute(context.Background(), &Request{BookingID: 100, UserID: 7})

	assert.ErrorIs(t, err, ErrClassStarted)
	bookings.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(new(MockBookingRepo), new(MockClassRepo), time.Now())

	_, err := uc.Execute(context.Background(), &Request{BookingID: 0, UserID: 7})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{BookingID: 100, UserID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
