package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/FitStudio-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/FitStudio-BookingService/internal/infra/storage/booking"
	classRepo "github.com/m04kA/FitStudio-BookingService/internal/infra/storage/class"
	"github.com/m04kA/FitStudio-BookingService/internal/service/bookings/models"
)

type MockBookingRepo struct{ mock.Mock }
type MockClassRepo struct{ mock.Mock }

func (m *MockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepo) GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	args := m.Called(ctx, userID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

func (m *MockBookingRepo) GetByClassID(ctx context.Context, classID int64) ([]*domain.Booking, error) {
	args := m.Called(ctx, classID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

func (m *MockClassRepo) GetByID(ctx context.Context, id int64) (*domain.ClassSession, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClassSession), args.Error(1)
}

type fixedTimeProvider struct{ now time.Time }

func (p fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestService(bookings *MockBookingRepo, classes *MockClassRepo, now time.Time) *Service {
	svc := NewService(bookings, classes, nopLogger{})
	svc.timeProvider = fixedTimeProvider{now: now}
	return svc
}

func TestGetByID_OwnerOnly(t *testing.T) {
	bookings := new(MockBookingRepo)
	classes := new(MockClassRepo)
	svc := newTestService(bookings, classes, time.Now())

	booking := &domain.Booking{ID: 100, ClassID: 42, UserID: 7}
	bookings.On("GetByID", mock.Anything, int64(100)).Return(booking, nil)

	resp, err := svc.GetByID(context.Background(), 100, 7)
	assert.NoError(t, err)
	assert.Equal(t, int64(100), resp.ID)

	// Чужое бронирование недоступно
	_, err = svc.GetByID(context.Background(), 100, 8)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	bookings := new(MockBookingRepo)
	svc := newTestService(bookings, new(MockClassRepo), time.Now())

	bookings.On("GetByID", mock.Anything, int64(100)).Return(nil, bookingRepo.ErrBookingNotFound)

	_, err := svc.GetByID(context.Background(), 100, 7)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetUserBookings_Scopes(t *testing.T) {
	now := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)

	pastClass := &domain.ClassSession{ID: 1, Name: "Past HIIT",
		StartTime: now.Add(-24 * time.Hour), DurationMinutes: 30, Capacity: 10}
	upcomingClass := &domain.ClassSession{ID: 2, Name: "Upcoming Yoga",
		StartTime: now.Add(24 * time.Hour), DurationMinutes: 60, Capacity: 20}

	userBookings := []*domain.Booking{
		{ID: 100, ClassID: 1, UserID: 7, Status: domain.StatusConfirmed},
		{ID: 101, ClassID: 2, UserID: 7, Status: domain.StatusConfirmed},
	}

	tests := []struct {
		scope     string
		wantIDs   []int64
		wantNames []string
	}{
		{"upcoming", []int64{101}, []string{"Upcoming Yoga"}},
		{"past", []int64{100}, []string{"Past HIIT"}},
		{"all", []int64{100, 101}, []string{"Past HIIT", "Upcoming Yoga"}},
		{"", []int64{100, 101}, []string{"Past HIIT", "Upcoming Yoga"}},
	}

	for _, tt := range tests {
		t.Run("scope "+tt.scope, func(t *testing.T) {
			bookings := new(MockBookingRepo)
			classes := new(MockClassRepo)
			svc := newTestService(bookings, classes, now)

			bookings.On("GetByUserID", mock.Anything, int64(7), (*domain.BookingStatus)(nil)).
				Return(userBookings, nil)
			classes.On("GetByID", mock.Anything, int64(1)).Return(pastClass, nil)
			classes.On("GetByID", mock.Anything, int64(2)).Return(upcomingClass, nil)

			resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
				UserID: 7,
				Scope:  tt.scope,
			})

			assert.NoError(t, err)
			assert.Len(t, resp.Bookings, len(tt.wantIDs))
			for i, id := range tt.wantIDs {
				assert.Equal(t, id, resp.Bookings[i].ID)
				assert.Equal(t, tt.wantNames[i], resp.Bookings[i].ClassName)
			}
		})
	}
}

func TestGetUserBookings_SortedByClassStartTime(t *testing.T) {
	now := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
	bookings := new(MockBookingRepo)
	classes := new(MockClassRepo)
	svc := newTestService(bookings, classes, now)

	later := &domain.ClassSession{ID: 1, Name: "Later", StartTime: now.Add(48 * time.Hour)}
	sooner := &domain.ClassSession{ID: 2, Name: "Sooner", StartTime: now.Add(2 * time.Hour)}

	bookings.On("GetByUserID", mock.Anything, int64(7), (*domain.BookingStatus)(nil)).
		Return([]*domain.Booking{
			{ID: 100, ClassID: 1, UserID: 7},
			{ID: 101, ClassID: 2, UserID: 7},
		}, nil)
	classes.On("GetByID", mock.Anything, int64(1)).Return(later, nil)
	classes.On("GetByID", mock.Anything, int64(2)).Return(sooner, nil)

	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: 7})

	assert.NoError(t, err)
	assert.Equal(t, "Sooner", resp.Bookings[0].ClassName)
	assert.Equal(t, "Later", resp.Bookings[1].ClassName)
}

func TestGetUserBookings_SkipsOrphanedBookings(t *testing.T) {
	// Класс удален, бронирование осталось - запись пропускается, а не валит запрос
	now := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
	bookings := new(MockBookingRepo)
	classes := new(MockClassRepo)
	svc := newTestService(bookings, classes, now)

	bookings.On("GetByUserID", mock.Anything, int64(7), (*domain.BookingStatus)(nil)).
		Return([]*domain.Booking{{ID: 100, ClassID: 1, UserID: 7}}, nil)
	classes.On("GetByID", mock.Anything, int64(1)).Return(nil, classRepo.ErrClassNotFound)

	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: 7})

	assert.NoError(t, err)
	assert.Empty(t, resp.Bookings)
}

func TestGetUserBookings_InvalidScope(t *testing.T) {
	svc := newTestService(new(MockBookingRepo), new(MockClassRepo), time.Now())

	_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: 7,
		Scope:  "yesterday",
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetClassBookings(t *testing.T) {
	bookings := new(MockBookingRepo)
	classes := new(MockClassRepo)
	svc := newTestService(bookings, classes, time.Now())

	classes.On("GetByID", mock.Anything, int64(42)).Return(&domain.ClassSession{ID: 42}, nil)
	bookings.On("GetByClassID", mock.Anything, int64(42)).Return([]*domain.Booking{
		{ID: 100, ClassID: 42, UserID: 7},
		{ID: 101, ClassID: 42, UserID: 8},
	}, nil)

	resp, err := svc.GetClassBookings(context.Background(), 42)

	assert.NoError(t, err)
	assert.Len(t, resp.Bookings, 2)
}

func TestGetClassBookings_ClassNotFound(t *testing.T) {
	bookings := new(MockBookingRepo)
	classes := new(MockClassRepo)
	svc := newTestService(bookings, classes, time.Now())

	classes.On("GetByID", mock.Anything, int64(42)).Return(nil, classRepo.ErrClassNotFound)

	_, err := svc.GetClassBookings(context.Background(), 42)

	assert.ErrorIs(t, err, ErrClassNotFound)
	bookings.AssertNotCalled(t, "GetByClassID", mock.Anything, mock.Anything)
}
