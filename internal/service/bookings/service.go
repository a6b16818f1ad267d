package bookings

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/m04kA/FitStudio-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/FitStudio-BookingService/internal/infra/storage/booking"
	classRepo "github.com/m04kA/FitStudio-BookingService/internal/infra/storage/class"
	"github.com/m04kA/FitStudio-BookingService/internal/service/bookings/models"
)

// Service сервис для просмотра бронирований
// Запись и отмена живут в usecase-слое - здесь только чтение
type Service struct {
	bookingRepo  BookingRepository
	classRepo    ClassRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, classRepo ClassRepository, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		classRepo:    classRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь может видеть только свое бронирование
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if booking.UserID != userID {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает бронирования пользователя, обогащенные данными классов
// Scope upcoming оставляет только еще не начавшиеся классы, past - уже начавшиеся,
// all возвращает всю историю; список отсортирован по времени начала класса
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.UserBookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, scope=%q, status=%v",
		req.UserID, req.Scope, req.Status)

	scope, err := models.ToDomainScope(req.Scope)
	if err != nil {
		s.logger.Warn("GetUserBookings: invalid scope=%q for user=%d", req.Scope, req.UserID)
		return nil, fmt.Errorf("%w: invalid scope", ErrInvalidInput)
	}

	// Конвертируем статус из строки в domain.BookingStatus
	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()

	// Обогащаем бронирования данными классов и применяем scope
	enriched := make([]*domain.BookingWithClass, 0, len(bookings))
	for _, booking := range bookings {
		class, err := s.classRepo.GetByID(ctx, booking.ClassID)
		if err != nil {
			if errors.Is(err, classRepo.ErrClassNotFound) {
				// Класс удален, а бронирование осталось - пропускаем запись
				s.logger.Warn("GetUserBookings: class id=%d for booking id=%d not found, skipping",
					booking.ClassID, booking.ID)
				continue
			}
			s.logger.Error("GetUserBookings: failed to get class id=%d: %v", booking.ClassID, err)
			return nil, fmt.Errorf("%w: GetUserBookings - failed to get class: %v", ErrInternal, err)
		}

		switch scope {
		case domain.ScopeUpcoming:
			if class.HasStarted(now) {
				continue
			}
		case domain.ScopePast:
			if !class.HasStarted(now) {
				continue
			}
		}

		enriched = append(enriched, &domain.BookingWithClass{
			Booking: *booking,
			Class:   *class,
		})
	}

	sort.SliceStable(enriched, func(i, j int) bool {
		if enriched[i].Class.StartTime.Equal(enriched[j].Class.StartTime) {
			return enriched[i].Booking.ID < enriched[j].Booking.ID
		}
		return enriched[i].Class.StartTime.Before(enriched[j].Class.StartTime)
	})

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(enriched), req.UserID)
	return models.FromDomainBookingWithClassList(enriched), nil
}

// GetClassBookings получает список бронирований одного класса
func (s *Service) GetClassBookings(ctx context.Context, classID int64) (*models.BookingListResponse, error) {
	s.logger.Info("GetClassBookings: fetching bookings for class=%d", classID)

	// Убеждаемся, что класс существует - пустой список и несуществующий класс
	// должны различаться для клиента
	if _, err := s.classRepo.GetByID(ctx, classID); err != nil {
		if errors.Is(err, classRepo.ErrClassNotFound) {
			s.logger.Warn("GetClassBookings: class id=%d not found", classID)
			return nil, ErrClassNotFound
		}
		s.logger.Error("GetClassBookings: failed to get class id=%d: %v", classID, err)
		return nil, fmt.Errorf("%w: GetClassBookings - failed to get class: %v", ErrInternal, err)
	}

	bookings, err := s.bookingRepo.GetByClassID(ctx, classID)
	if err != nil {
		s.logger.Error("GetClassBookings: repository error for class=%d: %v", classID, err)
		return nil, fmt.Errorf("%w: GetClassBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetClassBookings: successfully fetched %d bookings for class=%d", len(bookings), classID)
	return models.FromDomainBookingList(bookings), nil
}
