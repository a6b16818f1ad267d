package cancel_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/FitStudio-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/FitStudio-BookingService/internal/infra/storage/booking"
	classRepo "github.com/m04kA/FitStudio-BookingService/internal/infra/storage/class"
)

// UseCase use case для отмены бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	classRepo    ClassRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	classRepo ClassRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		classRepo:    classRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case отмены бронирования
// Удаление бронирования и декремент booked_count выполняются в одной
// сериализуемой транзакции - две записи не могут разойтись
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelBooking: booking=%d, user=%d", req.BookingID, req.UserID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CancelBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	var (
		deletedBooking *domain.Booking
		affectedClass  *domain.ClassSession
	)

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем бронирование
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("CancelBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("CancelBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 3.2. Пользователь может отменить только свое бронирование
		if booking.UserID != req.UserID {
			uc.logger.Warn("CancelBooking: user=%d is not the owner of booking id=%d", req.UserID, booking.ID)
			return ErrAccessDenied
		}

		// 3.3. Получаем класс под блокировкой
		class, err := uc.classRepo.GetByID(txCtx, booking.ClassID)
		if err != nil {
			if errors.Is(err, classRepo.ErrClassNotFound) {
				uc.logger.Error("CancelBooking: class id=%d referenced by booking id=%d not found",
					booking.ClassID, booking.ID)
				return ErrClassNotFound
			}
			uc.logger.Error("CancelBooking: failed to get class id=%d: %v", booking.ClassID, err)
			return fmt.Errorf("%w: failed to get class: %v", ErrInternal, err)
		}

		// 3.4. Запись на уже начавшийся класс не отменяется
		if class.HasStarted(now) {
			uc.logger.Warn("CancelBooking: class id=%d already started at %s", class.ID, class.StartTime)
			return ErrClassStarted
		}

		// 3.5. Удаляем бронирование
		deleted, err := uc.bookingRepo.Delete(txCtx, booking.ID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("CancelBooking: failed to delete booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to delete booking: %v", ErrInternal, err)
		}

		// 3.6. Декрементируем booked_count с защитным отсечением на нуле
		// При корректной работе underflow невозможен, но хранимое значение
		// денормализовано - отрицательный счетчик недопустим в любом случае
		newCount := class.BookedCountAfterCancel()
		if err := uc.classRepo.UpdateBookedCount(txCtx, class.ID, newCount); err != nil {
			uc.logger.Error("CancelBooking: failed to update booked count for class id=%d: %v", class.ID, err)
			return fmt.Errorf("%w: failed to update booked count: %v", ErrInternal, err)
		}

		class.BookedCount = newCount
		deletedBooking = deleted
		affectedClass = class
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CancelBooking: successfully cancelled booking id=%d, class=%d now %d/%d",
		deletedBooking.ID, affectedClass.ID, affectedClass.BookedCount, affectedClass.Capacity)

	return &Response{
		BookingID: deletedBooking.ID,
		ClassID:   deletedBooking.ClassID,
		UserID:    deletedBooking.UserID,
		BookedAt:  deletedBooking.BookedAt,
		ClassName: affectedClass.Name,
		StartTime: affectedClass.StartTime,
		SpotsLeft: affectedClass.SpotsLeft(),
		Capacity:  affectedClass.Capacity,
	}, nil
}
