package book_class

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/FitStudio-BookingService/internal/domain"
	classRepo "github.com/m04kA/FitStudio-BookingService/internal/infra/storage/class"
)

// UseCase use case для записи пользователя в класс
type UseCase struct {
	classRepo    ClassRepository
	bookingRepo  BookingRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	classRepo ClassRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		classRepo:    classRepo,
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case записи в класс
// Создание бронирования и инкремент booked_count выполняются в одной
// сериализуемой транзакции: проверка вместимости делается по состоянию
// строки класса под блокировкой, а не по снапшоту клиента. Два
// конкурентных запроса на последнее место не могут пройти проверку оба
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookClass: user=%d, class=%d", req.UserID, req.ClassID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookClass: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	var (
		createdBooking *domain.Booking
		bookedClass    *domain.ClassSession
	)

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем класс под блокировкой (FOR UPDATE внутри транзакции)
		class, err := uc.classRepo.GetByID(txCtx, req.ClassID)
		if err != nil {
			if errors.Is(err, classRepo.ErrClassNotFound) {
				uc.logger.Warn("BookClass: class id=%d not found", req.ClassID)
				return ErrClassNotFound
			}
			uc.logger.Error("BookClass: failed to get class id=%d: %v", req.ClassID, err)
			return fmt.Errorf("%w: failed to get class: %v", ErrInternal, err)
		}

		// 3.2. Запись на уже начавшийся класс запрещена
		if class.HasStarted(now) {
			uc.logger.Warn("BookClass: class id=%d already started at %s", class.ID, class.StartTime)
			return ErrClassStarted
		}

		// 3.3. Перепроверяем вместимость по свежему состоянию строки
		// Снапшот, который видел клиент, мог устареть между рендером и кликом
		if !class.CanBook() {
			uc.logger.Warn("BookClass: class id=%d is full, %d/%d spots taken",
				class.ID, class.BookedCount, class.Capacity)
			return ErrClassFull
		}

		// 3.4. Создаем бронирование
		// Position - значение booked_count после этой записи, только для отображения
		booking := &domain.Booking{
			ClassID:  class.ID,
			UserID:   req.UserID,
			Status:   domain.StatusConfirmed,
			Position: class.BookedCountAfterBook(),
			BookedAt: now,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("BookClass: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		// 3.5. Инкрементируем booked_count класса
		// Инвариант 0 <= booked_count <= capacity сохраняется: значение
		// вычислено под блокировкой после проверки CanBook
		newCount := class.BookedCountAfterBook()
		if err := uc.classRepo.UpdateBookedCount(txCtx, class.ID, newCount); err != nil {
			uc.logger.Error("BookClass: failed to update booked count for class id=%d: %v", class.ID, err)
			return fmt.Errorf("%w: failed to update booked count: %v", ErrInternal, err)
		}

		class.BookedCount = newCount
		createdBooking = created
		bookedClass = class
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("BookClass: successfully created booking id=%d, class=%d now %d/%d",
		createdBooking.ID, bookedClass.ID, bookedClass.BookedCount, bookedClass.Capacity)

	return &Response{
		BookingID:  createdBooking.ID,
		ClassID:    createdBooking.ClassID,
		UserID:     createdBooking.UserID,
		Status:     string(createdBooking.Status),
		Position:   createdBooking.Position,
		BookedAt:   createdBooking.BookedAt,
		ClassName:  bookedClass.Name,
		StartTime:  bookedClass.StartTime,
		SpotsLeft:  bookedClass.SpotsLeft(),
		Capacity:   bookedClass.Capacity,
		Instructor: bookedClass.Instructor,
	}, nil
}
