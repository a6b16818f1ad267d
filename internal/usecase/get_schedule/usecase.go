package get_schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/FitStudio-BookingService/internal/domain"
)

// UseCase use case для получения расписания классов
type UseCase struct {
	classRepo    ClassRepository
	timeProvider TimeProvider
	location     *time.Location
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// location - таймзона студии, в ней считаются календарные дни расписания
func NewUseCase(classRepo ClassRepository, location *time.Location, logger Logger) *UseCase {
	if location == nil {
		location = time.Local
	}
	return &UseCase{
		classRepo:    classRepo,
		timeProvider: &RealTimeProvider{},
		location:     location,
		logger:       logger,
	}
}

// Execute выполняет use case получения расписания
// В недельном режиме возвращается окно из 7 дней начиная с понедельника
// недели якорной даты, в дневном - один календарный день
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetSchedule: validation failed: %v", err)
		return nil, err
	}

	// 2. Якорная дата по умолчанию - сегодня
	anchor := req.Anchor
	if anchor.IsZero() {
		anchor = uc.timeProvider.Now().In(uc.location)
	}

	// 3. Вычисляем границы окна [from, to)
	var from time.Time
	var days int
	switch req.View {
	case ViewDay:
		from = startOfLocalDay(anchor, uc.location)
		days = 1
	default:
		from = startOfWeek(anchor, uc.location)
		days = domain.DaysInWeek
	}
	to := from.AddDate(0, 0, days)

	uc.logger.Info("GetSchedule: view=%s, window=[%s, %s), types=%v",
		req.View, from.Format(domain.DateFormat), to.Format(domain.DateFormat), req.Types)

	// 4. Получаем классы окна из репозитория
	classes, err := uc.classRepo.GetByDateRange(ctx, from, to)
	if err != nil {
		uc.logger.Error("GetSchedule: failed to get classes: %v", err)
		return nil, fmt.Errorf("%w: failed to get classes: %v", ErrInternal, err)
	}

	// 5. Применяем фильтры по типам
	classes = filterByTypes(classes, req.Types)

	// 6. Раскладываем классы по календарным дням окна
	result := make([]DaySchedule, 0, days)
	for i := 0; i < days; i++ {
		day := from.AddDate(0, 0, i)
		dayClasses := classesForDay(classes, day, uc.location)
		sortByStartTime(dayClasses)
		result = append(result, DaySchedule{
			Date:    day,
			Classes: dayClasses,
		})
	}

	return &Response{
		From: from,
		To:   to,
		Days: result,
	}, nil
}
