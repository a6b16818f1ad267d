package classes

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/FitStudio-BookingService/internal/domain"
	classRepo "github.com/m04kA/FitStudio-BookingService/internal/infra/storage/class"
	"github.com/m04kA/FitStudio-BookingService/internal/service/classes/models"
)

// Service сервис каталога классов
type Service struct {
	classRepo ClassRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса классов
func NewService(classRepo ClassRepository, logger Logger) *Service {
	return &Service{
		classRepo: classRepo,
		logger:    logger,
	}
}

// List возвращает каталог классов с фильтрацией и сортировкой
// Поиск идет по подстроке в названии и имени инструктора без учета регистра,
// фильтры по типу и сложности - точные совпадения
func (s *Service) List(ctx context.Context, req *models.ListClassesRequest) (*models.ClassListResponse, error) {
	s.logger.Info("List: fetching classes, search=%q, type=%v, difficulty=%v, onlyAvailable=%v, sortBy=%q",
		req.Search, req.Type, req.Difficulty, req.OnlyAvailable, req.SortBy)

	if !models.ValidSortOption(req.SortBy) {
		s.logger.Warn("List: invalid sort option %q", req.SortBy)
		return nil, fmt.Errorf("%w: invalid sort option", ErrInvalidInput)
	}

	// Валидируем фильтр по сложности до похода в репозиторий
	var difficulty *domain.Difficulty
	if req.Difficulty != nil {
		d, err := models.ToDomainDifficulty(*req.Difficulty)
		if err != nil {
			s.logger.Warn("List: invalid difficulty=%s", *req.Difficulty)
			return nil, fmt.Errorf("%w: invalid difficulty", ErrInvalidInput)
		}
		difficulty = &d
	}

	// Фильтр по типу отдаем репозиторию, остальное применяем в памяти
	var classes []*domain.ClassSession
	var err error
	availableApplied := false

	switch {
	case req.Type != nil:
		classType, convErr := models.ToDomainClassType(*req.Type)
		if convErr != nil {
			s.logger.Warn("List: invalid type=%s", *req.Type)
			return nil, fmt.Errorf("%w: invalid class type", ErrInvalidInput)
		}
		classes, err = s.classRepo.GetByType(ctx, classType)
	case req.OnlyAvailable:
		classes, err = s.classRepo.GetAvailable(ctx)
		availableApplied = true
	default:
		classes, err = s.classRepo.GetAll(ctx)
	}
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	classes = filterBySearch(classes, req.Search)
	if difficulty != nil {
		classes = filterByDifficulty(classes, *difficulty)
	}
	if req.OnlyAvailable && !availableApplied {
		classes = filterAvailable(classes)
	}

	sortClasses(classes, req.SortBy)

	s.logger.Info("List: returning %d classes", len(classes))
	return models.FromDomainClassList(classes), nil
}

// GetByID получает класс по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ClassResponse, error) {
	s.logger.Info("GetByID: fetching class id=%d", id)

	class, err := s.classRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, classRepo.ErrClassNotFound) {
			s.logger.Warn("GetByID: class id=%d not found", id)
			return nil, ErrClassNotFound
		}
		s.logger.Error("GetByID: repository error for class id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched class id=%d", id)
	return models.FromDomainClass(class), nil
}

// GetByInstructor возвращает классы, которые ведет инструктор
func (s *Service) GetByInstructor(ctx context.Context, instructor string) (*models.ClassListResponse, error) {
	s.logger.Info("GetByInstructor: fetching classes for instructor=%q", instructor)

	if instructor == "" {
		return nil, fmt.Errorf("%w: instructor name is required", ErrInvalidInput)
	}

	classes, err := s.classRepo.GetByInstructor(ctx, instructor)
	if err != nil {
		s.logger.Error("GetByInstructor: repository error for instructor=%q: %v", instructor, err)
		return nil, fmt.Errorf("%w: GetByInstructor - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByInstructor: returning %d classes for instructor=%q", len(classes), instructor)
	return models.FromDomainClassList(classes), nil
}
