package instructors

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/FitStudio-BookingService/internal/domain"
	instructorRepo "github.com/m04kA/FitStudio-BookingService/internal/infra/storage/instructor"
	"github.com/m04kA/FitStudio-BookingService/internal/service/instructors/models"
)

// Service сервис профилей инструкторов
type Service struct {
	instructorRepo InstructorRepository
	logger         Logger
}

// NewService создает новый экземпляр сервиса инструкторов
func NewService(instructorRepo InstructorRepository, logger Logger) *Service {
	return &Service{
		instructorRepo: instructorRepo,
		logger:         logger,
	}
}

// List возвращает инструкторов с фильтрацией
// Поиск идет по подстроке в имени и биографии без учета регистра,
// фильтр по специализации - точное совпадение
func (s *Service) List(ctx context.Context, req *models.ListInstructorsRequest) (*models.InstructorListResponse, error) {
	s.logger.Info("List: fetching instructors, search=%q, specialty=%v", req.Search, req.Specialty)

	var instructors []*domain.Instructor
	var err error

	// Фильтр по специализации отдаем репозиторию, поиск применяем в памяти
	if req.Specialty != nil && *req.Specialty != "" {
		instructors, err = s.instructorRepo.GetBySpecialty(ctx, *req.Specialty)
	} else {
		instructors, err = s.instructorRepo.GetAll(ctx)
	}
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	instructors = filterBySearch(instructors, req.Search)

	s.logger.Info("List: returning %d instructors", len(instructors))
	return models.FromDomainInstructorList(instructors), nil
}

// GetByID получает инструктора по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.InstructorResponse, error) {
	s.logger.Info("GetByID: fetching instructor id=%d", id)

	instructor, err := s.instructorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, instructorRepo.ErrInstructorNotFound) {
			s.logger.Warn("GetByID: instructor id=%d not found", id)
			return nil, ErrInstructorNotFound
		}
		s.logger.Error("GetByID: repository error for instructor id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched instructor id=%d", id)
	return models.FromDomainInstructor(instructor), nil
}

// filterBySearch оставляет инструкторов, у которых имя или биография
// содержит искомую подстроку без учета регистра
func filterBySearch(instructors []*domain.Instructor, search string) []*domain.Instructor {
	query := strings.ToLower(strings.TrimSpace(search))
	if query == "" {
		return instructors
	}

	filtered := make([]*domain.Instructor, 0, len(instructors))
	for _, instructor := range instructors {
		if strings.Contains(strings.ToLower(instructor.Name), query) ||
			strings.Contains(strings.ToLower(instructor.Bio), query) {
			filtered = append(filtered, instructor)
		}
	}

	return filtered
}
