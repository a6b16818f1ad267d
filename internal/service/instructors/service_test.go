package instructors

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/FitStudio-BookingService/internal/domain"
	instructorRepo "github.com/m04kA/FitStudio-BookingService/internal/infra/storage/instructor"
	"github.com/m04kA/FitStudio-BookingService/internal/service/instructors/models"
	"github.com/m04kA/FitStudio-BookingService/pkg/ptr"
)

type MockInstructorRepo struct{ mock.Mock }

func (m *MockInstructorRepo) GetAll(ctx context.Context) ([]*domain.Instructor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Instructor), args.Error(1)
}

func (m *MockInstructorRepo) GetByID(ctx context.Context, id int64) (*domain.Instructor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Instructor), args.Error(1)
}

func (m *MockInstructorRepo) GetBySpecialty(ctx context.Context, specialty string) ([]*domain.Instructor, error) {
	args := m.Called(ctx, specialty)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Instructor), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func roster() []*domain.Instructor {
	return []*domain.Instructor{
		{ID: 1, Name: "Sarah Mitchell", Specialties: []string{"yoga", "pilates"},
			Bio: "Certified yoga instructor with 10 years of experience."},
		{ID: 2, Name: "Mike Torres", Specialties: []string{"hiit", "strength"},
			Bio: "Former competitive athlete."},
	}
}

func TestList_SearchByNameAndBio(t *testing.T) {
	repo := new(MockInstructorRepo)
	svc := NewService(repo, nopLogger{})
	repo.On("GetAll", mock.Anything).Return(roster(), nil)

	// Поиск без учета регистра по имени
	resp, err := svc.List(context.Background(), &models.ListInstructorsRequest{Search: "MIKE"})
	assert.NoError(t, err)
	assert.Len(t, resp.Instructors, 1)
	assert.Equal(t, "Mike Torres", resp.Instructors[0].Name)

	// Поиск по биографии
	resp, err = svc.List(context.Background(), &models.ListInstructorsRequest{Search: "certified"})
	assert.NoError(t, err)
	assert.Len(t, resp.Instructors, 1)
	assert.Equal(t, "Sarah Mitchell", resp.Instructors[0].Name)
}

func TestList_SpecialtyFilterUsesRepository(t *testing.T) {
	repo := new(MockInstructorRepo)
	svc := NewService(repo, nopLogger{})

	repo.On("GetBySpecialty", mock.Anything, "yoga").Return(roster()[:1], nil)

	resp, err := svc.List(context.Background(), &models.ListInstructorsRequest{Specialty: ptr.Ptr("yoga")})

	assert.NoError(t, err)
	assert.Len(t, resp.Instructors, 1)
	repo.AssertNotCalled(t, "GetAll", mock.Anything)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := new(MockInstructorRepo)
	svc := NewService(repo, nopLogger{})

	repo.On("GetByID", mock.Anything, int64(404)).Return(nil, instructorRepo.ErrInstructorNotFound)

	_, err := svc.GetByID(context.Background(), 404)

	assert.ErrorIs(t, err, ErrInstructorNotFound)
}
