package models

import (
	"time"

	"github.com/m04kA/FitStudio-BookingService/internal/domain"
)

// Request модели

// ListInstructorsRequest запрос списка инструкторов
type ListInstructorsRequest struct {
	Search    string  `json:"search,omitempty"`    // Подстрока в имени или биографии
	Specialty *string `json:"specialty,omitempty"` // Точный фильтр по специализации (опционально)
}

// Response модели

// InstructorResponse ответ с данными инструктора
type InstructorResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Specialties []string  `json:"specialties"`
	Bio         string    `json:"bio"`
	PhotoURL    string    `json:"photoUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// InstructorListResponse ответ со списком инструкторов
type InstructorListResponse struct {
	Instructors []InstructorResponse `json:"instructors"`
}

// Методы конвертации

// FromDomainInstructor конвертирует domain модель в DTO
func FromDomainInstructor(i *domain.Instructor) *InstructorResponse {
	if i == nil {
		return nil
	}

	specialties := i.Specialties
	if specialties == nil {
		specialties = []string{}
	}

	return &InstructorResponse{
		ID:          i.ID,
		Name:        i.Name,
		Specialties: specialties,
		Bio:         i.Bio,
		PhotoURL:    i.PhotoURL,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

// FromDomainInstructorList конвертирует список domain моделей в DTO
func FromDomainInstructorList(instructors []*domain.Instructor) *InstructorListResponse {
	if instructors == nil {
		return &InstructorListResponse{
			Instructors: []InstructorResponse{},
		}
	}

	resp := &InstructorListResponse{
		Instructors: make([]InstructorResponse, len(instructors)),
	}

	for i, instructor := range instructors {
		if instructorResp := FromDomainInstructor(instructor); instructorResp != nil {
			resp.Instructors[i] = *instructorResp
		}
	}

	return resp
}
