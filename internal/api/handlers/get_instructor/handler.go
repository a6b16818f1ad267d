package get_instructor

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/FitStudio-BookingService/internal/api/handlers"
	"github.com/m04kA/FitStudio-BookingService/internal/service/instructors"
)

const (
	msgInvalidInstructorID = "некорректный ID инструктора"
	msgNotFound            = "инструктор не найден"
)

type Handler struct {
	instructorService InstructorService
	classService      ClassService
	logger            Logger
}

func NewHandler(instructorService InstructorService, classService ClassService, logger Logger) *Handler {
	return &Handler{
		instructorService: instructorService,
		classService:      classService,
		logger:            logger,
	}
}

// Handle GET /api/v1/instructors/{instructorId}
// Возвращает профиль инструктора вместе с классами, которые он ведет
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем instructorId из URL
	vars := mux.Vars(r)
	instructorIDStr := vars["instructorId"]

	instructorID, err := strconv.ParseInt(instructorIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /instructors/{id} - Invalid instructor ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInstructorID)
		return
	}

	// Получаем профиль инструктора
	instructor, err := h.instructorService.GetByID(r.Context(), instructorID)
	if err != nil {
		switch {
		case errors.Is(err, instructors.ErrInstructorNotFound):
			h.logger.Warn("GET /instructors/{id} - Instructor not found: instructor_id=%d", instructorID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /instructors/{id} - Failed to get instructor: instructor_id=%d, error=%v",
				instructorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Дополняем профиль классами инструктора
	classList, err := h.classService.GetByInstructor(r.Context(), instructor.Name)
	if err != nil {
		h.logger.Error("GET /instructors/{id} - Failed to get instructor classes: instructor_id=%d, error=%v",
			instructorID, err)
		handlers.RespondInternalError(w)
		return
	}

	response := &InstructorProfileResponse{
		InstructorResponse: *instructor,
		Classes:            classList.Classes,
	}

	h.logger.Info("GET /instructors/{id} - Instructor retrieved successfully: instructor_id=%d, classes=%d",
		instructorID, len(response.Classes))
	handlers.RespondJSON(w, http.StatusOK, response)
}
