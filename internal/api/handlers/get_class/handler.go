package get_class

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/FitStudio-BookingService/internal/api/handlers"
	"github.com/m04kA/FitStudio-BookingService/internal/service/classes"
)

const (
	msgInvalidClassID = "некорректный ID класса"
	msgNotFound       = "класс не найден"
)

type Handler struct {
	service ClassService
	logger  Logger
}

func NewHandler(service ClassService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/classes/{classId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем classId из URL
	vars := mux.Vars(r)
	classIDStr := vars["classId"]

	classID, err := strconv.ParseInt(classIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /classes/{id} - Invalid class ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClassID)
		return
	}

	// Получаем класс
	class, err := h.service.GetByID(r.Context(), classID)
	if err != nil {
		switch {
		case errors.Is(err, classes.ErrClassNotFound):
			h.logger.Warn("GET /classes/{id} - Class not found: class_id=%d", classID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /classes/{id} - Failed to get class: class_id=%d, error=%v", classID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /classes/{id} - Class retrieved successfully: class_id=%d", classID)
	handlers.RespondJSON(w, http.StatusOK, class)
}
