package get_class_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/FitStudio-BookingService/internal/api/handlers"
	"github.com/m04kA/FitStudio-BookingService/internal/service/bookings"
)

const (
	msgInvalidClassID = "некорректный ID класса"
	msgClassNotFound  = "класс не найден"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/classes/{classId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем classId из URL
	vars := mux.Vars(r)
	classIDStr := vars["classId"]

	classID, err := strconv.ParseInt(classIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /classes/{id}/bookings - Invalid class ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClassID)
		return
	}

	// Получаем список бронирований класса
	result, err := h.service.GetClassBookings(r.Context(), classID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrClassNotFound):
			h.logger.Warn("GET /classes/{id}/bookings - Class not found: class_id=%d", classID)
			handlers.RespondNotFound(w, msgClassNotFound)

		default:
			h.logger.Error("GET /classes/{id}/bookings - Failed to get bookings: class_id=%d, error=%v",
				classID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /classes/{id}/bookings - Bookings retrieved successfully: class_id=%d, count=%d",
		classID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
