package list_instructors

import (
	"net/http"

	"github.com/m04kA/FitStudio-BookingService/internal/api/handlers"
	"github.com/m04kA/FitStudio-BookingService/internal/service/instructors/models"
)

type Handler struct {
	service InstructorService
	logger  Logger
}

func NewHandler(service InstructorService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/instructors
// Query params: search, specialty
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	serviceReq := &models.ListInstructorsRequest{
		Search: query.Get("search"),
	}
	if specialty := query.Get("specialty"); specialty != "" {
		serviceReq.Specialty = &specialty
	}

	// Получаем список инструкторов
	result, err := h.service.List(r.Context(), serviceReq)
	if err != nil {
		h.logger.Error("GET /instructors - Failed to list instructors: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /instructors - Instructors retrieved successfully: count=%d", len(result.Instructors))
	handlers.RespondJSON(w, http.StatusOK, result)
}
