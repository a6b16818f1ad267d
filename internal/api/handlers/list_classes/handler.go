package list_classes

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/FitStudio-BookingService/internal/api/handlers"
	"github.com/m04kA/FitStudio-BookingService/internal/service/classes"
	"github.com/m04kA/FitStudio-BookingService/internal/service/classes/models"
)

const (
	msgInvalidFilters = "некорректные параметры фильтрации"
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

// Handle GET /api/v1/classes
// Query params: search, type, difficulty, onlyAvailable (true|false), sortBy (name|duration|difficulty)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	serviceReq := &models.ListClassesRequest{
		Search: query.Get("search"),
		SortBy: query.Get("sortBy"),
	}

	if classType := query.Get("type"); classType != "" {
		serviceReq.Type = &classType
	}
	if difficulty := query.Get("difficulty"); difficulty != "" {
		serviceReq.Difficulty = &difficulty
	}
	if onlyAvailable := query.Get("onlyAvailable"); onlyAvailable != "" {
		parsed, err := strconv.ParseBool(onlyAvailable)
		if err != nil {
			h.logger.Warn("GET /classes - Invalid onlyAvailable value: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilters)
			return
		}
		serviceReq.OnlyAvailable = parsed
	}

	// Получаем каталог классов
	result, err := h.service.List(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, classes.ErrInvalidInput):
			h.logger.Warn("GET /classes - Invalid filters: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilters)

		default:
			h.logger.Error("GET /classes - Failed to list classes: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /classes - Classes retrieved successfully: count=%d", len(result.Classes))
	handlers.RespondJSON(w, http.StatusOK, result)
}
