package get_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/FitStudio-BookingService/internal/api/handlers"
	getSchedule "github.com/m04kA/FitStudio-BookingService/internal/usecase/get_schedule"
)

const (
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetScheduleUseCase
	logger  Logger
}

func NewHandler(useCase GetScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule
// Query params: view (week|day, по умолчанию week), date (YYYY-MM-DD, по умолчанию сегодня),
// types (типы через запятую, например "yoga,pilates")
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(query.Get("view"), query.Get("date"), query.Get("types"))
	if err != nil {
		h.logger.Warn("GET /schedule - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getSchedule.ErrInvalidInput):
			h.logger.Warn("GET /schedule - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /schedule - Failed to get schedule: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /schedule - Schedule retrieved successfully: view=%s, days=%d",
		useCaseReq.View, len(response.Days))
	handlers.RespondJSON(w, http.StatusOK, response)
}
