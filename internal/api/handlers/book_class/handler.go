package book_class

import (
	"errors"
	"net/http"

	"github.com/m04kA/FitStudio-BookingService/internal/api/handlers"
	"github.com/m04kA/FitStudio-BookingService/internal/api/middleware"
	bookClass "github.com/m04kA/FitStudio-BookingService/internal/usecase/book_class"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgClassNotFound      = "класс не найден"
	msgClassFull          = "в классе не осталось свободных мест"
	msgClassStarted       = "класс уже начался"
	msgInvalidInput       = "некорректные данные запроса"
)

type Handler struct {
	useCase BookClassUseCase
	logger  Logger
}

func NewHandler(useCase BookClassUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req BookClassRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, bookClass.ErrClassNotFound):
			h.logger.Warn("POST /bookings - Class not found: class_id=%d", req.ClassID)
			handlers.RespondNotFound(w, msgClassNotFound)

		case errors.Is(err, bookClass.ErrClassFull):
			h.logger.Warn("POST /bookings - Class is full: class_id=%d, user_id=%d", req.ClassID, userID)
			handlers.RespondError(w, http.StatusConflict, msgClassFull)

		case errors.Is(err, bookClass.ErrClassStarted):
			h.logger.Warn("POST /bookings - Class already started: class_id=%d, user_id=%d", req.ClassID, userID)
			handlers.RespondError(w, http.StatusConflict, msgClassStarted)

		case errors.Is(err, bookClass.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: class_id=%d, user_id=%d, error=%v", req.ClassID, userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to book class: class_id=%d, user_id=%d, error=%v",
				req.ClassID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, class_id=%d, user_id=%d",
		result.BookingID, result.ClassID, userID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
