package cancel_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("cancel_booking: booking not found")

	// ErrClassNotFound возвращается, когда класс бронирования не найден
	ErrClassNotFound = errors.New("cancel_booking: class not found")

	// ErrClassStarted возвращается при попытке отменить запись на уже прошедший класс
	ErrClassStarted = errors.New("cancel_booking: class has already started")

	// ErrAccessDenied возвращается при попытке отменить чужое бронирование
	ErrAccessDenied = errors.New("cancel_booking: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_booking: internal error")
)
