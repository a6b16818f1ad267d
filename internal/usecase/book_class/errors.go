package book_class

import "errors"

var (
	// ErrClassNotFound возвращается, когда класс не найден
	ErrClassNotFound = errors.New("book_class: class not found")

	// ErrClassFull возвращается, когда в классе не осталось свободных мест
	ErrClassFull = errors.New("book_class: class is fully booked")

	// ErrClassStarted возвращается при попытке записаться на уже начавшийся класс
	ErrClassStarted = errors.New("book_class: class has already started")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_class: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_class: internal error")
)
