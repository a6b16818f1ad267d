package classes

import "errors"

var (
	// ErrClassNotFound возвращается, когда класс не найден
	ErrClassNotFound = errors.New("class not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
