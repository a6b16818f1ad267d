package book_class

import "time"

// Request модель запроса на запись в класс
type Request struct {
	UserID  int64 // ID пользователя (из заголовка X-User-ID)
	ClassID int64 // ID класса
}

// Response модель ответа с созданным бронированием
type Response struct {
	BookingID int64     // ID созданного бронирования
	ClassID   int64     // ID класса
	UserID    int64     // ID пользователя
	Status    string    // Статус бронирования
	Position  int       // Порядковый номер записи в классе
	BookedAt  time.Time // Время записи

	// Денормализованные данные класса для ответа клиенту
	ClassName  string    // Название класса
	StartTime  time.Time // Время начала класса
	SpotsLeft  int       // Осталось свободных мест после записи
	Capacity   int       // Вместимость класса
	Instructor string    // Имя инструктора
}
