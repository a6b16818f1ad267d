package cancel_booking

import "time"

// Request модель запроса на отмену бронирования
type Request struct {
	BookingID int64 // ID бронирования
	UserID    int64 // ID пользователя (из заголовка X-User-ID)
}

// Response модель ответа с данными отмененного бронирования
type Response struct {
	BookingID int64     // ID удаленного бронирования
	ClassID   int64     // ID класса
	UserID    int64     // ID пользователя
	BookedAt  time.Time // Когда была сделана запись

	// Денормализованные данные класса для ответа клиенту
	ClassName string    // Название класса
	StartTime time.Time // Время начала класса
	SpotsLeft int       // Свободных мест после отмены
	Capacity  int       // Вместимость класса
}
