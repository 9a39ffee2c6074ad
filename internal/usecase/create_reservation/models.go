package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-HotelOps/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	RoomID         int64     `validate:"gt=0"`
	HotelID        int64     `validate:"gt=0"`
	CheckIn        time.Time `validate:"required"`
	CheckOut       time.Time `validate:"required"`
	NumberOfGuests int       `validate:"min=1,max=20"`
	GuestEmail     *string   `validate:"omitempty,email"` // Для персонала: бронирование на гостя
}

// Response модель ответа с созданным бронированием
type Response struct {
	Reservation *domain.Reservation
	Request     *domain.BookingRequest // Отправленный запрос с каноническими датами
}
