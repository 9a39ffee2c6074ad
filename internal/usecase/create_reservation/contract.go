package create_reservation

import (
	"context"

	"github.com/m04kA/SMC-HotelOps/internal/domain"
)

// BookingAcceptor внешний сервис, принимающий запросы на бронирование
type BookingAcceptor interface {
	CreateReservation(ctx context.Context, booking *domain.BookingRequest) (*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
