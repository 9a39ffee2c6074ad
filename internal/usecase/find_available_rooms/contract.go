package find_available_rooms

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelOps/internal/domain"
)

// AvailabilitySource авторитетный источник свободных номеров
type AvailabilitySource interface {
	GetAvailableRooms(ctx context.Context, hotelID int64, checkIn, checkOut string) ([]domain.Room, error)
}

// CatalogSource источник сырых данных для локального пересчёта доступности
type CatalogSource interface {
	GetRoomsByHotel(ctx context.Context, hotelID int64) ([]domain.Room, error)
	GetReservations(ctx context.Context) ([]domain.Reservation, error)
}

// MetricsRecorder учёт исходов поиска
type MetricsRecorder interface {
	RecordAvailabilityLookup(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// nopRecorder используется, когда метрики выключены
type nopRecorder struct{}

func (nopRecorder) RecordAvailabilityLookup(string) {}

// DefaultLookupTimeout ограничение ожидания одного запроса к источнику
const DefaultLookupTimeout = 15 * time.Second
