package compute_statistics

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelOps/internal/domain"
)

// DataSource источник наборов данных для отчёта
type DataSource interface {
	GetHotels(ctx context.Context) ([]domain.Hotel, error)
	GetReservations(ctx context.Context) ([]domain.Reservation, error)
	GetBills(ctx context.Context) ([]domain.Bill, error)
}

// UserCounter источник общего числа пользователей
type UserCounter interface {
	CountUsers(ctx context.Context, role string) (int, error)
}

// FetchErrorRecorder учёт ошибок загрузки наборов данных
type FetchErrorRecorder interface {
	RecordFetchError(dataset string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

type nopRecorder struct{}

func (nopRecorder) RecordFetchError(string) {}
