package find_available_rooms

import (
	"time"

	"github.com/m04kA/SMC-HotelOps/internal/domain"
)

// Source откуда получен результат поиска
type Source string

const (
	SourcePrimary  Source = "primary"  // Ответ авторитетного источника
	SourceFallback Source = "fallback" // Локальный пересчёт по номерам и бронированиям
	SourceNone     Source = "none"     // Доступность определить не удалось
)

// Request модель запроса на поиск свободных номеров
type Request struct {
	HotelID  int64     // ID отеля
	CheckIn  time.Time // Дата заезда (время суток игнорируется)
	CheckOut time.Time // Дата выезда (время суток игнорируется)
	Guests   int       // Подсказка по вместимости (0 - без ограничения)
}

// Response модель ответа со списком свободных номеров
type Response struct {
	HotelID  int64
	CheckIn  string // Канонический инстант заезда
	CheckOut string // Канонический инстант выезда
	Source   Source
	Rooms    []domain.Room
}
