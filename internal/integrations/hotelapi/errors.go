package hotelapi

import (
	"errors"
	"strings"
)

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("hotelapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("hotelapi client: invalid response")

	// ErrNotFound возвращается, когда запрошенный ресурс не найден
	ErrNotFound = errors.New("hotelapi client: not found")

	// ErrRejected возвращается, когда сервис отклонил бронирование
	ErrRejected = errors.New("hotelapi client: booking rejected")
)

// RejectionError структурированный отказ сервиса бронирования
type RejectionError struct {
	Message string
	Errors  []string
}

func (e *RejectionError) Error() string {
	if len(e.Errors) == 0 {
		return ErrRejected.Error() + ": " + e.Message
	}
	return ErrRejected.Error() + ": " + e.Message + " (" + strings.Join(e.Errors, "; ") + ")"
}

// Unwrap позволяет проверять отказ через errors.Is(err, ErrRejected)
func (e *RejectionError) Unwrap() error {
	return ErrRejected
}
