package create_reservation

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidWindow возвращается, когда дата выезда не позже даты заезда
	ErrInvalidWindow = errors.New("create_reservation: check-out must be after check-in")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrBookingRejected возвращается, когда внешний сервис отклонил бронирование
	ErrBookingRejected = errors.New("create_reservation: booking rejected")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)

// RejectionError отказ сервиса бронирования с сообщением и ошибками полей
type RejectionError struct {
	Message     string
	FieldErrors []string
}

func (e *RejectionError) Error() string {
	if len(e.FieldErrors) == 0 {
		return ErrBookingRejected.Error() + ": " + e.Message
	}
	return ErrBookingRejected.Error() + ": " + e.Message + " (" + strings.Join(e.FieldErrors, "; ") + ")"
}

func (e *RejectionError) Unwrap() error {
	return ErrBookingRejected
}
