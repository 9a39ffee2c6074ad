package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-HotelOps/internal/domain"
	hotelClient "github.com/m04kA/SMC-HotelOps/internal/integrations/hotelapi"
)

// UseCase use case создания бронирования через внешний сервис.
// Пересечения не перепроверяются: это ответственность принимающей стороны,
// здесь гарантируются только канонические даты
type UseCase struct {
	acceptor BookingAcceptor
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(acceptor BookingAcceptor, logger Logger) *UseCase {
	return &UseCase{
		acceptor: acceptor,
		logger:   logger,
	}
}

// BuildBookingRequest формирует запрос на бронирование с каноническими датами
// заезда (14:00 UTC) и выезда (11:00 UTC)
func BuildBookingRequest(
	roomID, hotelID int64,
	rawCheckIn, rawCheckOut time.Time,
	guestCount int,
	guestEmail *string,
) (*domain.BookingRequest, error) {
	req := &Request{
		RoomID:         roomID,
		HotelID:        hotelID,
		CheckIn:        rawCheckIn,
		CheckOut:       rawCheckOut,
		NumberOfGuests: guestCount,
		GuestEmail:     normalizeEmail(guestEmail),
	}

	if err := validateRequest(req); err != nil {
		return nil, err
	}

	return &domain.BookingRequest{
		RoomID:         req.RoomID,
		HotelID:        req.HotelID,
		CheckInDate:    domain.ToAPIInstant(req.CheckIn, true),
		CheckOutDate:   domain.ToAPIInstant(req.CheckOut, false),
		NumberOfGuests: req.NumberOfGuests,
		GuestEmail:     req.GuestEmail,
	}, nil
}

// Execute формирует запрос и отправляет его во внешний сервис бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: room=%d, hotel=%d, check-in=%s, check-out=%s, nights=%d, guests=%d",
		req.RoomID, req.HotelID, req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat),
		domain.NewStayWindow(req.CheckIn, req.CheckOut).Nights(), req.NumberOfGuests)

	// 1. Формирование и валидация запроса
	booking, err := BuildBookingRequest(req.RoomID, req.HotelID, req.CheckIn, req.CheckOut, req.NumberOfGuests, req.GuestEmail)
	if err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Отправка во внешний сервис
	reservation, err := uc.acceptor.CreateReservation(ctx, booking)
	if err != nil {
		var rejection *hotelClient.RejectionError
		if errors.As(err, &rejection) {
			uc.logger.Warn("CreateReservation: booking rejected for room=%d: %s", req.RoomID, rejection.Message)
			return nil, &RejectionError{Message: rejection.Message, FieldErrors: rejection.Errors}
		}
		uc.logger.Error("CreateReservation: failed to create reservation for room=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d, status=%s",
		reservation.ID, reservation.Status)

	return &Response{
		Reservation: reservation,
		Request:     booking,
	}, nil
}

// normalizeEmail пустую строку трактует как отсутствие e-mail
func normalizeEmail(email *string) *string {
	if email == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*email)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
