package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelOps/internal/api/handlers"
	createReservation "github.com/m04kA/SMC-HotelOps/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidWindow      = "дата выезда должна быть позже даты заезда"
	msgInvalidInput       = "некорректные параметры бронирования"
	msgBookingRejected    = "бронирование отклонено"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var rejection *createReservation.RejectionError
		switch {
		case errors.As(err, &rejection):
			h.logger.Warn("POST /reservations - Booking rejected: room_id=%d, hotel_id=%d, reason=%s",
				req.RoomID, req.HotelID, rejection.Message)
			message := rejection.Message
			if message == "" {
				message = msgBookingRejected
			}
			handlers.RespondErrorDetails(w, http.StatusConflict, message, rejection.FieldErrors)

		case errors.Is(err, createReservation.ErrInvalidWindow):
			h.logger.Warn("POST /reservations - Invalid window: room_id=%d, hotel_id=%d", req.RoomID, req.HotelID)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: room_id=%d, hotel_id=%d, error=%v", req.RoomID, req.HotelID, err)
			handlers.RespondErrorDetails(w, http.StatusBadRequest, msgInvalidInput, []string{err.Error()})

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: room_id=%d, hotel_id=%d, error=%v",
				req.RoomID, req.HotelID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d, room_id=%d, hotel_id=%d",
		result.Reservation.ID, req.RoomID, req.HotelID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
