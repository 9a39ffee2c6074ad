package find_available_rooms

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelOps/internal/api/handlers"
	findAvailableRooms "github.com/m04kA/SMC-HotelOps/internal/usecase/find_available_rooms"
)

const (
	msgInvalidHotelID = "некорректный ID отеля"
	msgMissingDates   = "даты заезда и выезда обязательны"
	msgInvalidParams  = "некорректные параметры, ожидаются даты YYYY-MM-DD и целое число гостей"
	msgInvalidWindow  = "дата выезда должна быть позже даты заезда"
	msgInvalidInput   = "некорректные параметры поиска"
)

type Handler struct {
	useCase FindAvailableRoomsUseCase
	logger  Logger
}

func NewHandler(useCase FindAvailableRoomsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/hotels/{hotelId}/available-rooms
// Query params: checkIn (required), checkOut (required), guests (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hotelID, err := strconv.ParseInt(mux.Vars(r)["hotelId"], 10, 64)
	if err != nil || hotelID <= 0 {
		h.logger.Warn("GET /hotels/{id}/available-rooms - Invalid hotel ID: %q", mux.Vars(r)["hotelId"])
		handlers.RespondBadRequest(w, msgInvalidHotelID)
		return
	}

	query := r.URL.Query()
	checkInStr, checkOutStr := query.Get("checkIn"), query.Get("checkOut")
	if checkInStr == "" || checkOutStr == "" {
		h.logger.Warn("GET /hotels/{id}/available-rooms - Missing dates: hotel_id=%d", hotelID)
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	useCaseReq, err := ToUseCaseRequest(hotelID, checkInStr, checkOutStr, query.Get("guests"))
	if err != nil {
		h.logger.Warn("GET /hotels/{id}/available-rooms - Invalid params: hotel_id=%d, error=%v", hotelID, err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, findAvailableRooms.ErrInvalidWindow):
			h.logger.Warn("GET /hotels/{id}/available-rooms - Invalid window: hotel_id=%d", hotelID)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		case errors.Is(err, findAvailableRooms.ErrInvalidInput):
			h.logger.Warn("GET /hotels/{id}/available-rooms - Invalid input: hotel_id=%d, error=%v", hotelID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /hotels/{id}/available-rooms - Failed to find rooms: hotel_id=%d, error=%v", hotelID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /hotels/{id}/available-rooms - Rooms found: hotel_id=%d, source=%s, rooms_count=%d",
		hotelID, result.Source, len(result.Rooms))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
