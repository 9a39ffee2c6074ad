package find_available_rooms

import (
	"strconv"

	"github.com/m04kA/SMC-HotelOps/internal/domain"
	findAvailableRooms "github.com/m04kA/SMC-HotelOps/internal/usecase/find_available_rooms"
)

// RoomResponse HTTP модель номера
type RoomResponse struct {
	ID         int64   `json:"id"`
	HotelID    int64   `json:"hotelId"`
	RoomNumber string  `json:"roomNumber"`
	Type       string  `json:"type"`
	Status     string  `json:"status"`
	Capacity   int     `json:"capacity"`
	BasePrice  float64 `json:"basePrice"`
}

// AvailableRoomsResponse HTTP response model
type AvailableRoomsResponse struct {
	HotelID  int64          `json:"hotelId"`
	CheckIn  string         `json:"checkIn"`
	CheckOut string         `json:"checkOut"`
	Source   string         `json:"source"`
	Rooms    []RoomResponse `json:"rooms"`
}

// ToUseCaseRequest конвертирует параметры запроса в модель use case
func ToUseCaseRequest(hotelID int64, checkInStr, checkOutStr, guestsStr string) (*findAvailableRooms.Request, error) {
	checkIn, err := domain.ParseStayDate(checkInStr)
	if err != nil {
		return nil, err
	}

	checkOut, err := domain.ParseStayDate(checkOutStr)
	if err != nil {
		return nil, err
	}

	guests := 0
	if guestsStr != "" {
		guests, err = strconv.Atoi(guestsStr)
		if err != nil {
			return nil, err
		}
	}

	return &findAvailableRooms.Request{
		HotelID:  hotelID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Guests:   guests,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *findAvailableRooms.Response) *AvailableRoomsResponse {
	rooms := make([]RoomResponse, 0, len(resp.Rooms))
	for _, room := range resp.Rooms {
		rooms = append(rooms, RoomResponse{
			ID:         room.ID,
			HotelID:    room.HotelID,
			RoomNumber: room.RoomNumber,
			Type:       room.Type.String(),
			Status:     room.Status.String(),
			Capacity:   room.Capacity,
			BasePrice:  room.BasePrice,
		})
	}

	return &AvailableRoomsResponse{
		HotelID:  resp.HotelID,
		CheckIn:  resp.CheckIn,
		CheckOut: resp.CheckOut,
		Source:   string(resp.Source),
		Rooms:    rooms,
	}
}
