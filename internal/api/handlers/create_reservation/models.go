package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-HotelOps/internal/domain"
	createReservation "github.com/m04kA/SMC-HotelOps/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	RoomID         int64   `json:"roomId"`
	HotelID        int64   `json:"hotelId"`
	CheckInDate    string  `json:"checkInDate"`  // "2025-06-10" или RFC3339
	CheckOutDate   string  `json:"checkOutDate"` // "2025-06-12" или RFC3339
	NumberOfGuests int     `json:"numberOfGuests"`
	GuestEmail     *string `json:"guestEmail,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID             int64   `json:"id"`
	RoomID         int64   `json:"roomId"`
	HotelID        int64   `json:"hotelId"`
	UserID         string  `json:"userId,omitempty"`
	CheckInDate    string  `json:"checkInDate"`
	CheckOutDate   string  `json:"checkOutDate"`
	NumberOfGuests int     `json:"numberOfGuests"`
	TotalAmount    float64 `json:"totalAmount"`
	Status         string  `json:"status"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом дат)
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	checkIn, err := domain.ParseStayDate(r.CheckInDate)
	if err != nil {
		return nil, err
	}

	checkOut, err := domain.ParseStayDate(r.CheckOutDate)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		RoomID:         r.RoomID,
		HotelID:        r.HotelID,
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		NumberOfGuests: r.NumberOfGuests,
		GuestEmail:     r.GuestEmail,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response.
// Если внешний сервис не вернул даты, подставляются канонические даты запроса
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	res := resp.Reservation

	checkIn := resp.Request.CheckInDate
	if !res.CheckIn.IsZero() {
		checkIn = res.CheckIn.UTC().Format(time.RFC3339)
	}
	checkOut := resp.Request.CheckOutDate
	if !res.CheckOut.IsZero() {
		checkOut = res.CheckOut.UTC().Format(time.RFC3339)
	}

	return &ReservationResponse{
		ID:             res.ID,
		RoomID:         res.RoomID,
		HotelID:        res.HotelID,
		UserID:         res.UserID,
		CheckInDate:    checkIn,
		CheckOutDate:   checkOut,
		NumberOfGuests: res.NumberOfGuests,
		TotalAmount:    res.TotalAmount,
		Status:         res.Status.String(),
	}
}
