package hotelapi

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/m04kA/SMC-HotelOps/internal/domain"
)

// apiResponse конверт ответа API отелей
type apiResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  []string        `json:"errors"`
}

// pagedResult страница результатов
type pagedResult struct {
	TotalCount int `json:"totalCount"`
	PageNumber int `json:"pageNumber"`
	PageSize   int `json:"pageSize"`
}

// Room модель номера из API
type Room struct {
	ID         int64   `json:"id"`
	RoomNumber string  `json:"roomNumber"`
	Type       int     `json:"type"`
	BasePrice  float64 `json:"basePrice"`
	Capacity   int     `json:"capacity"`
	Status     int     `json:"status"`
	HotelID    int64   `json:"hotelId"`
}

// Reservation модель бронирования из API
type Reservation struct {
	ID             int64   `json:"id"`
	CheckInDate    apiTime `json:"checkInDate"`
	CheckOutDate   apiTime `json:"checkOutDate"`
	NumberOfGuests int     `json:"numberOfGuests"`
	TotalAmount    float64 `json:"totalAmount"`
	Status         int     `json:"status"`
	UserID         string  `json:"userId"`
	RoomID         int64   `json:"roomId"`
	HotelID        int64   `json:"hotelId"`
}

// Hotel модель отеля из API
type Hotel struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	TotalRooms int    `json:"totalRooms"`
}

// Bill модель счёта из API
type Bill struct {
	ID            int64    `json:"id"`
	TotalAmount   float64  `json:"totalAmount"`
	PaymentStatus int      `json:"paymentStatus"`
	PaidAt        *apiTime `json:"paidAt"`
	ReservationID int64    `json:"reservationId"`
}

// apiTime время из API: RFC3339, дата-время без зоны (считается UTC) или только дата
type apiTime struct {
	time.Time
}

var apiTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	domain.DateFormat,
}

func (t *apiTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}

	var lastErr error
	for _, layout := range apiTimeLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed.UTC()
			return nil
		}
		lastErr = err
	}
	return lastErr
}

// ToDomain конвертирует номер API в доменную модель
func (r Room) ToDomain() domain.Room {
	return domain.Room{
		ID:         r.ID,
		HotelID:    r.HotelID,
		RoomNumber: r.RoomNumber,
		Type:       domain.RoomType(r.Type),
		Status:     domain.RoomStatus(r.Status),
		Capacity:   r.Capacity,
		BasePrice:  r.BasePrice,
	}
}

// ToDomain конвертирует бронирование API в доменную модель
func (r Reservation) ToDomain() domain.Reservation {
	return domain.Reservation{
		ID:             r.ID,
		RoomID:         r.RoomID,
		HotelID:        r.HotelID,
		UserID:         r.UserID,
		CheckIn:        r.CheckInDate.Time,
		CheckOut:       r.CheckOutDate.Time,
		NumberOfGuests: r.NumberOfGuests,
		TotalAmount:    r.TotalAmount,
		Status:         domain.ReservationStatus(r.Status),
	}
}

// ToDomain конвертирует отель API в доменную модель
func (h Hotel) ToDomain() domain.Hotel {
	return domain.Hotel{
		ID:         h.ID,
		Name:       h.Name,
		TotalRooms: h.TotalRooms,
	}
}

// ToDomain конвертирует счёт API в доменную модель
func (b Bill) ToDomain() domain.Bill {
	bill := domain.Bill{
		ID:            b.ID,
		ReservationID: b.ReservationID,
		TotalAmount:   b.TotalAmount,
		PaymentStatus: domain.PaymentStatus(b.PaymentStatus),
	}
	if b.PaidAt != nil && !b.PaidAt.IsZero() {
		paidAt := b.PaidAt.Time
		bill.PaidAt = &paidAt
	}
	return bill
}
