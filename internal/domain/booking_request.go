package domain

// BookingRequest is the payload sent to the booking-acceptance endpoint.
// Dates are canonical API instants produced by ToAPIInstant.
type BookingRequest struct {
	RoomID         int64   `json:"roomId"`
	HotelID        int64   `json:"hotelId"`
	CheckInDate    string  `json:"checkInDate"`
	CheckOutDate   string  `json:"checkOutDate"`
	NumberOfGuests int     `json:"numberOfGuests"`
	GuestEmail     *string `json:"guestEmail"`
}
