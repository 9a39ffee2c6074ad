package domain

import "time"

// ReservationStatus represents the lifecycle status of a reservation
type ReservationStatus int

const (
	ReservationBooked     ReservationStatus = 1
	ReservationConfirmed  ReservationStatus = 2
	ReservationCheckedIn  ReservationStatus = 3
	ReservationCheckedOut ReservationStatus = 4
	ReservationCancelled  ReservationStatus = 5
)

// String returns a human readable status name
func (s ReservationStatus) String() string {
	switch s {
	case ReservationBooked:
		return "booked"
	case ReservationConfirmed:
		return "confirmed"
	case ReservationCheckedIn:
		return "checked_in"
	case ReservationCheckedOut:
		return "checked_out"
	case ReservationCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Reservation represents a room reservation.
// CheckOut is always strictly after CheckIn.
type Reservation struct {
	ID             int64
	RoomID         int64
	HotelID        int64
	UserID         string
	CheckIn        time.Time
	CheckOut       time.Time
	NumberOfGuests int
	TotalAmount    float64
	Status         ReservationStatus
}

// IsCancelled returns true if the reservation has been cancelled
func (r *Reservation) IsCancelled() bool {
	return r.Status == ReservationCancelled
}

// IsOccupying returns true if the reservation holds its room for the stay dates
func (r *Reservation) IsOccupying() bool {
	for _, s := range OccupyingStatuses {
		if r.Status == s {
			return true
		}
	}
	return false
}

// Window returns the calendar-day stay window of the reservation
func (r *Reservation) Window() StayWindow {
	return NewStayWindow(r.CheckIn, r.CheckOut)
}

// Blocks returns true if the reservation makes roomID unavailable for the window.
// Cancelled reservations never block.
func (r *Reservation) Blocks(roomID int64, window StayWindow) bool {
	if r.RoomID != roomID || r.IsCancelled() {
		return false
	}
	return r.Window().Overlaps(window)
}

// OccupiesOn returns true if the reservation occupies its room on the given day
func (r *Reservation) OccupiesOn(day time.Time) bool {
	if !r.IsOccupying() {
		return false
	}
	return r.Window().Contains(day)
}
