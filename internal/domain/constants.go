package domain

// Canonical hotel check-in/check-out hours (UTC)
const (
	CheckInHour  = 14
	CheckOutHour = 11
)

// Statistics constants
const (
	MonthlySeriesLength = 6
	MaxOccupancyRate    = 100
)

// Booking validation constants
const (
	MinNumberOfGuests = 1
	MaxNumberOfGuests = 20
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// OccupyingStatuses статусы бронирований, которые занимают номер в день проживания
var OccupyingStatuses = []ReservationStatus{
	ReservationBooked,
	ReservationConfirmed,
	ReservationCheckedIn,
}
