package domain

// RoomStatus represents the operational status of a room
type RoomStatus int

const (
	RoomAvailable   RoomStatus = 1
	RoomOccupied    RoomStatus = 2
	RoomMaintenance RoomStatus = 3
)

// String returns a human readable status name
func (s RoomStatus) String() string {
	switch s {
	case RoomAvailable:
		return "available"
	case RoomOccupied:
		return "occupied"
	case RoomMaintenance:
		return "maintenance"
	default:
		return "unknown"
	}
}

// RoomType represents the category of a room
type RoomType int

const (
	RoomSingle RoomType = 1
	RoomDouble RoomType = 2
	RoomSuite  RoomType = 3
	RoomDeluxe RoomType = 4
)

// String returns a human readable room type
func (t RoomType) String() string {
	switch t {
	case RoomSingle:
		return "single"
	case RoomDouble:
		return "double"
	case RoomSuite:
		return "suite"
	case RoomDeluxe:
		return "deluxe"
	default:
		return "unknown"
	}
}

// Room represents a bookable room. A room belongs to exactly one hotel.
type Room struct {
	ID         int64
	HotelID    int64
	RoomNumber string
	Type       RoomType
	Status     RoomStatus
	Capacity   int
	BasePrice  float64
}

// IsAvailable returns true if the room is open for booking
func (r *Room) IsAvailable() bool {
	return r.Status == RoomAvailable
}

// Fits returns true if the room can host the given number of guests.
// A non-positive guest count means no capacity requirement.
func (r *Room) Fits(guests int) bool {
	return guests <= 0 || r.Capacity >= guests
}
