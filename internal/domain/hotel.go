package domain

// Hotel represents a hotel; TotalRooms is the occupancy denominator
type Hotel struct {
	ID         int64
	Name       string
	TotalRooms int
}
