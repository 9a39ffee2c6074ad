package domain

// Role represents a user role
type Role string

const (
	RoleAdmin        Role = "Admin"
	RoleReceptionist Role = "Receptionist"
	RoleHotelManager Role = "HotelManager"
	RoleGuest        Role = "Guest"
)

// Actor is the requesting user's context, passed explicitly to use cases
type Actor struct {
	UserID  string
	Roles   []Role
	HotelID *int64 // Домашний отель менеджера (опционально)
}

// HasRole returns true if the actor holds the given role
func (a *Actor) HasRole(role Role) bool {
	for _, r := range a.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsHotelManagerOnly returns true if HotelManager is the actor's only role
func (a *Actor) IsHotelManagerOnly() bool {
	if len(a.Roles) == 0 {
		return false
	}
	for _, r := range a.Roles {
		if r != RoleHotelManager {
			return false
		}
	}
	return true
}

// CanViewStatistics returns true if the actor may open operational reports
func (a *Actor) CanViewStatistics() bool {
	return a.HasRole(RoleAdmin) || a.HasRole(RoleHotelManager)
}
