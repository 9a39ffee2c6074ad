package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestToAPIInstant(t *testing.T) {
	tests := []struct {
		name      string
		raw       time.Time
		isCheckIn bool
		want      string
	}{
		{"date only check-in", day(2025, 6, 3), true, "2025-06-03T14:00:00Z"},
		{"date only check-out", day(2025, 6, 6), false, "2025-06-06T11:00:00Z"},
		{"time of day discarded", time.Date(2025, 6, 3, 23, 45, 0, 0, time.UTC), true, "2025-06-03T14:00:00Z"},
		{"non-utc input uses utc date", time.Date(2025, 6, 4, 1, 0, 0, 0, time.FixedZone("UTC+3", 3*3600)), false, "2025-06-03T11:00:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToAPIInstant(tt.raw, tt.isCheckIn))
		})
	}
}

func TestOverlaps(t *testing.T) {
	booked := NewStayWindow(day(2025, 6, 1), day(2025, 6, 5))

	tests := []struct {
		name   string
		window StayWindow
		want   bool
	}{
		{"inside", NewStayWindow(day(2025, 6, 2), day(2025, 6, 3)), true},
		{"tail overlap", NewStayWindow(day(2025, 6, 3), day(2025, 6, 6)), true},
		{"head overlap", NewStayWindow(day(2025, 5, 30), day(2025, 6, 2)), true},
		{"covers", NewStayWindow(day(2025, 5, 1), day(2025, 7, 1)), true},
		{"adjacent after", NewStayWindow(day(2025, 6, 5), day(2025, 6, 7)), false},
		{"adjacent before", NewStayWindow(day(2025, 5, 28), day(2025, 6, 1)), false},
		{"disjoint", NewStayWindow(day(2025, 6, 6), day(2025, 6, 9)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(booked, tt.window))
			assert.Equal(t, tt.want, Overlaps(tt.window, booked), "predicate must be symmetric")
		})
	}
}

func TestOverlaps_CanonicalHoursDoNotCollide(t *testing.T) {
	// Выезд в 11:00 и заезд в 14:00 в один день не пересекаются
	first := NewStayWindow(CanonicalCheckIn(day(2025, 6, 1)), CanonicalCheckOut(day(2025, 6, 5)))
	second := NewStayWindow(CanonicalCheckIn(day(2025, 6, 5)), CanonicalCheckOut(day(2025, 6, 8)))

	assert.False(t, first.Overlaps(second))
}

func TestReservation_Blocks(t *testing.T) {
	window := NewStayWindow(day(2025, 6, 3), day(2025, 6, 6))
	r := Reservation{RoomID: 3, CheckIn: day(2025, 6, 1), CheckOut: day(2025, 6, 5), Status: ReservationConfirmed}

	assert.True(t, r.Blocks(3, window))
	assert.False(t, r.Blocks(4, window), "other room")

	r.Status = ReservationCancelled
	assert.False(t, r.Blocks(3, window), "cancelled reservation never blocks")
}

func TestReservation_OccupiesOn(t *testing.T) {
	today := time.Date(2025, 6, 10, 9, 30, 0, 0, time.UTC)

	current := Reservation{CheckIn: day(2025, 6, 8), CheckOut: day(2025, 6, 15), Status: ReservationBooked}
	leavingToday := Reservation{CheckIn: day(2025, 6, 1), CheckOut: day(2025, 6, 10), Status: ReservationBooked}
	arrivingToday := Reservation{CheckIn: day(2025, 6, 10), CheckOut: day(2025, 6, 11), Status: ReservationCheckedIn}
	checkedOut := Reservation{CheckIn: day(2025, 6, 8), CheckOut: day(2025, 6, 15), Status: ReservationCheckedOut}

	assert.True(t, current.OccupiesOn(today))
	assert.False(t, leavingToday.OccupiesOn(today))
	assert.True(t, arrivingToday.OccupiesOn(today))
	assert.False(t, checkedOut.OccupiesOn(today))
}

func TestStayWindow_IsValid(t *testing.T) {
	assert.True(t, NewStayWindow(day(2025, 6, 1), day(2025, 6, 2)).IsValid())
	assert.False(t, NewStayWindow(day(2025, 6, 1), day(2025, 6, 1)).IsValid())
	assert.False(t, NewStayWindow(day(2025, 6, 2), day(2025, 6, 1)).IsValid())
	// Разное время в один календарный день - окно пустое
	assert.False(t, NewStayWindow(CanonicalCheckOut(day(2025, 6, 1)), CanonicalCheckIn(day(2025, 6, 1))).IsValid())

	assert.Equal(t, 3, NewStayWindow(day(2025, 6, 1), day(2025, 6, 4)).Nights())
}

func TestParseStayDate(t *testing.T) {
	d, err := ParseStayDate("2025-06-03")
	require.NoError(t, err)
	assert.Equal(t, day(2025, 6, 3), d)

	d, err = ParseStayDate("2025-06-03T14:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, CanonicalCheckIn(day(2025, 6, 3)), d)

	_, err = ParseStayDate("03.06.2025")
	assert.Error(t, err)
}

func TestActor_IsHotelManagerOnly(t *testing.T) {
	manager := Actor{Roles: []Role{RoleHotelManager}}
	mixed := Actor{Roles: []Role{RoleHotelManager, RoleAdmin}}
	none := Actor{}

	assert.True(t, manager.IsHotelManagerOnly())
	assert.False(t, mixed.IsHotelManagerOnly())
	assert.False(t, none.IsHotelManagerOnly())
	assert.True(t, mixed.HasRole(RoleAdmin))
}

func TestActor_CanViewStatistics(t *testing.T) {
	tests := []struct {
		name  string
		roles []Role
		want  bool
	}{
		{name: "admin", roles: []Role{RoleAdmin}, want: true},
		{name: "hotel manager", roles: []Role{RoleHotelManager}, want: true},
		{name: "guest and manager", roles: []Role{RoleGuest, RoleHotelManager}, want: true},
		{name: "receptionist", roles: []Role{RoleReceptionist}, want: false},
		{name: "guest", roles: []Role{RoleGuest}, want: false},
		{name: "no roles", roles: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actor := Actor{UserID: "u", Roles: tt.roles}
			assert.Equal(t, tt.want, actor.CanViewStatistics())
		})
	}
}
