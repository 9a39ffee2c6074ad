package domain

import (
	"fmt"
	"time"
)

// StayWindow is a half-open [CheckIn, CheckOut) interval of calendar days.
// Both bounds are UTC midnights.
type StayWindow struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// NewStayWindow builds a window from raw instants, keeping only their UTC calendar dates
func NewStayWindow(checkIn, checkOut time.Time) StayWindow {
	return StayWindow{
		CheckIn:  StayDay(checkIn),
		CheckOut: StayDay(checkOut),
	}
}

// IsValid returns true if check-out falls on a later calendar day than check-in
func (w StayWindow) IsValid() bool {
	return w.CheckOut.After(w.CheckIn)
}

// Nights returns the number of nights in the window
func (w StayWindow) Nights() int {
	if !w.IsValid() {
		return 0
	}
	return int(w.CheckOut.Sub(w.CheckIn).Hours() / 24)
}

// Overlaps returns true if the two windows share at least one night.
// Adjacent windows (one ends on the day the other starts) do not overlap.
func (w StayWindow) Overlaps(other StayWindow) bool {
	return Overlaps(w, other)
}

// Contains returns true if day falls within [CheckIn, CheckOut)
func (w StayWindow) Contains(day time.Time) bool {
	d := StayDay(day)
	return !d.Before(w.CheckIn) && d.Before(w.CheckOut)
}

// Overlaps проверяет пересечение двух полуоткрытых интервалов [checkIn, checkOut)
// с точностью до календарного дня (UTC)
func Overlaps(a, b StayWindow) bool {
	aIn, aOut := StayDay(a.CheckIn), StayDay(a.CheckOut)
	bIn, bOut := StayDay(b.CheckIn), StayDay(b.CheckOut)
	return aIn.Before(bOut) && bIn.Before(aOut)
}

// StayDay returns UTC midnight of t's UTC calendar date
func StayDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// CanonicalCheckIn returns the canonical check-in instant (14:00 UTC) of t's calendar date
func CanonicalCheckIn(t time.Time) time.Time {
	return StayDay(t).Add(CheckInHour * time.Hour)
}

// CanonicalCheckOut returns the canonical check-out instant (11:00 UTC) of t's calendar date
func CanonicalCheckOut(t time.Time) time.Time {
	return StayDay(t).Add(CheckOutHour * time.Hour)
}

// ToAPIInstant форматирует дату в ISO-8601 инстант для внешнего API.
// Время суток во входном значении отбрасывается, используется канонический час
// заезда (14:00 UTC) или выезда (11:00 UTC).
func ToAPIInstant(raw time.Time, isCheckIn bool) string {
	if isCheckIn {
		return CanonicalCheckIn(raw).Format(time.RFC3339)
	}
	return CanonicalCheckOut(raw).Format(time.RFC3339)
}

// ParseStayDate parses a date-only (YYYY-MM-DD) or RFC3339 date-time value
func ParseStayDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateFormat, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid stay date %q: expected YYYY-MM-DD or RFC3339", s)
	}
	return t, nil
}
