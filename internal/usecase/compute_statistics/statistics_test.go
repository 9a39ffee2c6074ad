package compute_statistics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-HotelOps/internal/domain"
)

var today = time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func stay(id, hotelID int64, user string, in, out time.Time, amount float64, status domain.ReservationStatus) domain.Reservation {
	return domain.Reservation{
		ID: id, RoomID: id, HotelID: hotelID, UserID: user,
		CheckIn: domain.CanonicalCheckIn(in), CheckOut: domain.CanonicalCheckOut(out),
		TotalAmount: amount, Status: status,
	}
}

func hotelID(id int64) *int64 {
	return &id
}

func admin() domain.Actor {
	return domain.Actor{UserID: "admin", Roles: []domain.Role{domain.RoleAdmin}}
}

func TestCompute_Snapshot(t *testing.T) {
	in := Input{
		Hotels: []domain.Hotel{{ID: 1, TotalRooms: 10}, {ID: 2, TotalRooms: 10}},
		Reservations: []domain.Reservation{
			stay(1, 1, "u1", date(2025, 6, 8), date(2025, 6, 15), 700, domain.ReservationBooked),
			stay(2, 1, "u2", date(2025, 6, 1), date(2025, 6, 10), 900, domain.ReservationBooked),
			stay(3, 2, "u3", date(2025, 6, 9), date(2025, 6, 11), 200, domain.ReservationCheckedIn),
			stay(4, 2, "u1", date(2025, 6, 9), date(2025, 6, 12), 300, domain.ReservationCancelled),
			stay(5, 2, "u4", date(2025, 6, 10), date(2025, 6, 12), 150, domain.ReservationConfirmed),
		},
		UserTotal: 57,
		Actor:     admin(),
	}

	stats := Compute(in, today)

	assert.Equal(t, 2, stats.Snapshot.TotalHotels)
	assert.InDelta(t, 1950.0, stats.Snapshot.TotalRevenue, 1e-9)
	assert.Equal(t, 1, stats.Snapshot.ActiveReservations)
	// Заняты: 1 (8-15), 3 (9-11), 5 (10-12); 2 выезжает сегодня, 4 отменено
	assert.Equal(t, 15, stats.Snapshot.OccupancyRate)
	assert.Equal(t, 57, stats.Snapshot.TotalUsers)

	assert.Equal(t, StatusBreakdown{Booked: 2, CheckedIn: 1, Cancelled: 1}, stats.StatusBreakdown)
}

func TestCompute_OccupancyBounds(t *testing.T) {
	t.Run("no rooms and no reservations", func(t *testing.T) {
		stats := Compute(Input{Actor: admin()}, today)
		assert.Equal(t, 0, stats.Snapshot.OccupancyRate)
	})

	t.Run("zero rooms denominator floored at one", func(t *testing.T) {
		stats := Compute(Input{
			Hotels:       []domain.Hotel{{ID: 1, TotalRooms: 0}},
			Reservations: []domain.Reservation{stay(1, 1, "u", date(2025, 6, 9), date(2025, 6, 11), 1, domain.ReservationBooked)},
			Actor:        admin(),
		}, today)
		assert.Equal(t, 100, stats.Snapshot.OccupancyRate)
	})

	t.Run("overbooked capped at hundred", func(t *testing.T) {
		stats := Compute(Input{
			Hotels: []domain.Hotel{{ID: 1, TotalRooms: 1}},
			Reservations: []domain.Reservation{
				stay(1, 1, "u", date(2025, 6, 9), date(2025, 6, 11), 1, domain.ReservationBooked),
				stay(2, 1, "u", date(2025, 6, 9), date(2025, 6, 11), 1, domain.ReservationConfirmed),
			},
			Actor: admin(),
		}, today)
		assert.Equal(t, 100, stats.Snapshot.OccupancyRate)
	})

	t.Run("rounds to nearest", func(t *testing.T) {
		stats := Compute(Input{
			Hotels:       []domain.Hotel{{ID: 1, TotalRooms: 3}},
			Reservations: []domain.Reservation{stay(1, 1, "u", date(2025, 6, 9), date(2025, 6, 11), 1, domain.ReservationBooked)},
			Actor:        admin(),
		}, today)
		assert.Equal(t, 33, stats.Snapshot.OccupancyRate)
	})
}

func TestCompute_MonthlySeries(t *testing.T) {
	in := Input{
		Reservations: []domain.Reservation{
			stay(1, 1, "u", date(2025, 1, 15), date(2025, 1, 17), 100, domain.ReservationCheckedOut), // 5 месяцев назад
			stay(2, 1, "u", date(2025, 6, 1), date(2025, 6, 3), 200, domain.ReservationConfirmed),    // текущий месяц
			stay(3, 1, "u", date(2025, 6, 20), date(2025, 6, 22), 50, domain.ReservationBooked),      // текущий месяц, в будущем
			stay(4, 1, "u", date(2024, 12, 31), date(2025, 1, 2), 999, domain.ReservationCheckedOut), // 6 месяцев назад
			stay(5, 1, "u", date(2025, 7, 1), date(2025, 7, 3), 999, domain.ReservationBooked),       // следующий месяц
			stay(6, 1, "u", date(2025, 4, 5), date(2025, 4, 6), 999, domain.ReservationCancelled),    // отменено
			stay(7, 1, "u", date(2025, 4, 5), date(2025, 4, 6), 30, domain.ReservationCheckedOut),
		},
		Actor: admin(),
	}

	stats := Compute(in, today)

	assert.Equal(t, []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}, stats.MonthlySeries.Labels)
	assert.Equal(t, []float64{100, 0, 0, 30, 0, 250}, stats.MonthlySeries.Values)
}

func TestCompute_MonthlySeriesAcrossYearBoundary(t *testing.T) {
	now := time.Date(2026, time.February, 3, 0, 0, 0, 0, time.UTC)
	in := Input{
		Reservations: []domain.Reservation{
			stay(1, 1, "u", date(2025, 9, 10), date(2025, 9, 12), 10, domain.ReservationCheckedOut),
			stay(2, 1, "u", date(2025, 12, 30), date(2026, 1, 2), 20, domain.ReservationCheckedOut),
			stay(3, 1, "u", date(2025, 8, 31), date(2025, 9, 2), 99, domain.ReservationCheckedOut),
		},
		Actor: admin(),
	}

	stats := Compute(in, now)

	assert.Equal(t, []string{"Sep", "Oct", "Nov", "Dec", "Jan", "Feb"}, stats.MonthlySeries.Labels)
	assert.Equal(t, []float64{10, 0, 0, 20, 0, 0}, stats.MonthlySeries.Values)
}

func TestCompute_RealizedRevenueSeparate(t *testing.T) {
	paidMay := date(2025, 5, 2)
	paidJune := date(2025, 6, 1)

	in := Input{
		Reservations: []domain.Reservation{
			stay(1, 1, "u", date(2025, 6, 1), date(2025, 6, 3), 500, domain.ReservationConfirmed),
		},
		Bills: []domain.Bill{
			{ID: 1, ReservationID: 1, TotalAmount: 120, PaymentStatus: domain.PaymentPaid, PaidAt: &paidMay},
			{ID: 2, ReservationID: 1, TotalAmount: 80, PaymentStatus: domain.PaymentPaid, PaidAt: &paidJune},
			{ID: 3, ReservationID: 1, TotalAmount: 999, PaymentStatus: domain.PaymentPaid},
			{ID: 4, ReservationID: 1, TotalAmount: 999, PaymentStatus: domain.PaymentPending, PaidAt: &paidJune},
			{ID: 5, ReservationID: 1, TotalAmount: 999, PaymentStatus: domain.PaymentRefunded, PaidAt: &paidJune},
		},
		Actor: admin(),
	}

	stats := Compute(in, today)

	assert.InDelta(t, 500.0, stats.Snapshot.TotalRevenue, 1e-9)
	assert.InDelta(t, 200.0, stats.Snapshot.RealizedRevenue, 1e-9)
	assert.Equal(t, []float64{0, 0, 0, 0, 120, 80}, stats.RealizedSeries.Values)
}

func TestCompute_HotelManagerScope(t *testing.T) {
	in := Input{
		Hotels: []domain.Hotel{{ID: 1, TotalRooms: 4}, {ID: 2, TotalRooms: 100}},
		Reservations: []domain.Reservation{
			stay(10, 1, "guest-a", date(2025, 6, 9), date(2025, 6, 12), 100, domain.ReservationCheckedIn),
			stay(11, 1, "guest-a", date(2025, 5, 1), date(2025, 5, 3), 40, domain.ReservationCheckedOut),
			stay(12, 1, "guest-b", date(2025, 6, 20), date(2025, 6, 22), 60, domain.ReservationCancelled),
			stay(20, 2, "guest-c", date(2025, 6, 9), date(2025, 6, 12), 5000, domain.ReservationCheckedIn),
		},
		Bills: []domain.Bill{
			{ID: 1, ReservationID: 10, TotalAmount: 100, PaymentStatus: domain.PaymentPaid, PaidAt: ptrTime(date(2025, 6, 9))},
			{ID: 2, ReservationID: 20, TotalAmount: 5000, PaymentStatus: domain.PaymentPaid, PaidAt: ptrTime(date(2025, 6, 9))},
		},
		UserTotal: 1000,
		Actor:     domain.Actor{UserID: "m", Roles: []domain.Role{domain.RoleHotelManager}, HotelID: hotelID(1)},
	}

	stats := Compute(in, today)

	assert.Equal(t, 1, stats.Snapshot.TotalHotels)
	assert.InDelta(t, 140.0, stats.Snapshot.TotalRevenue, 1e-9)
	assert.InDelta(t, 100.0, stats.Snapshot.RealizedRevenue, 1e-9)
	assert.Equal(t, 1, stats.Snapshot.ActiveReservations)
	assert.Equal(t, 25, stats.Snapshot.OccupancyRate)
	assert.Equal(t, 2, stats.Snapshot.TotalUsers, "distinct guests of the managed hotel")
	assert.Equal(t, StatusBreakdown{Booked: 0, CheckedIn: 1, Cancelled: 1}, stats.StatusBreakdown)
	assert.Equal(t, []float64{0, 0, 0, 0, 40, 100}, stats.MonthlySeries.Values)
}

func TestCompute_HotelManagerWithoutHomeHotel(t *testing.T) {
	in := Input{
		Hotels:       []domain.Hotel{{ID: 1, TotalRooms: 4}},
		Reservations: []domain.Reservation{stay(10, 1, "guest-a", date(2025, 6, 9), date(2025, 6, 12), 100, domain.ReservationCheckedIn)},
		Bills:        []domain.Bill{{ID: 1, ReservationID: 10, TotalAmount: 100, PaymentStatus: domain.PaymentPaid, PaidAt: ptrTime(today)}},
		UserTotal:    1000,
		Actor:        domain.Actor{UserID: "m", Roles: []domain.Role{domain.RoleHotelManager}},
	}

	stats := Compute(in, today)

	assert.Equal(t, Snapshot{}, stats.Snapshot)
	assert.Equal(t, StatusBreakdown{}, stats.StatusBreakdown)
	assert.Equal(t, make([]float64, 6), stats.MonthlySeries.Values)
}

func TestCompute_ManagerWithOtherRolesSeesEverything(t *testing.T) {
	in := Input{
		Hotels:    []domain.Hotel{{ID: 1, TotalRooms: 4}, {ID: 2, TotalRooms: 4}},
		UserTotal: 12,
		Actor: domain.Actor{
			Roles:   []domain.Role{domain.RoleHotelManager, domain.RoleAdmin},
			HotelID: hotelID(1),
		},
	}

	stats := Compute(in, today)

	assert.Equal(t, 2, stats.Snapshot.TotalHotels)
	assert.Equal(t, 12, stats.Snapshot.TotalUsers)
}

func ptrTime(t time.Time) *time.Time {
	return &t
}
