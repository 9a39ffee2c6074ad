package compute_statistics

import (
	"math"
	"time"

	"github.com/m04kA/SMC-HotelOps/internal/domain"
)

// Compute рассчитывает статистику по переданным наборам данных.
// Функция чистая: today задаётся явно
func Compute(in Input, today time.Time) *Statistics {
	data := applyScope(in)
	today = domain.StayDay(today)

	snapshot := Snapshot{
		TotalHotels:        len(data.hotels),
		TotalRevenue:       projectedRevenue(data.reservations),
		RealizedRevenue:    realizedRevenue(data.bills),
		OccupancyRate:      occupancyRate(data.hotels, data.reservations, today),
		ActiveReservations: countStatus(data.reservations, domain.ReservationCheckedIn),
		TotalUsers:         in.UserTotal,
	}

	if data.managerView {
		snapshot.TotalUsers = distinctGuests(data.reservations)
	}

	return &Statistics{
		Snapshot:       snapshot,
		MonthlySeries:  projectedSeries(data.reservations, today),
		RealizedSeries: realizedSeries(data.bills, today),
		StatusBreakdown: StatusBreakdown{
			Booked:    countStatus(data.reservations, domain.ReservationBooked),
			CheckedIn: countStatus(data.reservations, domain.ReservationCheckedIn),
			Cancelled: countStatus(data.reservations, domain.ReservationCancelled),
		},
	}
}

// projectedRevenue сумма неотменённых бронирований независимо от оплаты
func projectedRevenue(reservations []domain.Reservation) float64 {
	var total float64
	for _, r := range reservations {
		if !r.IsCancelled() {
			total += r.TotalAmount
		}
	}
	return total
}

// realizedRevenue сумма оплаченных счетов с датой оплаты
func realizedRevenue(bills []domain.Bill) float64 {
	var total float64
	for _, b := range bills {
		if b.IsRealized() {
			total += b.TotalAmount
		}
	}
	return total
}

// occupancyRate процент номеров, занятых сегодня.
// Знаменатель не меньше 1, результат ограничен 0..100
func occupancyRate(hotels []domain.Hotel, reservations []domain.Reservation, today time.Time) int {
	totalRooms := 0
	for _, h := range hotels {
		if h.TotalRooms > 0 {
			totalRooms += h.TotalRooms
		}
	}
	if totalRooms < 1 {
		totalRooms = 1
	}

	occupied := 0
	for i := range reservations {
		if reservations[i].OccupiesOn(today) {
			occupied++
		}
	}

	rate := int(math.Round(float64(occupied) / float64(totalRooms) * 100))
	if rate > domain.MaxOccupancyRate {
		return domain.MaxOccupancyRate
	}
	return rate
}

func countStatus(reservations []domain.Reservation, status domain.ReservationStatus) int {
	count := 0
	for _, r := range reservations {
		if r.Status == status {
			count++
		}
	}
	return count
}

// distinctGuests число уникальных гостей среди бронирований
func distinctGuests(reservations []domain.Reservation) int {
	seen := make(map[string]struct{})
	for _, r := range reservations {
		if r.UserID != "" {
			seen[r.UserID] = struct{}{}
		}
	}
	return len(seen)
}

// projectedSeries раскладывает неотменённые бронирования по месяцу заезда
func projectedSeries(reservations []domain.Reservation, today time.Time) MonthlySeries {
	series := newMonthlySeries(today)
	for _, r := range reservations {
		if r.IsCancelled() {
			continue
		}
		series.add(today, r.CheckIn, r.TotalAmount)
	}
	return series
}

// realizedSeries раскладывает оплаченные счета по месяцу оплаты
func realizedSeries(bills []domain.Bill, today time.Time) MonthlySeries {
	series := newMonthlySeries(today)
	for _, b := range bills {
		if !b.IsRealized() {
			continue
		}
		series.add(today, *b.PaidAt, b.TotalAmount)
	}
	return series
}

// newMonthlySeries создает пустой ряд с подписями месяцев (старые первыми)
func newMonthlySeries(today time.Time) MonthlySeries {
	labels := make([]string, domain.MonthlySeriesLength)
	for i := 0; i < domain.MonthlySeriesLength; i++ {
		monthsAgo := domain.MonthlySeriesLength - 1 - i
		month := time.Date(today.Year(), today.Month()-time.Month(monthsAgo), 1, 0, 0, 0, 0, time.UTC)
		labels[i] = month.Month().String()[:3]
	}

	return MonthlySeries{
		Labels: labels,
		Values: make([]float64, domain.MonthlySeriesLength),
	}
}

// add добавляет сумму в корзину месяца at; значения вне окна игнорируются
func (s MonthlySeries) add(today, at time.Time, amount float64) {
	at = at.UTC()
	diff := (today.Year()-at.Year())*12 + int(today.Month()) - int(at.Month())
	if diff < 0 || diff >= domain.MonthlySeriesLength {
		return
	}
	s.Values[domain.MonthlySeriesLength-1-diff] += amount
}
