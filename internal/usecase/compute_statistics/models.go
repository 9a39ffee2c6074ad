package compute_statistics

import "github.com/m04kA/SMC-HotelOps/internal/domain"

// Input наборы данных для расчёта статистики
type Input struct {
	Hotels       []domain.Hotel
	Reservations []domain.Reservation
	Bills        []domain.Bill
	UserTotal    int // Общее число пользователей (для не-менеджеров)
	Actor        domain.Actor
}

// Statistics результат расчёта
type Statistics struct {
	Snapshot        Snapshot
	MonthlySeries   MonthlySeries // Проектная выручка по месяцам заезда
	RealizedSeries  MonthlySeries // Оплаченные счета по месяцам оплаты
	StatusBreakdown StatusBreakdown
}

// Snapshot ключевые показатели
type Snapshot struct {
	TotalHotels        int
	TotalRevenue       float64 // Сумма неотменённых бронирований
	RealizedRevenue    float64 // Сумма оплаченных счетов
	OccupancyRate      int     // Процент занятых сегодня номеров, 0..100
	ActiveReservations int     // Бронирования в статусе CheckedIn
	TotalUsers         int
}

// MonthlySeries ряд из 6 месяцев: от пятого предыдущего до текущего
type MonthlySeries struct {
	Labels []string
	Values []float64
}

// StatusBreakdown распределение бронирований по статусам
type StatusBreakdown struct {
	Booked    int
	CheckedIn int
	Cancelled int
}
