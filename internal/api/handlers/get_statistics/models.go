package get_statistics

import computeStatistics "github.com/m04kA/SMC-HotelOps/internal/usecase/compute_statistics"

// StatisticsResponse HTTP response model
type StatisticsResponse struct {
	Snapshot        SnapshotResponse        `json:"snapshot"`
	MonthlyRevenue  SeriesResponse          `json:"monthlyRevenue"`
	RealizedRevenue SeriesResponse          `json:"realizedRevenue"`
	StatusBreakdown StatusBreakdownResponse `json:"statusBreakdown"`
}

type SnapshotResponse struct {
	TotalHotels        int     `json:"totalHotels"`
	TotalRevenue       float64 `json:"totalRevenue"`
	RealizedRevenue    float64 `json:"realizedRevenue"`
	OccupancyRate      int     `json:"occupancyRate"`
	ActiveReservations int     `json:"activeReservations"`
	TotalUsers         int     `json:"totalUsers"`
}

type SeriesResponse struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

type StatusBreakdownResponse struct {
	Booked    int `json:"booked"`
	CheckedIn int `json:"checkedIn"`
	Cancelled int `json:"cancelled"`
}

// FromUseCaseResponse конвертирует результат use case в HTTP response
func FromUseCaseResponse(stats *computeStatistics.Statistics) *StatisticsResponse {
	return &StatisticsResponse{
		Snapshot: SnapshotResponse{
			TotalHotels:        stats.Snapshot.TotalHotels,
			TotalRevenue:       stats.Snapshot.TotalRevenue,
			RealizedRevenue:    stats.Snapshot.RealizedRevenue,
			OccupancyRate:      stats.Snapshot.OccupancyRate,
			ActiveReservations: stats.Snapshot.ActiveReservations,
			TotalUsers:         stats.Snapshot.TotalUsers,
		},
		MonthlyRevenue:  SeriesResponse(stats.MonthlySeries),
		RealizedRevenue: SeriesResponse(stats.RealizedSeries),
		StatusBreakdown: StatusBreakdownResponse(stats.StatusBreakdown),
	}
}
