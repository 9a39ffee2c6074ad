package compute_statistics

import (
	"context"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-HotelOps/internal/domain"
)

// Наборы данных отчёта (для логов и метрик)
const (
	datasetHotels       = "hotels"
	datasetReservations = "reservations"
	datasetBills        = "bills"
	datasetUsers        = "users"
)

// UseCase use case расчёта операционной статистики
type UseCase struct {
	source       DataSource
	users        UserCounter
	recorder     FetchErrorRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case; recorder может быть nil
func NewUseCase(
	source DataSource,
	users UserCounter,
	recorder FetchErrorRecorder,
	logger Logger,
) *UseCase {
	if recorder == nil {
		recorder = nopRecorder{}
	}

	return &UseCase{
		source:       source,
		users:        users,
		recorder:     recorder,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute загружает наборы данных параллельно и рассчитывает статистику.
// Ошибка загрузки любого набора заменяет его пустым, отчёт строится всегда
func (uc *UseCase) Execute(ctx context.Context, actor domain.Actor) (*Statistics, error) {
	uc.logger.Info("ComputeStatistics: user=%s, roles=%v, hotel=%s",
		actor.UserID, actor.Roles, formatHotelID(actor.HotelID))

	if actor.IsHotelManagerOnly() && actor.HotelID == nil {
		uc.logger.Warn("ComputeStatistics: hotel manager user=%s has no home hotel, statistics will be empty", actor.UserID)
	}

	input := Input{Actor: actor}

	// Горутины пишут только в свои поля input, ошибки не прерывают остальные загрузки
	var g errgroup.Group

	g.Go(func() error {
		hotels, err := uc.source.GetHotels(ctx)
		input.Hotels = orEmpty(uc, datasetHotels, hotels, err)
		return nil
	})

	g.Go(func() error {
		reservations, err := uc.source.GetReservations(ctx)
		input.Reservations = orEmpty(uc, datasetReservations, reservations, err)
		return nil
	})

	g.Go(func() error {
		bills, err := uc.source.GetBills(ctx)
		input.Bills = orEmpty(uc, datasetBills, bills, err)
		return nil
	})

	// Для менеджера число пользователей считается по его бронированиям
	if !actor.IsHotelManagerOnly() {
		g.Go(func() error {
			total, err := uc.users.CountUsers(ctx, "")
			if err != nil {
				uc.recorder.RecordFetchError(datasetUsers)
				uc.logger.Warn("ComputeStatistics: failed to count users, using 0: %v", err)
				return nil
			}
			input.UserTotal = total
			return nil
		})
	}

	// Ошибки уже заменены пустыми наборами, Wait всегда возвращает nil
	_ = g.Wait()

	stats := Compute(input, uc.timeProvider.Now())

	uc.logger.Info("ComputeStatistics: hotels=%d, revenue=%.2f, occupancy=%d%%, active=%d, users=%d",
		stats.Snapshot.TotalHotels, stats.Snapshot.TotalRevenue, stats.Snapshot.OccupancyRate,
		stats.Snapshot.ActiveReservations, stats.Snapshot.TotalUsers)

	return stats, nil
}

// orEmpty нормализует результат загрузки: при ошибке - пустой набор
func orEmpty[T any](uc *UseCase, dataset string, items []T, err error) []T {
	if err != nil {
		uc.recorder.RecordFetchError(dataset)
		uc.logger.Warn("ComputeStatistics: failed to load %s, using empty set: %v", dataset, err)
		return []T{}
	}
	if items == nil {
		return []T{}
	}
	return items
}

func formatHotelID(id *int64) string {
	if id == nil {
		return "none"
	}
	return strconv.FormatInt(*id, 10)
}
