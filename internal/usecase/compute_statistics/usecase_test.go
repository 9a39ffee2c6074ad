package compute_statistics

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelOps/internal/domain"
	"github.com/m04kA/SMC-HotelOps/pkg/logger"
)

type fakeSource struct {
	hotels       []domain.Hotel
	reservations []domain.Reservation
	bills        []domain.Bill

	hotelsErr       error
	reservationsErr error
	billsErr        error
}

func (f *fakeSource) GetHotels(ctx context.Context) ([]domain.Hotel, error) {
	return f.hotels, f.hotelsErr
}

func (f *fakeSource) GetReservations(ctx context.Context) ([]domain.Reservation, error) {
	return f.reservations, f.reservationsErr
}

func (f *fakeSource) GetBills(ctx context.Context) ([]domain.Bill, error) {
	return f.bills, f.billsErr
}

type fakeUsers struct {
	total int
	err   error
	calls int
	mu    sync.Mutex
}

func (f *fakeUsers) CountUsers(ctx context.Context, role string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.total, f.err
}

type fakeRecorder struct {
	mu       sync.Mutex
	datasets []string
}

func (f *fakeRecorder) RecordFetchError(dataset string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.datasets = append(f.datasets, dataset)
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

func newUseCase(source DataSource, users UserCounter, recorder FetchErrorRecorder) *UseCase {
	uc := NewUseCase(source, users, recorder, logger.Nop())
	uc.timeProvider = fixedTime{now: today}
	return uc
}

func TestExecute_Admin(t *testing.T) {
	source := &fakeSource{
		hotels: []domain.Hotel{{ID: 1, TotalRooms: 2}},
		reservations: []domain.Reservation{
			stay(1, 1, "u1", date(2025, 6, 9), date(2025, 6, 11), 300, domain.ReservationCheckedIn),
		},
	}
	users := &fakeUsers{total: 31}

	stats, err := newUseCase(source, users, nil).Execute(context.Background(), admin())

	require.NoError(t, err)
	assert.Equal(t, 1, stats.Snapshot.TotalHotels)
	assert.Equal(t, 50, stats.Snapshot.OccupancyRate)
	assert.Equal(t, 31, stats.Snapshot.TotalUsers)
	assert.Equal(t, 1, users.calls)
}

func TestExecute_FetchFailuresDegradeToEmpty(t *testing.T) {
	source := &fakeSource{
		hotels:          []domain.Hotel{{ID: 1, TotalRooms: 2}},
		reservationsErr: errors.New("timeout"),
		billsErr:        errors.New("bad gateway"),
	}
	users := &fakeUsers{err: errors.New("unauthorized")}
	recorder := &fakeRecorder{}

	stats, err := newUseCase(source, users, recorder).Execute(context.Background(), admin())

	require.NoError(t, err)
	assert.Equal(t, 1, stats.Snapshot.TotalHotels)
	assert.Zero(t, stats.Snapshot.TotalRevenue)
	assert.Zero(t, stats.Snapshot.TotalUsers)
	assert.ElementsMatch(t, []string{datasetReservations, datasetBills, datasetUsers}, recorder.datasets)
}

func TestExecute_HotelManagerSkipsUserCount(t *testing.T) {
	source := &fakeSource{
		hotels: []domain.Hotel{{ID: 1, TotalRooms: 2}, {ID: 2, TotalRooms: 2}},
		reservations: []domain.Reservation{
			stay(1, 1, "u1", date(2025, 6, 9), date(2025, 6, 11), 300, domain.ReservationCheckedIn),
			stay(2, 2, "u2", date(2025, 6, 9), date(2025, 6, 11), 300, domain.ReservationCheckedIn),
		},
	}
	users := &fakeUsers{total: 31}
	actor := domain.Actor{UserID: "m", Roles: []domain.Role{domain.RoleHotelManager}, HotelID: hotelID(2)}

	stats, err := newUseCase(source, users, nil).Execute(context.Background(), actor)

	require.NoError(t, err)
	assert.Equal(t, 0, users.calls)
	assert.Equal(t, 1, stats.Snapshot.TotalHotels)
	assert.Equal(t, 1, stats.Snapshot.TotalUsers)
	assert.InDelta(t, 300.0, stats.Snapshot.TotalRevenue, 1e-9)
}
