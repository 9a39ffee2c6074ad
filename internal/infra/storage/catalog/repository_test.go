package catalog

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelOps/internal/domain"
)

// fakeResult отдаёт заранее подготовленные строки на любой запрос
type fakeResult struct {
	columns []string
	rows    [][]driver.Value
	err     error
	queries []string
}

func (f *fakeResult) Connect(context.Context) (driver.Conn, error) { return &fakeConn{result: f}, nil }
func (f *fakeResult) Driver() driver.Driver                        { return fakeDriver{} }

type fakeDriver struct{}

func (fakeDriver) Open(string) (driver.Conn, error) { return nil, errors.New("use connector") }

type fakeConn struct {
	result *fakeResult
}

func (c *fakeConn) Prepare(query string) (driver.Stmt, error) {
	return &fakeStmt{result: c.result, query: query}, nil
}
func (c *fakeConn) Close() error              { return nil }
func (c *fakeConn) Begin() (driver.Tx, error) { return nil, errors.New("read-only") }

type fakeStmt struct {
	result *fakeResult
	query  string
}

func (s *fakeStmt) Close() error  { return nil }
func (s *fakeStmt) NumInput() int { return -1 }
func (s *fakeStmt) Exec([]driver.Value) (driver.Result, error) {
	return nil, errors.New("read-only")
}
func (s *fakeStmt) Query([]driver.Value) (driver.Rows, error) {
	s.result.queries = append(s.result.queries, s.query)
	if s.result.err != nil {
		return nil, s.result.err
	}
	return &fakeRows{columns: s.result.columns, rows: s.result.rows}, nil
}

type fakeRows struct {
	columns []string
	rows    [][]driver.Value
	pos     int
}

func (r *fakeRows) Columns() []string { return r.columns }
func (r *fakeRows) Close() error      { return nil }
func (r *fakeRows) Next(dest []driver.Value) error {
	if r.pos >= len(r.rows) {
		return io.EOF
	}
	copy(dest, r.rows[r.pos])
	r.pos++
	return nil
}

func newTestRepository(t *testing.T, result *fakeResult) *Repository {
	t.Helper()
	db := sql.OpenDB(result)
	t.Cleanup(func() { _ = db.Close() })
	return NewRepository(db)
}

func TestRepository_GetRoomsByHotel(t *testing.T) {
	result := &fakeResult{
		columns: roomColumns,
		rows: [][]driver.Value{
			{int64(1), int64(7), "101", int64(1), int64(1), int64(1), 50.0},
			{int64(2), int64(7), "102", int64(3), int64(3), int64(4), 180.5},
		},
	}
	repo := newTestRepository(t, result)

	rooms, err := repo.GetRoomsByHotel(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, domain.Room{
		ID: 2, HotelID: 7, RoomNumber: "102", Type: domain.RoomSuite,
		Status: domain.RoomMaintenance, Capacity: 4, BasePrice: 180.5,
	}, rooms[1])
	require.Len(t, result.queries, 1)
	assert.Contains(t, result.queries[0], "WHERE hotel_id = $1")
}

func TestRepository_GetReservations_NormalizesToUTC(t *testing.T) {
	moscow := time.FixedZone("MSK", 3*60*60)
	result := &fakeResult{
		columns: reservationColumns,
		rows: [][]driver.Value{
			{
				int64(10), int64(2), int64(1), "guest-1",
				time.Date(2025, 6, 10, 17, 0, 0, 0, moscow),
				time.Date(2025, 6, 12, 14, 0, 0, 0, moscow),
				int64(2), 240.0, int64(5),
			},
		},
	}
	repo := newTestRepository(t, result)

	reservations, err := repo.GetReservations(context.Background())

	require.NoError(t, err)
	require.Len(t, reservations, 1)
	res := reservations[0]
	assert.Equal(t, "guest-1", res.UserID)
	assert.Equal(t, time.UTC, res.CheckIn.Location())
	assert.Equal(t, time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC), res.CheckIn)
	assert.Equal(t, time.Date(2025, 6, 12, 11, 0, 0, 0, time.UTC), res.CheckOut)
	assert.Equal(t, domain.ReservationCancelled, res.Status)
	assert.True(t, res.IsCancelled())
}

func TestRepository_GetBills_PaidAt(t *testing.T) {
	paidAt := time.Date(2025, 5, 3, 12, 30, 0, 0, time.FixedZone("CET", 60*60))
	result := &fakeResult{
		columns: billColumns,
		rows: [][]driver.Value{
			{int64(1), int64(10), 300.0, int64(2), paidAt},
			{int64(2), int64(11), 120.0, int64(1), nil},
		},
	}
	repo := newTestRepository(t, result)

	bills, err := repo.GetBills(context.Background())

	require.NoError(t, err)
	require.Len(t, bills, 2)

	require.NotNil(t, bills[0].PaidAt)
	assert.Equal(t, time.Date(2025, 5, 3, 11, 30, 0, 0, time.UTC), *bills[0].PaidAt)
	assert.True(t, bills[0].IsRealized())

	assert.Nil(t, bills[1].PaidAt)
	assert.Equal(t, domain.PaymentStatus(1), bills[1].PaymentStatus)
	assert.False(t, bills[1].IsRealized())
}

func TestRepository_GetHotels_Empty(t *testing.T) {
	repo := newTestRepository(t, &fakeResult{columns: hotelColumns})

	hotels, err := repo.GetHotels(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, hotels)
	assert.Empty(t, hotels)
}

func TestRepository_CountUsers(t *testing.T) {
	result := &fakeResult{
		columns: []string{"count"},
		rows:    [][]driver.Value{{int64(57)}},
	}
	repo := newTestRepository(t, result)

	count, err := repo.CountUsers(context.Background(), "Guest")

	require.NoError(t, err)
	assert.Equal(t, 57, count)
	require.Len(t, result.queries, 1)
	assert.Contains(t, result.queries[0], "WHERE r.name = $1")
}

func TestRepository_Errors(t *testing.T) {
	t.Run("query failure", func(t *testing.T) {
		repo := newTestRepository(t, &fakeResult{err: errors.New("connection reset")})

		_, err := repo.GetReservations(context.Background())

		assert.ErrorIs(t, err, ErrExecQuery)
	})

	t.Run("scan failure", func(t *testing.T) {
		repo := newTestRepository(t, &fakeResult{
			columns: hotelColumns,
			rows:    [][]driver.Value{{"not-a-number", "Grand", int64(10)}},
		})

		_, err := repo.GetHotels(context.Background())

		assert.ErrorIs(t, err, ErrScanRow)
	})

	t.Run("count without rows", func(t *testing.T) {
		repo := newTestRepository(t, &fakeResult{columns: []string{"count"}})

		_, err := repo.CountUsers(context.Background(), "")

		assert.ErrorIs(t, err, ErrScanRow)
	})
}
