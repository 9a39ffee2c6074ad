package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m04kA/SMC-HotelOps/internal/domain"
)

// Repository read-only репозиторий каталога отелей.
// Используется как источник массовых данных для fallback-поиска и отчётов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetRoomsByHotel получает все номера отеля
func (r *Repository) GetRoomsByHotel(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	query, args, err := roomsByHotelQuery(hotelID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetRoomsByHotel - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetRoomsByHotel - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rooms := make([]domain.Room, 0)
	for rows.Next() {
		var room domain.Room
		if err := rows.Scan(
			&room.ID,
			&room.HotelID,
			&room.RoomNumber,
			&room.Type,
			&room.Status,
			&room.Capacity,
			&room.BasePrice,
		); err != nil {
			return nil, fmt.Errorf("%w: GetRoomsByHotel - scan room: %v", ErrScanRow, err)
		}
		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetRoomsByHotel - rows error: %v", ErrScanRow, err)
	}

	return rooms, nil
}

// GetReservations получает все бронирования
func (r *Repository) GetReservations(ctx context.Context) ([]domain.Reservation, error) {
	query, args, err := reservationsQuery().ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetReservations - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetReservations - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reservations := make([]domain.Reservation, 0)
	for rows.Next() {
		var res domain.Reservation
		if err := rows.Scan(
			&res.ID,
			&res.RoomID,
			&res.HotelID,
			&res.UserID,
			&res.CheckIn,
			&res.CheckOut,
			&res.NumberOfGuests,
			&res.TotalAmount,
			&res.Status,
		); err != nil {
			return nil, fmt.Errorf("%w: GetReservations - scan reservation: %v", ErrScanRow, err)
		}
		res.CheckIn = res.CheckIn.UTC()
		res.CheckOut = res.CheckOut.UTC()
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}

// GetHotels получает все отели
func (r *Repository) GetHotels(ctx context.Context) ([]domain.Hotel, error) {
	query, args, err := hotelsQuery().ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetHotels - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetHotels - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	hotels := make([]domain.Hotel, 0)
	for rows.Next() {
		var hotel domain.Hotel
		if err := rows.Scan(&hotel.ID, &hotel.Name, &hotel.TotalRooms); err != nil {
			return nil, fmt.Errorf("%w: GetHotels - scan hotel: %v", ErrScanRow, err)
		}
		hotels = append(hotels, hotel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetHotels - rows error: %v", ErrScanRow, err)
	}

	return hotels, nil
}

// GetBills получает все счета
func (r *Repository) GetBills(ctx context.Context) ([]domain.Bill, error) {
	query, args, err := billsQuery().ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBills - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBills - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bills := make([]domain.Bill, 0)
	for rows.Next() {
		var (
			bill   domain.Bill
			paidAt sql.NullTime
		)
		if err := rows.Scan(
			&bill.ID,
			&bill.ReservationID,
			&bill.TotalAmount,
			&bill.PaymentStatus,
			&paidAt,
		); err != nil {
			return nil, fmt.Errorf("%w: GetBills - scan bill: %v", ErrScanRow, err)
		}
		if paidAt.Valid {
			t := paidAt.Time.UTC()
			bill.PaidAt = &t
		}
		bills = append(bills, bill)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBills - rows error: %v", ErrScanRow, err)
	}

	return bills, nil
}

// CountUsers возвращает число пользователей (опционально с указанной ролью)
func (r *Repository) CountUsers(ctx context.Context, role string) (int, error) {
	query, args, err := usersCountQuery(role).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountUsers - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountUsers - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}
