package catalog

import (
	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-HotelOps/pkg/psqlbuilder"
)

var (
	roomColumns = []string{
		"id",
		"hotel_id",
		"room_number",
		"type",
		"status",
		"capacity",
		"base_price",
	}

	reservationColumns = []string{
		"id",
		"room_id",
		"hotel_id",
		"user_id",
		"check_in_date",
		"check_out_date",
		"number_of_guests",
		"total_amount",
		"status",
	}

	hotelColumns = []string{
		"id",
		"name",
		"total_rooms",
	}

	billColumns = []string{
		"id",
		"reservation_id",
		"total_amount",
		"payment_status",
		"paid_at",
	}
)

func roomsByHotelQuery(hotelID int64) squirrel.SelectBuilder {
	return psqlbuilder.Select(roomColumns...).
		From("rooms").
		Where(squirrel.Eq{"hotel_id": hotelID}).
		OrderBy("room_number ASC")
}

func reservationsQuery() squirrel.SelectBuilder {
	return psqlbuilder.Select(reservationColumns...).
		From("reservations").
		OrderBy("check_in_date ASC")
}

func hotelsQuery() squirrel.SelectBuilder {
	return psqlbuilder.Select(hotelColumns...).
		From("hotels").
		OrderBy("id ASC")
}

func billsQuery() squirrel.SelectBuilder {
	return psqlbuilder.Select(billColumns...).
		From("bills").
		OrderBy("id ASC")
}

func usersCountQuery(role string) squirrel.SelectBuilder {
	if role == "" {
		return psqlbuilder.Select("COUNT(*)").From("users")
	}

	return psqlbuilder.Select("COUNT(DISTINCT ur.user_id)").
		From("user_roles ur").
		Join("roles r ON r.id = ur.role_id").
		Where(squirrel.Eq{"r.name": role})
}
