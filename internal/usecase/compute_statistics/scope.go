package compute_statistics

import "github.com/m04kA/SMC-HotelOps/internal/domain"

// scoped наборы данных, видимые актору
type scoped struct {
	hotels       []domain.Hotel
	reservations []domain.Reservation
	bills        []domain.Bill
	managerView  bool // Актор - только менеджер отеля
}

// applyScope ограничивает данные отелем менеджера.
// Менеджер без домашнего отеля не видит ничего
func applyScope(in Input) scoped {
	if !in.Actor.IsHotelManagerOnly() {
		return scoped{
			hotels:       in.Hotels,
			reservations: in.Reservations,
			bills:        in.Bills,
		}
	}

	if in.Actor.HotelID == nil {
		return scoped{
			hotels:       []domain.Hotel{},
			reservations: []domain.Reservation{},
			bills:        []domain.Bill{},
			managerView:  true,
		}
	}

	hotelID := *in.Actor.HotelID

	hotels := make([]domain.Hotel, 0, 1)
	for _, h := range in.Hotels {
		if h.ID == hotelID {
			hotels = append(hotels, h)
		}
	}

	reservations := make([]domain.Reservation, 0)
	reservationIDs := make(map[int64]struct{})
	for _, r := range in.Reservations {
		if r.HotelID == hotelID {
			reservations = append(reservations, r)
			reservationIDs[r.ID] = struct{}{}
		}
	}

	bills := make([]domain.Bill, 0)
	for _, b := range in.Bills {
		if _, ok := reservationIDs[b.ReservationID]; ok {
			bills = append(bills, b)
		}
	}

	return scoped{
		hotels:       hotels,
		reservations: reservations,
		bills:        bills,
		managerView:  true,
	}
}
