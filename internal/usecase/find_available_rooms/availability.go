package find_available_rooms

import "github.com/m04kA/SMC-HotelOps/internal/domain"

// filterAvailableRooms оставляет номера, свободные на весь период:
// статус Available, нет пересекающихся неотменённых бронирований,
// вместимость не меньше guests (если задано)
func filterAvailableRooms(
	rooms []domain.Room,
	reservations []domain.Reservation,
	window domain.StayWindow,
	guests int,
) []domain.Room {
	// Группируем бронирования по номеру, чтобы не сканировать весь список для каждого номера
	byRoom := make(map[int64][]domain.Reservation)
	for _, r := range reservations {
		if r.IsCancelled() {
			continue
		}
		byRoom[r.RoomID] = append(byRoom[r.RoomID], r)
	}

	result := make([]domain.Room, 0, len(rooms))
	for _, room := range rooms {
		if !room.IsAvailable() || !room.Fits(guests) {
			continue
		}

		if roomHasOverlap(room.ID, byRoom[room.ID], window) {
			continue
		}

		result = append(result, room)
	}

	return result
}

// roomHasOverlap проверяет, есть ли у номера бронирование, пересекающееся с окном
func roomHasOverlap(roomID int64, reservations []domain.Reservation, window domain.StayWindow) bool {
	for i := range reservations {
		if reservations[i].Blocks(roomID, window) {
			return true
		}
	}
	return false
}

// roomsOfHotel отбрасывает номера чужих отелей, если источник вернул лишнее.
// Номера без hotelID (0) считаются принадлежащими запрошенному отелю
func roomsOfHotel(rooms []domain.Room, hotelID int64) []domain.Room {
	result := make([]domain.Room, 0, len(rooms))
	for _, room := range rooms {
		if room.HotelID == hotelID || room.HotelID == 0 {
			result = append(result, room)
		}
	}
	return result
}
