package find_available_rooms

import "errors"

var (
	// ErrInvalidWindow возвращается, когда дата выезда не позже даты заезда
	ErrInvalidWindow = errors.New("find_available_rooms: check-out must be after check-in")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("find_available_rooms: invalid input data")
)
