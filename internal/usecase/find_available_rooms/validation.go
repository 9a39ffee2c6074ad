package find_available_rooms

import (
	"fmt"

	"github.com/m04kA/SMC-HotelOps/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.HotelID <= 0 {
		return fmt.Errorf("%w: hotelID must be positive", ErrInvalidInput)
	}

	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return fmt.Errorf("%w: check-in and check-out dates are required", ErrInvalidInput)
	}

	if req.Guests < 0 {
		return fmt.Errorf("%w: guests must not be negative", ErrInvalidInput)
	}

	if !domain.NewStayWindow(req.CheckIn, req.CheckOut).IsValid() {
		return fmt.Errorf("%w: check-in=%s, check-out=%s", ErrInvalidWindow,
			req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat))
	}

	return nil
}
