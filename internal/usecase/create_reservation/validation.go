package create_reservation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-HotelOps/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if err := validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			return fmt.Errorf("%w: %s", ErrInvalidInput, describeFieldErrors(fieldErrs))
		}
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if !domain.NewStayWindow(req.CheckIn, req.CheckOut).IsValid() {
		return fmt.Errorf("%w: check-in=%s, check-out=%s", ErrInvalidWindow,
			req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat))
	}

	return nil
}

func describeFieldErrors(errs validator.ValidationErrors) string {
	parts := make([]string, 0, len(errs))
	for _, fe := range errs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s failed %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, ", ")
}
