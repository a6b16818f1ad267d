package get_schedule

import (
	"fmt"

	"github.com/m04kA/FitStudio-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	switch req.View {
	case ViewWeek, ViewDay:
	default:
		return fmt.Errorf("%w: view must be %q or %q", ErrInvalidInput, ViewWeek, ViewDay)
	}

	for _, t := range req.Types {
		if !domain.ValidClassType(t) {
			return fmt.Errorf("%w: unknown class type %q", ErrInvalidInput, t)
		}
	}

	return nil
}
