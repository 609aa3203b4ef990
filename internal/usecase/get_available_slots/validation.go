package get_available_slots

import (
	"fmt"

	"github.com/CurtBryan/party-lab-sub000/internal/domain"
)

// validateRequest проверяет корректность входных данных запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	if !domain.IsValidProduct(req.Product) {
		return fmt.Errorf("%w: product %q", ErrUnknownProduct, req.Product)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidDate)
	}

	return nil
}
