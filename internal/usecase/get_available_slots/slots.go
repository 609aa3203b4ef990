package get_available_slots

import (
	"github.com/CurtBryan/party-lab-sub000/internal/domain"
)

// SlotFree reports whether the candidate slot for the given product can be
// booked against the supplied overrides and same-day bookings. It returns
// false with a human-readable reason on the first rule that denies the slot.
//
// Overrides win over the booking calendar: an administrative rule denies the
// slot even when no booking occupies it.
func SlotFree(
	product domain.Product,
	slot domain.TimeSlot,
	overrides []*domain.AvailabilityOverride,
	bookings []*domain.Booking,
) (bool, string) {
	for _, ov := range overrides {
		if ov.Matches(product, slot) {
			return false, ov.Reason
		}
	}

	for _, b := range bookings {
		if !b.OccupiesSlot() {
			continue
		}
		if b.Product != product {
			continue
		}
		if b.Slot().Overlaps(slot) {
			return false, "slot already booked"
		}
	}

	return true, ""
}

// dateBlock возвращает правило, закрывающее дату для продукта целиком (если есть)
func dateBlock(product domain.Product, overrides []*domain.AvailabilityOverride) *domain.AvailabilityOverride {
	for _, ov := range overrides {
		if ov.DeniesWholeDate(product) {
			return ov
		}
	}

	return nil
}
