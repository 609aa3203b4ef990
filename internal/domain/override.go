package domain

import "time"

// AvailabilityOverride is an administrative denial rule layered on top of
// reservation-based conflict checking. It is not a reservation: a matching
// override denies availability outright, regardless of bookings.
// Nil Product means all products; nil SlotLabel means all slots on the date.
type AvailabilityOverride struct {
	ID        int64
	Date      time.Time
	Product   *Product
	SlotLabel *string // метка слота вида "17:00-21:00"
	Reason    string
	CreatedAt time.Time
}

// Matches возвращает true, если правило запрещает указанный слот продукта.
// Правило без продукта действует на все продукты, правило без слота - на
// все слоты даты.
func (o *AvailabilityOverride) Matches(product Product, slot TimeSlot) bool {
	if o.Product != nil && *o.Product != product {
		return false
	}
	if o.SlotLabel != nil && *o.SlotLabel != slot.Label() {
		return false
	}
	return true
}

// DeniesWholeDate возвращает true, если правило закрывает дату целиком
// для указанного продукта
func (o *AvailabilityOverride) DeniesWholeDate(product Product) bool {
	if o.Product != nil && *o.Product != product {
		return false
	}
	return o.SlotLabel == nil
}
