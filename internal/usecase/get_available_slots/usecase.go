package get_available_slots

import (
	"context"
	"fmt"

	"github.com/CurtBryan/party-lab-sub000/internal/domain"
	"github.com/CurtBryan/party-lab-sub000/pkg/ptr"
)

// UseCase бизнес-логика получения доступных слотов для продукта на дату
type UseCase struct {
	bookingRepo  BookingRepository
	overrideRepo OverrideRepository
	log          Logger
}

func New(bookingRepo BookingRepository, overrideRepo OverrideRepository, log Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		overrideRepo: overrideRepo,
		log:          log,
	}
}

// Execute returns the bookable subset of the canonical slot menu for the
// requested product and date. Administrative overrides are applied before the
// booking calendar; a whole-date rule short-circuits with IsBlocked set.
//
// Any storage failure aborts the request instead of degrading to an empty
// slot list, so callers never mistake an outage for a fully booked day.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	overrides, err := uc.overrideRepo.GetForDate(ctx, req.Date)
	if err != nil {
		uc.log.Error("[get_available_slots.Execute] failed to load overrides for %s: %v",
			req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: load overrides: %v", ErrInternal, err)
	}

	if block := dateBlock(req.Product, overrides); block != nil {
		return &Response{
			Product:     req.Product,
			Date:        req.Date,
			Slots:       []string{},
			IsBlocked:   true,
			BlockReason: block.Reason,
		}, nil
	}

	bookings, err := uc.bookingRepo.GetWithFilter(ctx, domain.BookingsFilter{
		Product: ptr.Ptr(req.Product),
		Date:    ptr.Ptr(req.Date),
	})
	if err != nil {
		uc.log.Error("[get_available_slots.Execute] failed to load bookings for %s: %v",
			req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: load bookings: %v", ErrInternal, err)
	}

	menu := domain.SlotMenuForDate(req.Date)
	free := make([]string, 0, len(menu))
	for _, slot := range menu {
		if ok, _ := SlotFree(req.Product, slot, overrides, bookings); ok {
			free = append(free, slot.Label())
		}
	}

	return &Response{
		Product: req.Product,
		Date:    req.Date,
		Slots:   free,
	}, nil
}
