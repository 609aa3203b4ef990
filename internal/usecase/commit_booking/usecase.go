package commit_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/CurtBryan/party-lab-sub000/internal/domain"
	"github.com/CurtBryan/party-lab-sub000/internal/infra/cache/draft"
	"github.com/CurtBryan/party-lab-sub000/internal/integrations/notifier"
	"github.com/CurtBryan/party-lab-sub000/internal/integrations/payments"
	"github.com/CurtBryan/party-lab-sub000/internal/usecase/get_available_slots"
	"github.com/CurtBryan/party-lab-sub000/pkg/ptr"
)

// UseCase бизнес-логика коммита бронирования: превращает оплаченный
// черновик в долговременную запись
type UseCase struct {
	bookingRepo       BookingRepository
	overrideRepo      OverrideRepository
	draftCache        DraftCache
	paymentsClient    PaymentsClient
	notifierClient    NotifierClient
	txManager         TxManager
	businessRecipient string
	log               Logger
}

func New(
	bookingRepo BookingRepository,
	overrideRepo OverrideRepository,
	draftCache DraftCache,
	paymentsClient PaymentsClient,
	notifierClient NotifierClient,
	txManager TxManager,
	businessRecipient string,
	log Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:       bookingRepo,
		overrideRepo:      overrideRepo,
		draftCache:        draftCache,
		paymentsClient:    paymentsClient,
		notifierClient:    notifierClient,
		txManager:         txManager,
		businessRecipient: businessRecipient,
		log:               log,
	}
}

// Execute commits a paid draft into a booking row.
//
// The deposit is verified with the payment provider first, then the slot is
// re-checked and the row inserted inside one serializable transaction, so two
// customers paying for the same slot cannot both get a confirmed booking.
// The insert is keyed by the payment reference, which makes retries of the
// same commit return the original booking instead of a duplicate.
//
// Notifications and draft cleanup run after the transaction and never fail
// the commit.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || req.SessionID == "" {
		return nil, fmt.Errorf("%w: session id is required", ErrInvalidInput)
	}

	d, err := uc.draftCache.Load(ctx, req.SessionID)
	if err != nil {
		if errors.Is(err, draft.ErrDraftNotFound) {
			return nil, fmt.Errorf("%w: session %s", ErrDraftNotFound, req.SessionID)
		}
		uc.log.Error("[commit_booking.Execute] failed to load draft %s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: load draft: %v", ErrInternal, err)
	}

	if !d.ReadyToCommit() {
		return nil, fmt.Errorf("%w: session %s", ErrDraftNotReady, req.SessionID)
	}

	state, err := uc.paymentsClient.Status(ctx, d.PaymentRef)
	if err != nil {
		if errors.Is(err, payments.ErrPaymentNotFound) {
			return nil, fmt.Errorf("%w: payment %s not found", ErrPaymentNotConfirmed, d.PaymentRef)
		}
		uc.log.Error("[commit_booking.Execute] failed to check payment %s: %v", d.PaymentRef, err)
		return nil, fmt.Errorf("%w: check payment: %v", ErrInternal, err)
	}
	if state != payments.StatePaid {
		return nil, fmt.Errorf("%w: payment %s is %s", ErrPaymentNotConfirmed, d.PaymentRef, state)
	}

	candidate := bookingFromDraft(d)

	var (
		saved   *domain.Booking
		created bool
	)
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		overrides, err := uc.overrideRepo.GetForDate(txCtx, *d.Date)
		if err != nil {
			return fmt.Errorf("%w: load overrides: %v", ErrInternal, err)
		}

		// Внутри транзакции выборка берет блокировку строк этой даты
		sameDay, err := uc.bookingRepo.GetWithFilter(txCtx, domain.BookingsFilter{
			Product: ptr.Ptr(*d.Product),
			Date:    ptr.Ptr(*d.Date),
		})
		if err != nil {
			return fmt.Errorf("%w: load bookings: %v", ErrInternal, err)
		}

		// Повтор коммита не должен конфликтовать со своей же записью
		others := make([]*domain.Booking, 0, len(sameDay))
		for _, b := range sameDay {
			if b.PaymentRef == d.PaymentRef {
				continue
			}
			others = append(others, b)
		}

		if ok, reason := get_available_slots.SlotFree(*d.Product, *d.Slot, overrides, others); !ok {
			uc.log.Error("[commit_booking.Execute] slot taken after payment, deposit %s needs refund: %s",
				d.PaymentRef, reason)
			return fmt.Errorf("%w: %s", ErrSlotNoLongerAvailable, reason)
		}

		saved, created, err = uc.bookingRepo.CreateIdempotent(txCtx, candidate)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrBookingNotRecorded, err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrBookingNotRecorded) {
			// Деньги списаны, записи нет. Оператор должен вмешаться
			uc.log.Error("[commit_booking.Execute] PAYMENT WITHOUT BOOKING: payment %s, session %s: %v",
				d.PaymentRef, req.SessionID, err)
		}
		return nil, err
	}

	if created {
		uc.notify(ctx, saved)
	}

	if err := uc.draftCache.Clear(ctx, req.SessionID); err != nil {
		uc.log.Warn("[commit_booking.Execute] failed to clear draft %s: %v", req.SessionID, err)
	}

	return &Response{
		Booking:        saved,
		AlreadyExisted: !created,
	}, nil
}

// notify отправляет подтверждение заказчику и уведомление бизнесу.
// Отправки независимы: сбой одной не мешает другой и не мешает коммиту
func (uc *UseCase) notify(ctx context.Context, b *domain.Booking) {
	data := map[string]interface{}{
		"bookingId":    b.ID,
		"customerName": b.CustomerName,
		"product":      string(b.Product),
		"package":      string(b.Package),
		"eventDate":    b.EventDate.Format(domain.DateFormat),
		"slot":         b.Slot().Label(),
		"address":      b.EventAddress,
		"total":        b.Total,
		"deposit":      b.Deposit,
		"balanceDue":   b.Total - b.Deposit,
	}

	if err := uc.notifierClient.Send(ctx, notifier.TemplateBookingConfirmation, b.CustomerEmail, data); err != nil {
		uc.log.Warn("[commit_booking.notify] failed to send confirmation for booking %d: %v", b.ID, err)
	}

	if err := uc.notifierClient.Send(ctx, notifier.TemplateBookingNotice, uc.businessRecipient, data); err != nil {
		uc.log.Warn("[commit_booking.notify] failed to send business notice for booking %d: %v", b.ID, err)
	}
}

// bookingFromDraft собирает денормализованный снимок черновика
func bookingFromDraft(d *domain.BookingDraft) *domain.Booking {
	addOns := d.AddOns.FilterEligible(*d.Package)

	return &domain.Booking{
		Product:   *d.Product,
		Package:   *d.Package,
		EventDate: *d.Date,
		StartTime: d.Slot.Start,
		EndTime:   d.Slot.End,
		Status:    domain.StatusConfirmed,

		CustomerName:  d.Customer.Name,
		CustomerEmail: d.Customer.Email,
		CustomerPhone: d.Customer.Phone,
		EventAddress:  d.Customer.EventAddress,

		HasGenerator:    addOns[domain.AddOnGenerator],
		HasTablesChairs: addOns[domain.AddOnTablesChairs],
		HasCottonCandy:  addOns[domain.AddOnCottonCandy],
		HasLEDLighting:  addOns[domain.AddOnLEDLighting],

		SurfaceType:         d.Customer.SurfaceType,
		SetupLocation:       d.Customer.SetupLocation,
		PowerOutletDistance: d.Customer.PowerOutletDistance,
		GateWidth:           d.Customer.GateWidth,
		PetsOnPremises:      d.Customer.PetsOnPremises,

		Subtotal: d.Pricing.Subtotal,
		Deposit:  d.Pricing.Deposit,
		Total:    d.Pricing.Total,

		PaymentRef:    d.PaymentRef,
		PaymentStatus: domain.PaymentPaid,
	}
}
