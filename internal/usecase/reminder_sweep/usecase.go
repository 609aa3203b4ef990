package reminder_sweep

import (
	"context"
	"fmt"
	"time"

	"github.com/CurtBryan/party-lab-sub000/internal/domain"
	"github.com/CurtBryan/party-lab-sub000/internal/integrations/notifier"
)

// UseCase бизнес-логика развертки напоминаний о предстоящих мероприятиях
type UseCase struct {
	bookingRepo       BookingRepository
	notifierClient    NotifierClient
	timeProvider      TimeProvider
	businessRecipient string
	log               Logger
}

func New(
	bookingRepo BookingRepository,
	notifierClient NotifierClient,
	timeProvider TimeProvider,
	businessRecipient string,
	log Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:       bookingRepo,
		notifierClient:    notifierClient,
		timeProvider:      timeProvider,
		businessRecipient: businessRecipient,
		log:               log,
	}
}

// Execute finds confirmed paid bookings whose event is exactly the reminder
// lead time away and sends the customer and business reminders. A booking is
// marked as reminded when at least one of the two sends goes through, and
// the mark guard in storage keeps repeated sweeps from reminding twice.
func (uc *UseCase) Execute(ctx context.Context, _ *Request) (*Response, error) {
	now := uc.timeProvider.Now()
	eventDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, domain.ReminderLeadDays)

	due, err := uc.bookingRepo.GetDueForReminder(ctx, eventDate)
	if err != nil {
		uc.log.Error("[reminder_sweep.Execute] failed to load bookings for %s: %v",
			eventDate.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: load bookings: %v", ErrInternal, err)
	}

	resp := &Response{Total: len(due)}
	for _, b := range due {
		if uc.remind(ctx, b) {
			resp.Successful++
			if err := uc.bookingRepo.MarkReminderSent(ctx, b.ID, now); err != nil {
				uc.log.Error("[reminder_sweep.Execute] failed to mark booking %d as reminded: %v", b.ID, err)
			}
		} else {
			resp.Failed++
		}
	}

	uc.log.Info("[reminder_sweep.Execute] swept %d bookings for %s: %d reminded, %d failed",
		resp.Total, eventDate.Format(domain.DateFormat), resp.Successful, resp.Failed)

	return resp, nil
}

// remind отправляет напоминание заказчику и уведомление бизнесу.
// Возвращает true, если хотя бы одна отправка удалась
func (uc *UseCase) remind(ctx context.Context, b *domain.Booking) bool {
	data := map[string]interface{}{
		"bookingId":    b.ID,
		"customerName": b.CustomerName,
		"product":      string(b.Product),
		"eventDate":    b.EventDate.Format(domain.DateFormat),
		"slot":         b.Slot().Label(),
		"address":      b.EventAddress,
		"balanceDue":   b.Total - b.Deposit,
	}

	customerErr := uc.notifierClient.Send(ctx, notifier.TemplateEventReminder, b.CustomerEmail, data)
	if customerErr != nil {
		uc.log.Warn("[reminder_sweep.remind] failed to remind customer for booking %d: %v", b.ID, customerErr)
	}

	businessErr := uc.notifierClient.Send(ctx, notifier.TemplateReminderNotice, uc.businessRecipient, data)
	if businessErr != nil {
		uc.log.Warn("[reminder_sweep.remind] failed to notify business for booking %d: %v", b.ID, businessErr)
	}

	return customerErr == nil || businessErr == nil
}
