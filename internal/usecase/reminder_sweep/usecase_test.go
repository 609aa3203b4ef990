package reminder_sweep

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CurtBryan/party-lab-sub000/internal/domain"
	"github.com/CurtBryan/party-lab-sub000/pkg/types"
)

type stubBookingRepo struct {
	due       []*domain.Booking
	dueErr    error
	marked    []int64
	markErr   error
	queriedAt time.Time
}

func (s *stubBookingRepo) GetDueForReminder(_ context.Context, eventDate time.Time) ([]*domain.Booking, error) {
	s.queriedAt = eventDate
	if s.dueErr != nil {
		return nil, s.dueErr
	}
	out := make([]*domain.Booking, 0, len(s.due))
	for _, b := range s.due {
		if b.ReminderSentAt == nil {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *stubBookingRepo) MarkReminderSent(_ context.Context, id int64, sentAt time.Time) error {
	if s.markErr != nil {
		return s.markErr
	}
	s.marked = append(s.marked, id)
	for _, b := range s.due {
		if b.ID == id && b.ReminderSentAt == nil {
			at := sentAt
			b.ReminderSentAt = &at
		}
	}
	return nil
}

type stubNotifier struct {
	sends       []string
	customerErr error
	businessErr error
}

func (s *stubNotifier) Send(_ context.Context, template string, recipient string, _ map[string]interface{}) error {
	s.sends = append(s.sends, template+":"+recipient)
	if template == "event_reminder" {
		return s.customerErr
	}
	return s.businessErr
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func dueBooking(id int64, email string) *domain.Booking {
	return &domain.Booking{
		ID:            id,
		Product:       domain.ProductCastleCombo,
		EventDate:     time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC),
		StartTime:     types.TimeString("10:00"),
		EndTime:       types.TimeString("14:00"),
		Status:        domain.StatusConfirmed,
		CustomerEmail: email,
		PaymentStatus: domain.PaymentPaid,
		Total:         350,
		Deposit:       100,
	}
}

func newUseCase(repo *stubBookingRepo, notif *stubNotifier) *UseCase {
	now := fixedTime{now: time.Date(2025, 10, 16, 9, 30, 0, 0, time.UTC)}
	return New(repo, notif, now, "owner@partylab.example", nopLogger{})
}

func TestExecute_QueriesLeadDateAtMidnight(t *testing.T) {
	repo := &stubBookingRepo{}
	uc := newUseCase(repo, &stubNotifier{})

	_, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC), repo.queriedAt)
}

func TestExecute_RemindsAndMarks(t *testing.T) {
	repo := &stubBookingRepo{due: []*domain.Booking{
		dueBooking(1, "a@example.com"),
		dueBooking(2, "b@example.com"),
	}}
	notif := &stubNotifier{}
	uc := newUseCase(repo, notif)

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, 2, resp.Successful)
	assert.Zero(t, resp.Failed)
	assert.Equal(t, []int64{1, 2}, repo.marked)
	// Customer reminder and business notice per booking.
	assert.Len(t, notif.sends, 4)
	assert.Contains(t, notif.sends, "event_reminder:a@example.com")
	assert.Contains(t, notif.sends, "reminder_notice:owner@partylab.example")
}

func TestExecute_SecondSweepFindsNothing(t *testing.T) {
	repo := &stubBookingRepo{due: []*domain.Booking{dueBooking(1, "a@example.com")}}
	uc := newUseCase(repo, &stubNotifier{})

	first, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)
	require.Equal(t, 1, first.Successful)

	second, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)

	assert.Zero(t, second.Total)
	assert.Len(t, repo.marked, 1)
}

func TestExecute_PartialSendStillMarks(t *testing.T) {
	repo := &stubBookingRepo{due: []*domain.Booking{dueBooking(1, "a@example.com")}}
	notif := &stubNotifier{customerErr: errors.New("mailbox full")}
	uc := newUseCase(repo, notif)

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Successful)
	assert.Equal(t, []int64{1}, repo.marked)
}

func TestExecute_BothSendsFailingLeavesUnmarked(t *testing.T) {
	repo := &stubBookingRepo{due: []*domain.Booking{dueBooking(1, "a@example.com")}}
	notif := &stubNotifier{
		customerErr: errors.New("smtp down"),
		businessErr: errors.New("smtp down"),
	}
	uc := newUseCase(repo, notif)

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Failed)
	assert.Zero(t, resp.Successful)
	assert.Empty(t, repo.marked)

	// The booking stays eligible for the next sweep.
	next, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)
	assert.Equal(t, 1, next.Total)
}

func TestExecute_StorageError(t *testing.T) {
	repo := &stubBookingRepo{dueErr: errors.New("connection refused")}
	uc := newUseCase(repo, &stubNotifier{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInternal)
}
