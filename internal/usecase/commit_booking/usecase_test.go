package commit_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CurtBryan/party-lab-sub000/internal/domain"
	"github.com/CurtBryan/party-lab-sub000/internal/infra/cache/draft"
	"github.com/CurtBryan/party-lab-sub000/internal/integrations/payments"
	"github.com/CurtBryan/party-lab-sub000/pkg/ptr"
)

type stubBookingRepo struct {
	existing    []*domain.Booking
	stored      *domain.Booking
	createCalls int
	createErr   error
}

func (s *stubBookingRepo) CreateIdempotent(_ context.Context, b *domain.Booking) (*domain.Booking, bool, error) {
	s.createCalls++
	if s.createErr != nil {
		return nil, false, s.createErr
	}
	if s.stored != nil && s.stored.PaymentRef == b.PaymentRef {
		return s.stored, false, nil
	}
	saved := *b
	saved.ID = 42
	s.stored = &saved
	return &saved, true, nil
}

func (s *stubBookingRepo) GetWithFilter(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	out := s.existing
	if s.stored != nil {
		out = append(out, s.stored)
	}
	return out, nil
}

type stubOverrideRepo struct {
	overrides []*domain.AvailabilityOverride
}

func (s *stubOverrideRepo) GetForDate(_ context.Context, _ time.Time) ([]*domain.AvailabilityOverride, error) {
	return s.overrides, nil
}

type stubDraftCache struct {
	drafts  map[string]*domain.BookingDraft
	cleared []string
}

func (s *stubDraftCache) Load(_ context.Context, sessionID string) (*domain.BookingDraft, error) {
	d, ok := s.drafts[sessionID]
	if !ok {
		return nil, draft.ErrDraftNotFound
	}
	return d, nil
}

func (s *stubDraftCache) Clear(_ context.Context, sessionID string) error {
	s.cleared = append(s.cleared, sessionID)
	delete(s.drafts, sessionID)
	return nil
}

type stubPayments struct {
	state payments.State
	err   error
}

func (s *stubPayments) Status(_ context.Context, _ string) (payments.State, error) {
	return s.state, s.err
}

type stubNotifier struct {
	sends []string
	err   error
}

func (s *stubNotifier) Send(_ context.Context, template string, recipient string, _ map[string]interface{}) error {
	s.sends = append(s.sends, template+":"+recipient)
	return s.err
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func readyDraft() *domain.BookingDraft {
	date := time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC)
	slot := domain.SlotMorning

	d := domain.NewBookingDraft("sess-1", time.Now())
	d.Product = ptr.Ptr(domain.ProductDanceDome)
	d.Date = &date
	d.Slot = &slot
	d.Package = ptr.Ptr(domain.PackagePartyStarter)
	d.AddOns = domain.AddOnSelection{domain.AddOnTablesChairs: true}
	d.Customer = &domain.CustomerInfo{
		Name:                "Dana Whitfield",
		Email:               "dana@example.com",
		Phone:               "405-555-0142",
		EventAddress:        "18 Juniper Ln, Edmond OK",
		SurfaceType:         "grass",
		SetupLocation:       "backyard",
		PowerOutletDistance: "under 50 ft",
		GateWidth:           "4 ft",
		PetsOnPremises:      "no",
	}
	d.ServiceArea = domain.AreaNoSurcharge
	d.PaymentRef = "pi_test_123"
	d.RecalculatePricing()
	return d
}

type fixture struct {
	bookingRepo *stubBookingRepo
	draftCache  *stubDraftCache
	notifier    *stubNotifier
	uc          *UseCase
}

func newFixture(d *domain.BookingDraft, pay *stubPayments, repo *stubBookingRepo, overrides *stubOverrideRepo) *fixture {
	cache := &stubDraftCache{drafts: map[string]*domain.BookingDraft{}}
	if d != nil {
		cache.drafts[d.SessionID] = d
	}
	notif := &stubNotifier{}
	uc := New(repo, overrides, cache, pay, notif, passthroughTxManager{}, "owner@partylab.example", nopLogger{})
	return &fixture{bookingRepo: repo, draftCache: cache, notifier: notif, uc: uc}
}

func TestExecute_HappyPath(t *testing.T) {
	f := newFixture(readyDraft(), &stubPayments{state: payments.StatePaid}, &stubBookingRepo{}, &stubOverrideRepo{})

	resp, err := f.uc.Execute(context.Background(), &Request{SessionID: "sess-1"})
	require.NoError(t, err)

	assert.False(t, resp.AlreadyExisted)
	assert.Equal(t, int64(42), resp.Booking.ID)
	assert.Equal(t, domain.StatusConfirmed, resp.Booking.Status)
	assert.Equal(t, domain.PaymentPaid, resp.Booking.PaymentStatus)
	assert.Equal(t, "pi_test_123", resp.Booking.PaymentRef)
	assert.True(t, resp.Booking.HasTablesChairs)
	assert.False(t, resp.Booking.HasGenerator)

	// Customer and business are both notified, draft is cleared.
	assert.Len(t, f.notifier.sends, 2)
	assert.Contains(t, f.notifier.sends, "booking_confirmation:dana@example.com")
	assert.Contains(t, f.notifier.sends, "booking_notice:owner@partylab.example")
	assert.Equal(t, []string{"sess-1"}, f.draftCache.cleared)
}

func TestExecute_RepeatCommitReturnsSameBooking(t *testing.T) {
	repo := &stubBookingRepo{}
	d := readyDraft()
	f := newFixture(d, &stubPayments{state: payments.StatePaid}, repo, &stubOverrideRepo{})

	first, err := f.uc.Execute(context.Background(), &Request{SessionID: "sess-1"})
	require.NoError(t, err)

	// Simulate a client retry with the draft still cached.
	f.draftCache.drafts["sess-1"] = d

	second, err := f.uc.Execute(context.Background(), &Request{SessionID: "sess-1"})
	require.NoError(t, err)

	assert.True(t, second.AlreadyExisted)
	assert.Equal(t, first.Booking.ID, second.Booking.ID)
	assert.Equal(t, 2, repo.createCalls)
	// The retry does not notify again.
	assert.Len(t, f.notifier.sends, 2)
}

func TestExecute_SlotTakenAfterPayment(t *testing.T) {
	d := readyDraft()
	rival := &domain.Booking{
		Product:    domain.ProductDanceDome,
		EventDate:  *d.Date,
		StartTime:  d.Slot.Start,
		EndTime:    d.Slot.End,
		Status:     domain.StatusConfirmed,
		PaymentRef: "pi_rival",
	}
	repo := &stubBookingRepo{existing: []*domain.Booking{rival}}
	f := newFixture(d, &stubPayments{state: payments.StatePaid}, repo, &stubOverrideRepo{})

	_, err := f.uc.Execute(context.Background(), &Request{SessionID: "sess-1"})

	assert.ErrorIs(t, err, ErrSlotNoLongerAvailable)
	assert.Zero(t, repo.createCalls)
	assert.Empty(t, f.notifier.sends)
	assert.Empty(t, f.draftCache.cleared)
}

func TestExecute_OverrideAddedAfterPayment(t *testing.T) {
	d := readyDraft()
	overrides := &stubOverrideRepo{overrides: []*domain.AvailabilityOverride{
		{Date: *d.Date, Reason: "storm warning"},
	}}
	f := newFixture(d, &stubPayments{state: payments.StatePaid}, &stubBookingRepo{}, overrides)

	_, err := f.uc.Execute(context.Background(), &Request{SessionID: "sess-1"})
	assert.ErrorIs(t, err, ErrSlotNoLongerAvailable)
}

func TestExecute_PaymentNotConfirmed(t *testing.T) {
	tests := []struct {
		name string
		pay  *stubPayments
	}{
		{"pending payment", &stubPayments{state: payments.StatePending}},
		{"failed payment", &stubPayments{state: payments.StateFailed}},
		{"unknown payment", &stubPayments{err: payments.ErrPaymentNotFound}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubBookingRepo{}
			f := newFixture(readyDraft(), tt.pay, repo, &stubOverrideRepo{})

			_, err := f.uc.Execute(context.Background(), &Request{SessionID: "sess-1"})

			assert.ErrorIs(t, err, ErrPaymentNotConfirmed)
			assert.Zero(t, repo.createCalls)
		})
	}
}

func TestExecute_DraftNotReady(t *testing.T) {
	d := readyDraft()
	d.Customer = nil

	f := newFixture(d, &stubPayments{state: payments.StatePaid}, &stubBookingRepo{}, &stubOverrideRepo{})

	_, err := f.uc.Execute(context.Background(), &Request{SessionID: "sess-1"})
	assert.ErrorIs(t, err, ErrDraftNotReady)
}

func TestExecute_OutOfServiceDraftCannotCommit(t *testing.T) {
	d := readyDraft()
	d.ServiceArea = domain.AreaOutOfService

	f := newFixture(d, &stubPayments{state: payments.StatePaid}, &stubBookingRepo{}, &stubOverrideRepo{})

	_, err := f.uc.Execute(context.Background(), &Request{SessionID: "sess-1"})
	assert.ErrorIs(t, err, ErrDraftNotReady)
}

func TestExecute_DraftNotFound(t *testing.T) {
	f := newFixture(nil, &stubPayments{state: payments.StatePaid}, &stubBookingRepo{}, &stubOverrideRepo{})

	_, err := f.uc.Execute(context.Background(), &Request{SessionID: "missing"})
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestExecute_StorageFailureAfterPayment(t *testing.T) {
	repo := &stubBookingRepo{createErr: errors.New("disk full")}
	f := newFixture(readyDraft(), &stubPayments{state: payments.StatePaid}, repo, &stubOverrideRepo{})

	_, err := f.uc.Execute(context.Background(), &Request{SessionID: "sess-1"})

	assert.ErrorIs(t, err, ErrBookingNotRecorded)
	assert.Empty(t, f.notifier.sends)
	assert.Empty(t, f.draftCache.cleared)
}

func TestExecute_NotificationFailureDoesNotFailCommit(t *testing.T) {
	f := newFixture(readyDraft(), &stubPayments{state: payments.StatePaid}, &stubBookingRepo{}, &stubOverrideRepo{})
	f.notifier.err = errors.New("smtp down")

	resp, err := f.uc.Execute(context.Background(), &Request{SessionID: "sess-1"})

	require.NoError(t, err)
	assert.NotNil(t, resp.Booking)
	assert.Equal(t, []string{"sess-1"}, f.draftCache.cleared)
}
