package drafts

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CurtBryan/party-lab-sub000/internal/domain"
	draftCache "github.com/CurtBryan/party-lab-sub000/internal/infra/cache/draft"
	"github.com/CurtBryan/party-lab-sub000/internal/integrations/payments"
	"github.com/CurtBryan/party-lab-sub000/internal/service/drafts/models"
	"github.com/CurtBryan/party-lab-sub000/internal/usecase/evaluate_service_area"
	"github.com/CurtBryan/party-lab-sub000/internal/usecase/get_available_slots"
	"github.com/CurtBryan/party-lab-sub000/pkg/ptr"
)

type memoryCache struct {
	drafts map[string]*domain.BookingDraft
	saves  int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{drafts: map[string]*domain.BookingDraft{}}
}

func (m *memoryCache) Save(_ context.Context, d *domain.BookingDraft) error {
	copied := *d
	m.drafts[d.SessionID] = &copied
	m.saves++
	return nil
}

func (m *memoryCache) Load(_ context.Context, sessionID string) (*domain.BookingDraft, error) {
	d, ok := m.drafts[sessionID]
	if !ok {
		return nil, draftCache.ErrDraftNotFound
	}
	copied := *d
	return &copied, nil
}

func (m *memoryCache) Clear(_ context.Context, sessionID string) error {
	delete(m.drafts, sessionID)
	return nil
}

type stubSlots struct {
	resp *get_available_slots.Response
}

func (s *stubSlots) Execute(_ context.Context, req *get_available_slots.Request) (*get_available_slots.Response, error) {
	resp := *s.resp
	resp.Product = req.Product
	resp.Date = req.Date
	return &resp, nil
}

type stubArea struct {
	resp *evaluate_service_area.Response
}

func (s *stubArea) Execute(_ context.Context, _ *evaluate_service_area.Request) (*evaluate_service_area.Response, error) {
	return s.resp, nil
}

type stubPayments struct {
	authorized []float64
}

func (s *stubPayments) Authorize(_ context.Context, amount float64) (*payments.Authorization, error) {
	s.authorized = append(s.authorized, amount)
	return &payments.Authorization{Reference: "pi_test_1", ClientSecret: "secret_1"}, nil
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	cache    *memoryCache
	slots    *stubSlots
	area     *stubArea
	payments *stubPayments
	svc      *Service
}

func newFixture() *fixture {
	f := &fixture{
		cache: newMemoryCache(),
		slots: &stubSlots{resp: &get_available_slots.Response{
			Slots: []string{"10:00-14:00", "12:00-16:00", "13:00-17:00", "17:00-21:00"},
		}},
		area:     &stubArea{resp: &evaluate_service_area.Response{Status: domain.AreaNoSurcharge, DistanceMiles: 12.3}},
		payments: &stubPayments{},
	}
	f.svc = NewService(f.cache, f.slots, f.area, f.payments,
		fixedTime{now: time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)}, nopLogger{})
	return f
}

func (f *fixture) apply(t *testing.T, sessionID string, req *models.ApplyActionRequest) *models.DraftResponse {
	t.Helper()
	resp, err := f.svc.Apply(context.Background(), sessionID, req)
	require.NoError(t, err)
	return resp
}

func customerPayload() *models.CustomerInfo {
	return &models.CustomerInfo{
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
}

func TestStart(t *testing.T) {
	f := newFixture()

	resp, err := f.svc.Start(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.SessionID)
	assert.Equal(t, 1, resp.Step)
	assert.False(t, resp.ReadyToCommit)
	assert.Contains(t, f.cache.drafts, resp.SessionID)
}

func TestApply_FullWizardFlow(t *testing.T) {
	f := newFixture()
	start, err := f.svc.Start(context.Background())
	require.NoError(t, err)
	id := start.SessionID

	resp := f.apply(t, id, &models.ApplyActionRequest{
		Action:  models.ActionUpdateProduct,
		Product: ptr.Ptr("Dance Dome"),
	})
	assert.Equal(t, "Dance Dome", *resp.Product)

	resp = f.apply(t, id, &models.ApplyActionRequest{
		Action: models.ActionUpdateDateTime,
		Date:   ptr.Ptr("2025-10-18"),
		Slot:   ptr.Ptr("10:00-14:00"),
	})
	assert.Equal(t, "10:00-14:00", *resp.Slot)

	resp = f.apply(t, id, &models.ApplyActionRequest{
		Action:  models.ActionUpdatePackage,
		Package: ptr.Ptr("Party Starter"),
	})
	assert.Equal(t, 250.0, resp.Pricing.BasePackagePrice)

	resp = f.apply(t, id, &models.ApplyActionRequest{
		Action: models.ActionUpdateAddOns,
		AddOns: map[string]bool{"tablesChairs": true},
	})
	assert.Equal(t, 50.0, resp.Pricing.AddOnTotal)
	assert.Equal(t, 300.0, resp.Pricing.Subtotal)

	resp = f.apply(t, id, &models.ApplyActionRequest{
		Action:   models.ActionUpdateCustomer,
		Customer: customerPayload(),
	})
	assert.Equal(t, "no_surcharge", resp.ServiceArea)
	assert.Zero(t, resp.Pricing.TripCharge)

	resp = f.apply(t, id, &models.ApplyActionRequest{Action: models.ActionInitiatePayment})
	assert.Equal(t, "pi_test_1", resp.PaymentRef)
	assert.Equal(t, "secret_1", resp.PaymentClientSecret)
	assert.True(t, resp.ReadyToCommit)
	assert.Equal(t, []float64{domain.DepositAmount}, f.payments.authorized)
}

func TestApply_PackageSwitchDropsStaleAddOnPrice(t *testing.T) {
	f := newFixture()
	start, _ := f.svc.Start(context.Background())
	id := start.SessionID

	f.apply(t, id, &models.ApplyActionRequest{Action: models.ActionUpdateProduct, Product: ptr.Ptr("Castle Combo")})
	f.apply(t, id, &models.ApplyActionRequest{Action: models.ActionUpdatePackage, Package: ptr.Ptr("Party Starter")})
	withAddOn := f.apply(t, id, &models.ApplyActionRequest{
		Action: models.ActionUpdateAddOns,
		AddOns: map[string]bool{"tablesChairs": true},
	})
	require.Equal(t, 350.0, withAddOn.Pricing.Subtotal)

	// Ultimate Bash includes tables and chairs, so the add-on no longer
	// contributes to the price.
	switched := f.apply(t, id, &models.ApplyActionRequest{
		Action:  models.ActionUpdatePackage,
		Package: ptr.Ptr("Ultimate Bash"),
	})

	assert.Equal(t, 650.0, switched.Pricing.BasePackagePrice)
	assert.Zero(t, switched.Pricing.AddOnTotal)
	assert.Equal(t, 650.0, switched.Pricing.Subtotal)
}

func TestApply_SurchargeAddressAddsTripCharge(t *testing.T) {
	f := newFixture()
	f.area.resp = &evaluate_service_area.Response{
		Status:        domain.AreaSurcharge,
		DistanceMiles: 32.5,
		TripSurcharge: domain.TripSurcharge,
	}

	start, _ := f.svc.Start(context.Background())
	id := start.SessionID

	f.apply(t, id, &models.ApplyActionRequest{Action: models.ActionUpdateProduct, Product: ptr.Ptr("Dance Dome")})
	f.apply(t, id, &models.ApplyActionRequest{Action: models.ActionUpdatePackage, Package: ptr.Ptr("Party Starter")})
	resp := f.apply(t, id, &models.ApplyActionRequest{
		Action:   models.ActionUpdateCustomer,
		Customer: customerPayload(),
	})

	assert.Equal(t, "surcharge", resp.ServiceArea)
	assert.Equal(t, domain.TripSurcharge, resp.Pricing.TripCharge)
	assert.Equal(t, resp.Pricing.Subtotal+domain.TripSurcharge, resp.Pricing.Total)
	assert.Equal(t, 32.5, *resp.DistanceMiles)
}

func TestApply_UnavailableSlotRejected(t *testing.T) {
	f := newFixture()
	f.slots.resp = &get_available_slots.Response{Slots: []string{"17:00-21:00"}}

	start, _ := f.svc.Start(context.Background())
	id := start.SessionID

	f.apply(t, id, &models.ApplyActionRequest{Action: models.ActionUpdateProduct, Product: ptr.Ptr("Dance Dome")})

	_, err := f.svc.Apply(context.Background(), id, &models.ApplyActionRequest{
		Action: models.ActionUpdateDateTime,
		Date:   ptr.Ptr("2025-10-14"),
		Slot:   ptr.Ptr("10:00-14:00"),
	})

	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestApply_BlockedDateRejected(t *testing.T) {
	f := newFixture()
	f.slots.resp = &get_available_slots.Response{IsBlocked: true, BlockReason: "maintenance day", Slots: []string{}}

	start, _ := f.svc.Start(context.Background())
	id := start.SessionID

	f.apply(t, id, &models.ApplyActionRequest{Action: models.ActionUpdateProduct, Product: ptr.Ptr("Dance Dome")})

	_, err := f.svc.Apply(context.Background(), id, &models.ApplyActionRequest{
		Action: models.ActionUpdateDateTime,
		Date:   ptr.Ptr("2025-10-18"),
		Slot:   ptr.Ptr("10:00-14:00"),
	})

	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestApply_IneligibleAddOnRejected(t *testing.T) {
	f := newFixture()
	start, _ := f.svc.Start(context.Background())
	id := start.SessionID

	f.apply(t, id, &models.ApplyActionRequest{Action: models.ActionUpdateProduct, Product: ptr.Ptr("Dance Dome")})
	// Ultimate Bash already includes tables and chairs.
	f.apply(t, id, &models.ApplyActionRequest{Action: models.ActionUpdatePackage, Package: ptr.Ptr("Ultimate Bash")})

	_, err := f.svc.Apply(context.Background(), id, &models.ApplyActionRequest{
		Action: models.ActionUpdateAddOns,
		AddOns: map[string]bool{"tablesChairs": true},
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestApply_OutOfServiceBlocksPayment(t *testing.T) {
	f := newFixture()
	f.area.resp = &evaluate_service_area.Response{Status: domain.AreaOutOfService, DistanceMiles: 62}

	start, _ := f.svc.Start(context.Background())
	id := start.SessionID

	f.apply(t, id, &models.ApplyActionRequest{Action: models.ActionUpdateProduct, Product: ptr.Ptr("Dance Dome")})
	f.apply(t, id, &models.ApplyActionRequest{Action: models.ActionUpdateDateTime, Date: ptr.Ptr("2025-10-18"), Slot: ptr.Ptr("10:00-14:00")})
	f.apply(t, id, &models.ApplyActionRequest{Action: models.ActionUpdatePackage, Package: ptr.Ptr("Party Starter")})
	f.apply(t, id, &models.ApplyActionRequest{Action: models.ActionUpdateCustomer, Customer: customerPayload()})

	_, err := f.svc.Apply(context.Background(), id, &models.ApplyActionRequest{Action: models.ActionInitiatePayment})

	assert.ErrorIs(t, err, ErrOutOfServiceArea)
	assert.Empty(t, f.payments.authorized)
}

func TestApply_RepeatInitiatePaymentIsIdempotent(t *testing.T) {
	f := newFixture()
	start, _ := f.svc.Start(context.Background())
	id := start.SessionID

	f.apply(t, id, &models.ApplyActionRequest{Action: models.ActionUpdateProduct, Product: ptr.Ptr("Dance Dome")})
	f.apply(t, id, &models.ApplyActionRequest{Action: models.ActionUpdateDateTime, Date: ptr.Ptr("2025-10-18"), Slot: ptr.Ptr("10:00-14:00")})
	f.apply(t, id, &models.ApplyActionRequest{Action: models.ActionUpdatePackage, Package: ptr.Ptr("Party Starter")})
	f.apply(t, id, &models.ApplyActionRequest{Action: models.ActionUpdateCustomer, Customer: customerPayload()})

	first := f.apply(t, id, &models.ApplyActionRequest{Action: models.ActionInitiatePayment})
	second := f.apply(t, id, &models.ApplyActionRequest{Action: models.ActionInitiatePayment})

	assert.Equal(t, first.PaymentRef, second.PaymentRef)
	assert.Len(t, f.payments.authorized, 1)
}

func TestApply_UpdateTripChargeReclassifiesStoredAddress(t *testing.T) {
	f := newFixture()
	start, _ := f.svc.Start(context.Background())
	id := start.SessionID

	f.apply(t, id, &models.ApplyActionRequest{Action: models.ActionUpdateProduct, Product: ptr.Ptr("Dance Dome")})
	f.apply(t, id, &models.ApplyActionRequest{Action: models.ActionUpdatePackage, Package: ptr.Ptr("Party Starter")})
	resp := f.apply(t, id, &models.ApplyActionRequest{Action: models.ActionUpdateCustomer, Customer: customerPayload()})
	require.Equal(t, "no_surcharge", resp.ServiceArea)
	require.Zero(t, resp.Pricing.TripCharge)

	// The depot moved the customer into the surcharge band since the
	// address was first evaluated.
	f.area.resp = &evaluate_service_area.Response{
		Status:        domain.AreaSurcharge,
		DistanceMiles: 31.0,
		TripSurcharge: domain.TripSurcharge,
	}

	resp = f.apply(t, id, &models.ApplyActionRequest{Action: models.ActionUpdateTripCharge})

	assert.Equal(t, "surcharge", resp.ServiceArea)
	assert.Equal(t, domain.TripSurcharge, resp.Pricing.TripCharge)
	assert.Equal(t, 31.0, *resp.DistanceMiles)
}

func TestApply_UpdateTripChargeRequiresCustomer(t *testing.T) {
	f := newFixture()
	start, _ := f.svc.Start(context.Background())

	_, err := f.svc.Apply(context.Background(), start.SessionID,
		&models.ApplyActionRequest{Action: models.ActionUpdateTripCharge})

	assert.ErrorIs(t, err, ErrStepNotReady)
}

func TestApply_UpdatePaymentLinkage(t *testing.T) {
	f := newFixture()
	start, _ := f.svc.Start(context.Background())
	id := start.SessionID

	f.apply(t, id, &models.ApplyActionRequest{Action: models.ActionUpdateProduct, Product: ptr.Ptr("Dance Dome")})
	f.apply(t, id, &models.ApplyActionRequest{Action: models.ActionUpdateDateTime, Date: ptr.Ptr("2025-10-18"), Slot: ptr.Ptr("10:00-14:00")})
	f.apply(t, id, &models.ApplyActionRequest{Action: models.ActionUpdatePackage, Package: ptr.Ptr("Party Starter")})
	f.apply(t, id, &models.ApplyActionRequest{Action: models.ActionUpdateCustomer, Customer: customerPayload()})

	resp := f.apply(t, id, &models.ApplyActionRequest{
		Action:     models.ActionUpdatePaymentLinkage,
		PaymentRef: ptr.Ptr("pi_external_9"),
	})

	assert.Equal(t, "pi_external_9", resp.PaymentRef)
	assert.True(t, resp.ReadyToCommit)
	// No authorization was created on our side.
	assert.Empty(t, f.payments.authorized)
}

func TestApply_UpdatePaymentLinkageRequiresCompleteWizard(t *testing.T) {
	f := newFixture()
	start, _ := f.svc.Start(context.Background())
	id := start.SessionID

	f.apply(t, id, &models.ApplyActionRequest{Action: models.ActionUpdateProduct, Product: ptr.Ptr("Dance Dome")})

	_, err := f.svc.Apply(context.Background(), id, &models.ApplyActionRequest{
		Action:     models.ActionUpdatePaymentLinkage,
		PaymentRef: ptr.Ptr("pi_external_9"),
	})

	assert.ErrorIs(t, err, ErrStepNotReady)
}

func TestApply_Navigation(t *testing.T) {
	f := newFixture()
	start, _ := f.svc.Start(context.Background())
	id := start.SessionID

	// Cannot advance past an incomplete step.
	_, err := f.svc.Apply(context.Background(), id, &models.ApplyActionRequest{Action: models.ActionNext})
	assert.ErrorIs(t, err, ErrStepNotReady)

	f.apply(t, id, &models.ApplyActionRequest{Action: models.ActionUpdateProduct, Product: ptr.Ptr("Dance Dome")})

	resp := f.apply(t, id, &models.ApplyActionRequest{Action: models.ActionNext})
	assert.Equal(t, 2, resp.Step)

	resp = f.apply(t, id, &models.ApplyActionRequest{Action: models.ActionPrevious})
	assert.Equal(t, 1, resp.Step)

	// Cannot jump ahead over incomplete steps.
	_, err = f.svc.Apply(context.Background(), id, &models.ApplyActionRequest{
		Action: models.ActionGoTo,
		Step:   ptr.Ptr(5),
	})
	assert.ErrorIs(t, err, ErrStepNotReady)

	// The confirmation step is not reachable through navigation.
	_, err = f.svc.Apply(context.Background(), id, &models.ApplyActionRequest{
		Action: models.ActionGoTo,
		Step:   ptr.Ptr(int(domain.StepConfirmation)),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestApply_ResetClearsEverything(t *testing.T) {
	f := newFixture()
	start, _ := f.svc.Start(context.Background())
	id := start.SessionID

	f.apply(t, id, &models.ApplyActionRequest{Action: models.ActionUpdateProduct, Product: ptr.Ptr("Dance Dome")})
	f.apply(t, id, &models.ApplyActionRequest{Action: models.ActionUpdatePackage, Package: ptr.Ptr("Party Starter")})

	resp := f.apply(t, id, &models.ApplyActionRequest{Action: models.ActionReset})

	assert.Equal(t, id, resp.SessionID)
	assert.Equal(t, 1, resp.Step)
	assert.Nil(t, resp.Product)
	assert.Zero(t, resp.Pricing.Subtotal)
}

func TestApply_UnknownAction(t *testing.T) {
	f := newFixture()
	start, _ := f.svc.Start(context.Background())

	_, err := f.svc.Apply(context.Background(), start.SessionID, &models.ApplyActionRequest{Action: "explode"})
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestGet_MissingDraft(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Get(context.Background(), "no-such-session")
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestDelete(t *testing.T) {
	f := newFixture()
	start, _ := f.svc.Start(context.Background())

	require.NoError(t, f.svc.Delete(context.Background(), start.SessionID))

	_, err := f.svc.Get(context.Background(), start.SessionID)
	assert.ErrorIs(t, err, ErrDraftNotFound)
}
