package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CurtBryan/party-lab-sub000/pkg/ptr"
)

// TestExtraHoursCost проверяет ступенчатую формулу дополнительных часов
func TestExtraHoursCost(t *testing.T) {
	tests := []struct {
		name       string
		extraHours int
		want       float64
	}{
		{name: "zero hours", extraHours: 0, want: 0},
		{name: "one hour is the first hour rate", extraHours: 1, want: 50},
		{name: "two hours", extraHours: 2, want: 125},
		{name: "three hours", extraHours: 3, want: 200},
		{name: "five hours", extraHours: 5, want: 350},
		{name: "negative clamps to zero", extraHours: -1, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtraHoursCost(tt.extraHours))
		})
	}
}

// TestBasePackagePrice проверяет таблицу базовых цен:
// льготная цена для Dance Dome, общая для остальных продуктов
func TestBasePackagePrice(t *testing.T) {
	tests := []struct {
		name    string
		product Product
		pkg     Package
		want    float64
	}{
		{name: "dome discounted starter", product: ProductDanceDome, pkg: PackagePartyStarter, want: 250},
		{name: "castle standard starter", product: ProductCastleCombo, pkg: PackagePartyStarter, want: 300},
		{name: "slide shares standard price", product: ProductMegaSlide, pkg: PackagePartyStarter, want: 300},
		{name: "dome discounted pro", product: ProductDanceDome, pkg: PackageCelebrationPro, want: 450},
		{name: "castle standard pro", product: ProductCastleCombo, pkg: PackageCelebrationPro, want: 500},
		{name: "dome discounted bash", product: ProductDanceDome, pkg: PackageUltimateBash, want: 600},
		{name: "slide standard bash", product: ProductMegaSlide, pkg: PackageUltimateBash, want: 650},
		{name: "unknown package", product: ProductDanceDome, pkg: Package("Mystery"), want: 0},
		{name: "unknown product", product: Product("Trampoline"), pkg: PackagePartyStarter, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BasePackagePrice(tt.product, tt.pkg))
		})
	}
}

// TestAddOnTotal проверяет, что недоступные для пакета дополнения
// не попадают в сумму даже при устаревшем включенном флаге
func TestAddOnTotal(t *testing.T) {
	tests := []struct {
		name      string
		selection AddOnSelection
		pkg       Package
		want      float64
	}{
		{
			name:      "empty selection",
			selection: AddOnSelection{},
			pkg:       PackagePartyStarter,
			want:      0,
		},
		{
			name:      "all addons on starter",
			selection: AddOnSelection{AddOnGenerator: true, AddOnTablesChairs: true, AddOnCottonCandy: true, AddOnLEDLighting: true},
			pkg:       PackagePartyStarter,
			want:      230,
		},
		{
			name:      "stale led flag contributes zero on pro",
			selection: AddOnSelection{AddOnLEDLighting: true, AddOnGenerator: true},
			pkg:       PackageCelebrationPro,
			want:      75,
		},
		{
			name:      "stale tables flag contributes zero on bash",
			selection: AddOnSelection{AddOnTablesChairs: true, AddOnCottonCandy: true},
			pkg:       PackageUltimateBash,
			want:      65,
		},
		{
			name:      "off toggles contribute nothing",
			selection: AddOnSelection{AddOnGenerator: false, AddOnCottonCandy: true},
			pkg:       PackagePartyStarter,
			want:      65,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AddOnTotal(tt.selection, tt.pkg))
		})
	}
}

// TestTripCharge проверяет границы зон доставки
func TestTripCharge(t *testing.T) {
	assert.Equal(t, 0.0, TripCharge(0))
	assert.Equal(t, 0.0, TripCharge(24.9))
	assert.Equal(t, 0.0, TripCharge(25.0))
	assert.Equal(t, 50.0, TripCharge(25.1))
	assert.Equal(t, 50.0, TripCharge(30.0))
	assert.Equal(t, 50.0, TripCharge(50.0))
}

// TestPricingScenarioStarterDome сценарий: Dance Dome + Party Starter,
// без дополнений, слот 3 часа
func TestPricingScenarioStarterDome(t *testing.T) {
	draft := NewBookingDraft("s1", time.Now())
	draft.Product = ptr.Ptr(ProductDanceDome)
	draft.Package = ptr.Ptr(PackagePartyStarter)
	draft.Slot = &TimeSlot{Start: "17:00", End: "20:00"}
	draft.RecalculatePricing()

	assert.Equal(t, 250.0, draft.Pricing.Subtotal)
	assert.Equal(t, 100.0, draft.Pricing.Deposit)
	assert.Equal(t, 150.0, draft.Pricing.BalanceDue)
}

// TestPricingScenarioFiveHourSlot тот же сценарий со слотом 5 часов
// (2 дополнительных часа)
func TestPricingScenarioFiveHourSlot(t *testing.T) {
	draft := NewBookingDraft("s1", time.Now())
	draft.Product = ptr.Ptr(ProductDanceDome)
	draft.Package = ptr.Ptr(PackagePartyStarter)
	draft.Slot = &TimeSlot{Start: "16:00", End: "21:00"}
	draft.RecalculatePricing()

	assert.Equal(t, 125.0, draft.Pricing.ExtraHoursCost)
	assert.Equal(t, 375.0, draft.Pricing.Subtotal)
}

// TestPricingScenarioSurchargeArea адрес в 30 милях от склада дает
// фиксированную доплату поверх subtotal
func TestPricingScenarioSurchargeArea(t *testing.T) {
	draft := NewBookingDraft("s1", time.Now())
	draft.Product = ptr.Ptr(ProductDanceDome)
	draft.Package = ptr.Ptr(PackagePartyStarter)
	draft.Slot = &TimeSlot{Start: "17:00", End: "20:00"}
	draft.ServiceArea = AreaSurcharge
	draft.DistanceMiles = ptr.Ptr(30.0)
	draft.RecalculatePricing()

	assert.Equal(t, 50.0, draft.Pricing.TripChargeAmount)
	assert.Equal(t, draft.Pricing.Subtotal+50.0, draft.Pricing.Total)
}

// TestSubtotalNonLeakage смена пакета после выбора дополнения не должна
// оставить вклад прежнего пакета в новой сумме
func TestSubtotalNonLeakage(t *testing.T) {
	draft := NewBookingDraft("s1", time.Now())
	draft.Product = ptr.Ptr(ProductCastleCombo)
	draft.Slot = &TimeSlot{Start: "17:00", End: "20:00"}

	// Пакет A (300), затем дополнение на 50
	draft.Package = ptr.Ptr(PackagePartyStarter)
	draft.RecalculatePricing()
	require.Equal(t, 300.0, draft.Pricing.Subtotal)

	draft.AddOns = AddOnSelection{AddOnTablesChairs: true}
	draft.RecalculatePricing()
	require.Equal(t, 350.0, draft.Pricing.Subtotal)

	// Переключение на пакет B (500): ровно 550, без следов прежних 300
	draft.Package = ptr.Ptr(PackageCelebrationPro)
	draft.AddOns = draft.AddOns.FilterEligible(PackageCelebrationPro)
	draft.RecalculatePricing()

	assert.Equal(t, 550.0, draft.Pricing.Subtotal)
}

// TestRecalculateIsIdempotent повторный пересчет не меняет сумм
func TestRecalculateIsIdempotent(t *testing.T) {
	draft := NewBookingDraft("s1", time.Now())
	draft.Product = ptr.Ptr(ProductMegaSlide)
	draft.Package = ptr.Ptr(PackageUltimateBash)
	draft.Slot = &TimeSlot{Start: "12:00", End: "16:00"}
	draft.AddOns = AddOnSelection{AddOnGenerator: true}

	draft.RecalculatePricing()
	first := draft.Pricing
	draft.RecalculatePricing()

	assert.Equal(t, first, draft.Pricing)
}

// TestRoundDistance расстояние округляется до одного знака
func TestRoundDistance(t *testing.T) {
	assert.Equal(t, 25.1, RoundDistance(25.0501))
	assert.Equal(t, 25.0, RoundDistance(25.04))
	assert.Equal(t, 0.0, RoundDistance(0.04))
}
