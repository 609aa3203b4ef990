package domain

import "time"

// WizardStep is the ordered sequence of booking wizard steps.
type WizardStep int

const (
	StepProduct WizardStep = iota + 1
	StepDateTime
	StepPackage
	StepAddOns
	StepCustomer
	StepPayment
	StepConfirmation
)

// FirstStep первый шаг мастера
const FirstStep = StepProduct

// LastStep терминальный шаг, достижимый только после успешного коммита
const LastStep = StepConfirmation

// IsValidStep возвращает true для существующего шага мастера
func IsValidStep(s WizardStep) bool {
	return s >= StepProduct && s <= StepConfirmation
}

// CustomerInfo контакты заказчика и чек-лист готовности площадки
type CustomerInfo struct {
	Name         string
	Email        string
	Phone        string
	EventAddress string

	SurfaceType         string
	SetupLocation       string
	PowerOutletDistance string
	GateWidth           string
	PetsOnPremises      string
}

// IsComplete возвращает true, если все обязательные поля заполнены
func (c *CustomerInfo) IsComplete() bool {
	return c.Name != "" && c.Email != "" && c.Phone != "" && c.EventAddress != "" &&
		c.SurfaceType != "" && c.SetupLocation != "" && c.PowerOutletDistance != "" &&
		c.GateWidth != "" && c.PetsOnPremises != ""
}

// ServiceAreaStatus результат классификации адреса по зоне обслуживания
type ServiceAreaStatus string

const (
	AreaNoSurcharge  ServiceAreaStatus = "no_surcharge"
	AreaSurcharge    ServiceAreaStatus = "surcharge"
	AreaOutOfService ServiceAreaStatus = "out_of_service"
	// AreaUnresolved означает, что геокодер не справился с адресом.
	// Клиент не блокируется: доплата не берется, но результат отличим
	// от подтвержденного no_surcharge в логах
	AreaUnresolved ServiceAreaStatus = "unresolved"
)

// BookingDraft is the in-progress wizard aggregate. It is created empty at
// wizard start, mutated step by step, mirrored to the draft cache after
// every mutation, and cleared on reset or successful commit. Pricing is
// always re-derived from the stored components via Pricing.Recalculate.
type BookingDraft struct {
	SessionID string     `json:"sessionId"`
	Step      WizardStep `json:"step"`

	Product  *Product   `json:"product,omitempty"`
	Date     *time.Time `json:"date,omitempty"`
	Slot     *TimeSlot  `json:"slot,omitempty"`
	Package  *Package   `json:"package,omitempty"`

	AddOns   AddOnSelection `json:"addOns,omitempty"`
	Customer *CustomerInfo  `json:"customer,omitempty"`

	ServiceArea   ServiceAreaStatus `json:"serviceArea,omitempty"`
	DistanceMiles *float64          `json:"distanceMiles,omitempty"`

	Pricing Pricing `json:"pricing"`

	// Платежная привязка появляется после инициации платежа
	PaymentRef          string `json:"paymentRef,omitempty"`
	PaymentClientSecret string `json:"paymentClientSecret,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewBookingDraft создает пустой черновик на первом шаге
func NewBookingDraft(sessionID string, now time.Time) *BookingDraft {
	return &BookingDraft{
		SessionID: sessionID,
		Step:      FirstStep,
		AddOns:    AddOnSelection{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// StepComplete возвращает true, если шаг заполнен.
// Для шага оплаты заполненность означает наличие платежной привязки.
func (d *BookingDraft) StepComplete(step WizardStep) bool {
	switch step {
	case StepProduct:
		return d.Product != nil
	case StepDateTime:
		return d.Date != nil && d.Slot != nil
	case StepPackage:
		return d.Package != nil
	case StepAddOns:
		// Шаг дополнений не имеет обязательных полей
		return true
	case StepCustomer:
		return d.Customer != nil && d.Customer.IsComplete()
	case StepPayment:
		return d.PaymentRef != ""
	default:
		return false
	}
}

// StepsCompleteThrough возвращает true, если все шаги до указанного
// включительно заполнены
func (d *BookingDraft) StepsCompleteThrough(step WizardStep) bool {
	for s := FirstStep; s <= step; s++ {
		if !d.StepComplete(s) {
			return false
		}
	}
	return true
}

// ReadyToCommit возвращает true, если черновик пригоден для коммита:
// все шаги до оплаты включительно заполнены и адрес не вне зоны обслуживания
func (d *BookingDraft) ReadyToCommit() bool {
	return d.StepsCompleteThrough(StepPayment) && d.ServiceArea != AreaOutOfService
}

// RecalculatePricing пересчитывает все компоненты цены из текущих выборов.
// Каждый компонент выводится заново из своего источника, поэтому прежний
// вклад компонента не может просочиться в новую сумму.
func (d *BookingDraft) RecalculatePricing() {
	if d.Product != nil && d.Package != nil {
		d.Pricing.BasePackagePrice = BasePackagePrice(*d.Product, *d.Package)
	} else {
		d.Pricing.BasePackagePrice = 0
	}

	if d.Package != nil {
		d.Pricing.AddOnTotal = AddOnTotal(d.AddOns, *d.Package)
	} else {
		d.Pricing.AddOnTotal = 0
	}

	if d.Slot != nil {
		d.Pricing.ExtraHoursCost = ExtraHoursCost(ExtraHoursForSlot(*d.Slot))
	} else {
		d.Pricing.ExtraHoursCost = 0
	}

	switch d.ServiceArea {
	case AreaSurcharge:
		d.Pricing.TripChargeAmount = TripSurcharge
	default:
		// no_surcharge, unresolved и пустое значение доплаты не дают;
		// out_of_service до пересчета цены не доходит
		d.Pricing.TripChargeAmount = 0
	}

	d.Pricing.Recalculate()
}
