package models

import (
	"sort"
	"time"

	"github.com/CurtBryan/party-lab-sub000/internal/domain"
)

// Действия мастера бронирования
const (
	ActionUpdateProduct        = "updateProduct"
	ActionUpdateDateTime       = "updateDateTime"
	ActionUpdatePackage        = "updatePackage"
	ActionUpdateAddOns         = "updateAddOns"
	ActionUpdateCustomer       = "updateCustomer"
	ActionUpdateTripCharge     = "updateTripCharge"
	ActionInitiatePayment      = "initiatePayment"
	ActionUpdatePaymentLinkage = "updatePaymentLinkage"
	ActionNext                 = "next"
	ActionPrevious             = "previous"
	ActionGoTo                 = "goTo"
	ActionReset                = "reset"
)

// ApplyActionRequest запрос на применение действия к черновику.
// Поля payload заполняются в зависимости от действия
type ApplyActionRequest struct {
	Action string `json:"action"`

	Product    *string         `json:"product,omitempty"`
	Date       *string         `json:"date,omitempty"`
	Slot       *string         `json:"slot,omitempty"`
	Package    *string         `json:"package,omitempty"`
	AddOns     map[string]bool `json:"addOns,omitempty"`
	Customer   *CustomerInfo   `json:"customer,omitempty"`
	PaymentRef *string         `json:"paymentRef,omitempty"`
	Step       *int            `json:"step,omitempty"`
}

// CustomerInfo контактные данные и чек-лист готовности площадки
type CustomerInfo struct {
	Name                string `json:"name"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
	EventAddress        string `json:"eventAddress"`
	SurfaceType         string `json:"surfaceType"`
	SetupLocation       string `json:"setupLocation"`
	PowerOutletDistance string `json:"powerOutletDistance"`
	GateWidth           string `json:"gateWidth"`
	PetsOnPremises      string `json:"petsOnPremises"`
}

// PricingResponse представление цены для клиента
type PricingResponse struct {
	BasePackagePrice float64 `json:"basePackagePrice"`
	AddOnTotal       float64 `json:"addOnTotal"`
	ExtraHoursCost   float64 `json:"extraHoursCost"`
	TripCharge       float64 `json:"tripCharge"`
	Subtotal         float64 `json:"subtotal"`
	Total            float64 `json:"total"`
	Deposit          float64 `json:"deposit"`
	BalanceDue       float64 `json:"balanceDue"`
}

// DraftResponse представление черновика для клиента
type DraftResponse struct {
	SessionID string `json:"sessionId"`
	Step      int    `json:"step"`

	Product  *string       `json:"product,omitempty"`
	Date     *string       `json:"date,omitempty"`
	Slot     *string       `json:"slot,omitempty"`
	Package  *string       `json:"package,omitempty"`
	AddOns   []string      `json:"addOns"`
	Customer *CustomerInfo `json:"customer,omitempty"`

	ServiceArea   string   `json:"serviceArea,omitempty"`
	DistanceMiles *float64 `json:"distanceMiles,omitempty"`

	Pricing PricingResponse `json:"pricing"`

	PaymentRef          string `json:"paymentRef,omitempty"`
	PaymentClientSecret string `json:"paymentClientSecret,omitempty"`

	ReadyToCommit bool      `json:"readyToCommit"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// FromDomainDraft конвертирует доменный черновик в представление для клиента
func FromDomainDraft(d *domain.BookingDraft) *DraftResponse {
	resp := &DraftResponse{
		SessionID:     d.SessionID,
		Step:          int(d.Step),
		AddOns:        []string{},
		DistanceMiles: d.DistanceMiles,
		ServiceArea:   string(d.ServiceArea),
		Pricing: PricingResponse{
			BasePackagePrice: d.Pricing.BasePackagePrice,
			AddOnTotal:       d.Pricing.AddOnTotal,
			ExtraHoursCost:   d.Pricing.ExtraHoursCost,
			TripCharge:       d.Pricing.TripChargeAmount,
			Subtotal:         d.Pricing.Subtotal,
			Total:            d.Pricing.Total,
			Deposit:          d.Pricing.Deposit,
			BalanceDue:       d.Pricing.BalanceDue,
		},
		PaymentRef:          d.PaymentRef,
		PaymentClientSecret: d.PaymentClientSecret,
		ReadyToCommit:       d.ReadyToCommit(),
		UpdatedAt:           d.UpdatedAt,
	}

	if d.Product != nil {
		product := string(*d.Product)
		resp.Product = &product
	}
	if d.Date != nil {
		date := d.Date.Format(domain.DateFormat)
		resp.Date = &date
	}
	if d.Slot != nil {
		slot := d.Slot.Label()
		resp.Slot = &slot
	}
	if d.Package != nil {
		pkg := string(*d.Package)
		resp.Package = &pkg
	}
	for addOn, selected := range d.AddOns {
		if selected {
			resp.AddOns = append(resp.AddOns, string(addOn))
		}
	}
	sort.Strings(resp.AddOns)
	if d.Customer != nil {
		resp.Customer = &CustomerInfo{
			Name:                d.Customer.Name,
			Email:               d.Customer.Email,
			Phone:               d.Customer.Phone,
			EventAddress:        d.Customer.EventAddress,
			SurfaceType:         d.Customer.SurfaceType,
			SetupLocation:       d.Customer.SetupLocation,
			PowerOutletDistance: d.Customer.PowerOutletDistance,
			GateWidth:           d.Customer.GateWidth,
			PetsOnPremises:      d.Customer.PetsOnPremises,
		}
	}

	return resp
}

// ToDomainCustomer конвертирует контактные данные в доменную модель
func (c *CustomerInfo) ToDomainCustomer() *domain.CustomerInfo {
	return &domain.CustomerInfo{
		Name:                c.Name,
		Email:               c.Email,
		Phone:               c.Phone,
		EventAddress:        c.EventAddress,
		SurfaceType:         c.SurfaceType,
		SetupLocation:       c.SetupLocation,
		PowerOutletDistance: c.PowerOutletDistance,
		GateWidth:           c.GateWidth,
		PetsOnPremises:      c.PetsOnPremises,
	}
}
