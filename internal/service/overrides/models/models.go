package models

import (
	"fmt"
	"time"

	"github.com/CurtBryan/party-lab-sub000/internal/domain"
)

// CreateOverrideRequest запрос на создание правила запрета.
// Пустой продукт закрывает дату для всех продуктов, пустой слот
// закрывает все слоты
type CreateOverrideRequest struct {
	Date      string  `json:"date"`
	Product   *string `json:"product,omitempty"`
	SlotLabel *string `json:"slotLabel,omitempty"`
	Reason    string  `json:"reason"`
}

// OverrideResponse представление правила запрета
type OverrideResponse struct {
	ID        int64     `json:"id"`
	Date      string    `json:"date"`
	Product   *string   `json:"product,omitempty"`
	SlotLabel *string   `json:"slotLabel,omitempty"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"createdAt"`
}

// OverrideListResponse список правил запрета
type OverrideListResponse struct {
	Overrides []*OverrideResponse `json:"overrides"`
	Total     int                 `json:"total"`
}

// ToDomainOverride конвертирует запрос в доменную модель
func (r *CreateOverrideRequest) ToDomainOverride() (*domain.AvailabilityOverride, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q", r.Date)
	}

	if r.Reason == "" {
		return nil, fmt.Errorf("reason is required")
	}

	o := &domain.AvailabilityOverride{
		Date:   date,
		Reason: r.Reason,
	}

	if r.Product != nil {
		product := domain.Product(*r.Product)
		if !domain.IsValidProduct(product) {
			return nil, fmt.Errorf("unknown product %q", *r.Product)
		}
		o.Product = &product
	}

	if r.SlotLabel != nil {
		if _, err := domain.NewTimeSlotFromLabel(*r.SlotLabel); err != nil {
			return nil, fmt.Errorf("invalid slot %q", *r.SlotLabel)
		}
		o.SlotLabel = r.SlotLabel
	}

	return o, nil
}

// FromDomainOverride конвертирует доменную модель в представление
func FromDomainOverride(o *domain.AvailabilityOverride) *OverrideResponse {
	resp := &OverrideResponse{
		ID:        o.ID,
		Date:      o.Date.Format(domain.DateFormat),
		SlotLabel: o.SlotLabel,
		Reason:    o.Reason,
		CreatedAt: o.CreatedAt,
	}
	if o.Product != nil {
		product := string(*o.Product)
		resp.Product = &product
	}
	return resp
}

// FromDomainOverrideList конвертирует список доменных моделей
func FromDomainOverrideList(overrides []*domain.AvailabilityOverride) *OverrideListResponse {
	out := make([]*OverrideResponse, 0, len(overrides))
	for _, o := range overrides {
		out = append(out, FromDomainOverride(o))
	}
	return &OverrideListResponse{Overrides: out, Total: len(out)}
}
