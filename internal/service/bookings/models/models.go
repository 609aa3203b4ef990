package models

import (
	"fmt"
	"time"

	"github.com/CurtBryan/party-lab-sub000/internal/domain"
)

// ListBookingsRequest запрос списка бронирований с фильтрацией
type ListBookingsRequest struct {
	Product         *string
	Date            *time.Time
	Status          *string
	IncludeInactive bool
}

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	ID     int64
	Reason string
}

// BookingResponse представление бронирования для клиента
type BookingResponse struct {
	ID        int64  `json:"id"`
	Product   string `json:"product"`
	Package   string `json:"package"`
	EventDate string `json:"eventDate"`
	Slot      string `json:"slot"`
	Status    string `json:"status"`

	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`
	EventAddress  string `json:"eventAddress"`

	AddOns []string `json:"addOns"`

	SurfaceType         string `json:"surfaceType"`
	SetupLocation       string `json:"setupLocation"`
	PowerOutletDistance string `json:"powerOutletDistance"`
	GateWidth           string `json:"gateWidth"`
	PetsOnPremises      string `json:"petsOnPremises"`

	Subtotal   float64 `json:"subtotal"`
	Deposit    float64 `json:"deposit"`
	Total      float64 `json:"total"`
	BalanceDue float64 `json:"balanceDue"`

	PaymentStatus string  `json:"paymentStatus"`
	Notes         *string `json:"notes,omitempty"`

	ReminderSentAt *time.Time `json:"reminderSentAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int                `json:"total"`
}

// FromDomainBooking конвертирует доменное бронирование в представление
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	addOns := []string{}
	if b.HasGenerator {
		addOns = append(addOns, string(domain.AddOnGenerator))
	}
	if b.HasTablesChairs {
		addOns = append(addOns, string(domain.AddOnTablesChairs))
	}
	if b.HasCottonCandy {
		addOns = append(addOns, string(domain.AddOnCottonCandy))
	}
	if b.HasLEDLighting {
		addOns = append(addOns, string(domain.AddOnLEDLighting))
	}

	return &BookingResponse{
		ID:        b.ID,
		Product:   string(b.Product),
		Package:   string(b.Package),
		EventDate: b.EventDate.Format(domain.DateFormat),
		Slot:      b.Slot().Label(),
		Status:    string(b.Status),

		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
		EventAddress:  b.EventAddress,

		AddOns: addOns,

		SurfaceType:         b.SurfaceType,
		SetupLocation:       b.SetupLocation,
		PowerOutletDistance: b.PowerOutletDistance,
		GateWidth:           b.GateWidth,
		PetsOnPremises:      b.PetsOnPremises,

		Subtotal:   b.Subtotal,
		Deposit:    b.Deposit,
		Total:      b.Total,
		BalanceDue: b.Total - b.Deposit,

		PaymentStatus: string(b.PaymentStatus),
		Notes:         b.Notes,

		ReminderSentAt: b.ReminderSentAt,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список доменных бронирований
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	out := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, FromDomainBooking(b))
	}
	return &BookingListResponse{Bookings: out, Total: len(out)}
}

// ToDomainBookingStatus конвертирует строку в доменный статус
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	switch domain.BookingStatus(s) {
	case domain.StatusPending, domain.StatusConfirmed, domain.StatusBlocked, domain.StatusCancelled:
		return domain.BookingStatus(s), nil
	default:
		return "", fmt.Errorf("unknown booking status %q", s)
	}
}

// ToDomainFilter конвертирует запрос списка в доменный фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		Date:            r.Date,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Product != nil {
		product := domain.Product(*r.Product)
		if !domain.IsValidProduct(product) {
			return domain.BookingsFilter{}, fmt.Errorf("unknown product %q", *r.Product)
		}
		filter.Product = &product
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return domain.BookingsFilter{}, err
		}
		filter.Status = &status
	}

	return filter, nil
}
