package domain

import (
	"time"

	"github.com/CurtBryan/party-lab-sub000/pkg/types"
)

// BookingStatus represents the lifecycle status of a booking.
// StatusBlocked is an administrative hold with no customer and no payment;
// it participates in conflict checks identically to pending and confirmed.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusBlocked   BookingStatus = "blocked"
	StatusCancelled BookingStatus = "cancelled"
)

// PaymentStatus represents the state of the deposit payment.
type PaymentStatus string

const (
	PaymentAuthorized PaymentStatus = "authorized"
	PaymentPaid       PaymentStatus = "paid"
	PaymentRefundDue  PaymentStatus = "refund_due"
)

// Booking is the durable record created atomically at commit time: a
// denormalized snapshot of the wizard draft plus lifecycle fields. It is
// keyed uniquely by PaymentRef, which doubles as the commit idempotency key.
type Booking struct {
	ID        int64
	Product   Product
	Package   Package
	EventDate time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	Status    BookingStatus

	// Контакты заказчика
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	EventAddress  string

	// Флаги дополнений (денормализованный снимок выбора)
	HasGenerator    bool
	HasTablesChairs bool
	HasCottonCandy  bool
	HasLEDLighting  bool

	// Чек-лист готовности площадки
	SurfaceType         string
	SetupLocation       string
	PowerOutletDistance string
	GateWidth           string
	PetsOnPremises      string

	// Денежные поля
	Subtotal float64
	Deposit  float64
	Total    float64

	// Платежная привязка
	PaymentRef    string
	PaymentStatus PaymentStatus

	// Причина отмены или административной блокировки
	Notes *string

	// Устанавливается рассылкой напоминаний ровно один раз
	ReminderSentAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Slot возвращает занимаемый бронированием временной слот
func (b *Booking) Slot() TimeSlot {
	return TimeSlot{Start: b.StartTime, End: b.EndTime}
}

// OccupiesSlot возвращает true, если бронирование участвует в проверке конфликтов
func (b *Booking) OccupiesSlot() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed || b.Status == StatusBlocked
}

// CanBeCancelled возвращает true, если бронирование можно отменить
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed || b.Status == StatusBlocked
}

// NeedsReminder возвращает true, если бронированию положено напоминание
func (b *Booking) NeedsReminder() bool {
	return b.Status == StatusConfirmed &&
		b.PaymentStatus == PaymentPaid &&
		b.ReminderSentAt == nil
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	Product         *Product      // nil = все продукты
	Date            *time.Time    // nil = без ограничения по дате
	Status          *BookingStatus // nil = по умолчанию только занимающие слот
	IncludeInactive bool           // включать ли отмененные
}
