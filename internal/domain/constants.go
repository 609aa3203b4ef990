package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Pricing constants
const (
	// IncludedHours количество часов аренды, входящих в базовую цену пакета
	IncludedHours = 3

	// FirstExtraHourRate цена первого дополнительного часа
	FirstExtraHourRate = 50.0

	// AdditionalExtraHourRate цена каждого последующего дополнительного часа
	AdditionalExtraHourRate = 75.0

	// DepositAmount фиксированный депозит при бронировании
	DepositAmount = 100.0
)

// Service area constants
const (
	// ServiceAreaInnerRadiusMiles радиус бесплатной доставки
	ServiceAreaInnerRadiusMiles = 25.0

	// ServiceAreaOuterRadiusMiles максимальный радиус обслуживания
	ServiceAreaOuterRadiusMiles = 50.0

	// TripSurcharge фиксированная доплата за доставку между внутренним и внешним радиусом
	TripSurcharge = 50.0
)

// Origin координаты склада, от которого считается расстояние доставки
const (
	OriginLatitude  = 35.4676
	OriginLongitude = -97.5164
)

// ReminderLeadDays за сколько дней до мероприятия отправляется напоминание
const ReminderLeadDays = 2

// Business validation constants
const (
	MaxNotesLength   = 500
	MaxAddressLength = 300
)

// ActiveStatuses статусы бронирований, занимающих слот
// Используются при проверке конфликтов доступности
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusBlocked,
}

// InactiveStatuses статусы бронирований, не занимающих слот
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}
