package get_available_slots

import (
	"context"
	"time"

	"github.com/CurtBryan/party-lab-sub000/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// OverrideRepository интерфейс репозитория административных правил запрета
type OverrideRepository interface {
	GetForDate(ctx context.Context, date time.Time) ([]*domain.AvailabilityOverride, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
