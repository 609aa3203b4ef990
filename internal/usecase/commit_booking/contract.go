package commit_booking

import (
	"context"
	"time"

	"github.com/CurtBryan/party-lab-sub000/internal/domain"
	"github.com/CurtBryan/party-lab-sub000/internal/integrations/payments"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	CreateIdempotent(ctx context.Context, booking *domain.Booking) (*domain.Booking, bool, error)
	GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// OverrideRepository интерфейс репозитория административных правил запрета
type OverrideRepository interface {
	GetForDate(ctx context.Context, date time.Time) ([]*domain.AvailabilityOverride, error)
}

// DraftCache интерфейс кеша черновиков
type DraftCache interface {
	Load(ctx context.Context, sessionID string) (*domain.BookingDraft, error)
	Clear(ctx context.Context, sessionID string) error
}

// PaymentsClient интерфейс клиента провайдера платежей
type PaymentsClient interface {
	Status(ctx context.Context, reference string) (payments.State, error)
}

// NotifierClient интерфейс клиента сервиса уведомлений
type NotifierClient interface {
	Send(ctx context.Context, template string, recipient string, data map[string]interface{}) error
}

// TxManager интерфейс менеджера транзакций
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
