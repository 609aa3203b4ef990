package overrides

import (
	"context"
	"time"

	"github.com/CurtBryan/party-lab-sub000/internal/domain"
)

// OverrideRepository интерфейс репозитория административных правил запрета
type OverrideRepository interface {
	Create(ctx context.Context, o *domain.AvailabilityOverride) (*domain.AvailabilityOverride, error)
	GetForDate(ctx context.Context, date time.Time) ([]*domain.AvailabilityOverride, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
