package drafts

import (
	"context"
	"time"

	"github.com/CurtBryan/party-lab-sub000/internal/domain"
	"github.com/CurtBryan/party-lab-sub000/internal/integrations/payments"
	"github.com/CurtBryan/party-lab-sub000/internal/usecase/evaluate_service_area"
	"github.com/CurtBryan/party-lab-sub000/internal/usecase/get_available_slots"
)

// DraftCache интерфейс кеша черновиков
type DraftCache interface {
	Save(ctx context.Context, d *domain.BookingDraft) error
	Load(ctx context.Context, sessionID string) (*domain.BookingDraft, error)
	Clear(ctx context.Context, sessionID string) error
}

// AvailabilityChecker интерфейс проверки доступных слотов
type AvailabilityChecker interface {
	Execute(ctx context.Context, req *get_available_slots.Request) (*get_available_slots.Response, error)
}

// AreaEvaluator интерфейс оценки адреса по зоне обслуживания
type AreaEvaluator interface {
	Execute(ctx context.Context, req *evaluate_service_area.Request) (*evaluate_service_area.Response, error)
}

// PaymentsClient интерфейс клиента провайдера платежей
type PaymentsClient interface {
	Authorize(ctx context.Context, amount float64) (*payments.Authorization, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
