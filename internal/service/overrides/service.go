package overrides

import (
	"context"
	"errors"
	"fmt"
	"time"

	overrideRepo "github.com/CurtBryan/party-lab-sub000/internal/infra/storage/override"
	"github.com/CurtBryan/party-lab-sub000/internal/service/overrides/models"
)

// Service сервис административных правил запрета доступности
type Service struct {
	overrideRepo OverrideRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса правил запрета
func NewService(overrideRepo OverrideRepository, logger Logger) *Service {
	return &Service{
		overrideRepo: overrideRepo,
		logger:       logger,
	}
}

// Create создает правило запрета: дата целиком, продукт на дату или
// отдельный слот
func (s *Service) Create(ctx context.Context, req *models.CreateOverrideRequest) (*models.OverrideResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	o, err := req.ToDomainOverride()
	if err != nil {
		s.logger.Warn("Create: invalid override: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.overrideRepo.Create(ctx, o)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: override id=%d for %s", created.ID, req.Date)
	return models.FromDomainOverride(created), nil
}

// ListForDate возвращает правила запрета на дату
func (s *Service) ListForDate(ctx context.Context, date time.Time) (*models.OverrideListResponse, error) {
	overrides, err := s.overrideRepo.GetForDate(ctx, date)
	if err != nil {
		s.logger.Error("ListForDate: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListForDate - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainOverrideList(overrides), nil
}

// Delete удаляет правило запрета
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: override id is required", ErrInvalidInput)
	}

	if err := s.overrideRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, overrideRepo.ErrOverrideNotFound) {
			return ErrOverrideNotFound
		}
		s.logger.Error("Delete: repository error for override id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: override id=%d removed", id)
	return nil
}
