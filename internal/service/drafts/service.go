package drafts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/CurtBryan/party-lab-sub000/internal/domain"
	draftCache "github.com/CurtBryan/party-lab-sub000/internal/infra/cache/draft"
	"github.com/CurtBryan/party-lab-sub000/internal/service/drafts/models"
	"github.com/CurtBryan/party-lab-sub000/internal/usecase/evaluate_service_area"
	"github.com/CurtBryan/party-lab-sub000/internal/usecase/get_available_slots"
)

// Service сервис мастера бронирования: единственная точка мутации
// черновиков. Каждое действие применяется к загруженному черновику,
// цена пересчитывается, результат зеркалируется в кеш
type Service struct {
	cache        DraftCache
	slots        AvailabilityChecker
	area         AreaEvaluator
	payments     PaymentsClient
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса мастера бронирования
func NewService(
	cache DraftCache,
	slots AvailabilityChecker,
	area AreaEvaluator,
	payments PaymentsClient,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		cache:        cache,
		slots:        slots,
		area:         area,
		payments:     payments,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Start создает пустой черновик с новой сессией
func (s *Service) Start(ctx context.Context) (*models.DraftResponse, error) {
	d := domain.NewBookingDraft(uuid.NewString(), s.timeProvider.Now())

	if err := s.cache.Save(ctx, d); err != nil {
		s.logger.Error("Start: failed to save draft %s: %v", d.SessionID, err)
		return nil, fmt.Errorf("%w: save draft: %v", ErrInternal, err)
	}

	s.logger.Info("Start: created draft session=%s", d.SessionID)
	return models.FromDomainDraft(d), nil
}

// Get возвращает текущее состояние черновика
func (s *Service) Get(ctx context.Context, sessionID string) (*models.DraftResponse, error) {
	d, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return models.FromDomainDraft(d), nil
}

// Delete удаляет черновик
func (s *Service) Delete(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return fmt.Errorf("%w: session id is required", ErrInvalidInput)
	}
	if err := s.cache.Clear(ctx, sessionID); err != nil {
		s.logger.Error("Delete: failed to clear draft %s: %v", sessionID, err)
		return fmt.Errorf("%w: clear draft: %v", ErrInternal, err)
	}
	s.logger.Info("Delete: cleared draft session=%s", sessionID)
	return nil
}

// Apply применяет действие мастера к черновику.
// После любого изменяющего действия цена пересчитывается заново и
// обновленный черновик сохраняется в кеш
func (s *Service) Apply(ctx context.Context, sessionID string, req *models.ApplyActionRequest) (*models.DraftResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	d, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	switch req.Action {
	case models.ActionUpdateProduct:
		err = s.applyProduct(d, req)
	case models.ActionUpdateDateTime:
		err = s.applyDateTime(ctx, d, req)
	case models.ActionUpdatePackage:
		err = s.applyPackage(d, req)
	case models.ActionUpdateAddOns:
		err = s.applyAddOns(d, req)
	case models.ActionUpdateCustomer:
		err = s.applyCustomer(ctx, d, req)
	case models.ActionUpdateTripCharge:
		err = s.applyTripCharge(ctx, d)
	case models.ActionInitiatePayment:
		err = s.applyInitiatePayment(ctx, d)
	case models.ActionUpdatePaymentLinkage:
		err = s.applyPaymentLinkage(d, req)
	case models.ActionNext:
		err = s.applyNext(d)
	case models.ActionPrevious:
		err = s.applyPrevious(d)
	case models.ActionGoTo:
		err = s.applyGoTo(d, req)
	case models.ActionReset:
		d = domain.NewBookingDraft(d.SessionID, s.timeProvider.Now())
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownAction, req.Action)
	}
	if err != nil {
		return nil, err
	}

	d.RecalculatePricing()
	d.UpdatedAt = s.timeProvider.Now()

	if err := s.cache.Save(ctx, d); err != nil {
		s.logger.Error("Apply: failed to save draft %s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: save draft: %v", ErrInternal, err)
	}

	s.logger.Info("Apply: session=%s action=%s step=%d", sessionID, req.Action, d.Step)
	return models.FromDomainDraft(d), nil
}

func (s *Service) load(ctx context.Context, sessionID string) (*domain.BookingDraft, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("%w: session id is required", ErrInvalidInput)
	}

	d, err := s.cache.Load(ctx, sessionID)
	if err != nil {
		if errors.Is(err, draftCache.ErrDraftNotFound) {
			return nil, fmt.Errorf("%w: session %s", ErrDraftNotFound, sessionID)
		}
		s.logger.Error("load: failed to load draft %s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: load draft: %v", ErrInternal, err)
	}
	return d, nil
}

func (s *Service) applyProduct(d *domain.BookingDraft, req *models.ApplyActionRequest) error {
	if req.Product == nil {
		return fmt.Errorf("%w: product is required", ErrInvalidInput)
	}
	product := domain.Product(*req.Product)
	if !domain.IsValidProduct(product) {
		return fmt.Errorf("%w: unknown product %q", ErrInvalidInput, *req.Product)
	}
	d.Product = &product
	return nil
}

func (s *Service) applyDateTime(ctx context.Context, d *domain.BookingDraft, req *models.ApplyActionRequest) error {
	if d.Product == nil {
		return fmt.Errorf("%w: product must be selected first", ErrStepNotReady)
	}
	if req.Date == nil || req.Slot == nil {
		return fmt.Errorf("%w: date and slot are required", ErrInvalidInput)
	}

	date, err := time.Parse(domain.DateFormat, *req.Date)
	if err != nil {
		return fmt.Errorf("%w: invalid date %q", ErrInvalidInput, *req.Date)
	}

	slot, err := domain.NewTimeSlotFromLabel(*req.Slot)
	if err != nil {
		return fmt.Errorf("%w: invalid slot %q", ErrInvalidInput, *req.Slot)
	}

	available, err := s.slots.Execute(ctx, &get_available_slots.Request{
		Product: *d.Product,
		Date:    date,
	})
	if err != nil {
		s.logger.Error("applyDateTime: availability check failed for session=%s: %v", d.SessionID, err)
		return fmt.Errorf("%w: availability check: %v", ErrInternal, err)
	}
	if available.IsBlocked {
		return fmt.Errorf("%w: %s", ErrSlotUnavailable, available.BlockReason)
	}
	if !containsSlot(available.Slots, slot.Label()) {
		return fmt.Errorf("%w: %s on %s", ErrSlotUnavailable, slot.Label(), *req.Date)
	}

	d.Date = &date
	d.Slot = &slot
	return nil
}

func (s *Service) applyPackage(d *domain.BookingDraft, req *models.ApplyActionRequest) error {
	if req.Package == nil {
		return fmt.Errorf("%w: package is required", ErrInvalidInput)
	}
	pkg := domain.Package(*req.Package)
	if !domain.IsValidPackage(pkg) {
		return fmt.Errorf("%w: unknown package %q", ErrInvalidInput, *req.Package)
	}
	d.Package = &pkg
	// Смена пакета сбрасывает дополнения, недоступные в новом пакете
	d.AddOns = d.AddOns.FilterEligible(pkg)
	return nil
}

func (s *Service) applyAddOns(d *domain.BookingDraft, req *models.ApplyActionRequest) error {
	if d.Package == nil {
		return fmt.Errorf("%w: package must be selected first", ErrStepNotReady)
	}

	selection := domain.AddOnSelection{}
	for name, selected := range req.AddOns {
		addOn := domain.AddOn(name)
		if _, known := domain.AddOnPrices[addOn]; !known {
			return fmt.Errorf("%w: unknown add-on %q", ErrInvalidInput, name)
		}
		if selected && !domain.IsAddOnEligible(*d.Package, addOn) {
			return fmt.Errorf("%w: add-on %q is not available for package %q",
				ErrInvalidInput, name, *d.Package)
		}
		selection[addOn] = selected
	}

	d.AddOns = selection
	return nil
}

func (s *Service) applyCustomer(ctx context.Context, d *domain.BookingDraft, req *models.ApplyActionRequest) error {
	if req.Customer == nil {
		return fmt.Errorf("%w: customer is required", ErrInvalidInput)
	}
	customer := req.Customer.ToDomainCustomer()
	if !customer.IsComplete() {
		return fmt.Errorf("%w: all customer fields are required", ErrInvalidInput)
	}

	area, err := s.area.Execute(ctx, &evaluate_service_area.Request{Address: customer.EventAddress})
	if err != nil {
		s.logger.Error("applyCustomer: service area evaluation failed for session=%s: %v", d.SessionID, err)
		return fmt.Errorf("%w: service area evaluation: %v", ErrInternal, err)
	}

	d.Customer = customer
	d.ServiceArea = area.Status
	if area.Status == domain.AreaUnresolved {
		d.DistanceMiles = nil
	} else {
		miles := area.DistanceMiles
		d.DistanceMiles = &miles
	}
	return nil
}

func (s *Service) applyTripCharge(ctx context.Context, d *domain.BookingDraft) error {
	if d.Customer == nil {
		return fmt.Errorf("%w: customer must be provided first", ErrStepNotReady)
	}

	area, err := s.area.Execute(ctx, &evaluate_service_area.Request{Address: d.Customer.EventAddress})
	if err != nil {
		s.logger.Error("applyTripCharge: service area evaluation failed for session=%s: %v", d.SessionID, err)
		return fmt.Errorf("%w: service area evaluation: %v", ErrInternal, err)
	}

	d.ServiceArea = area.Status
	if area.Status == domain.AreaUnresolved {
		d.DistanceMiles = nil
	} else {
		miles := area.DistanceMiles
		d.DistanceMiles = &miles
	}
	return nil
}

func (s *Service) applyInitiatePayment(ctx context.Context, d *domain.BookingDraft) error {
	if !d.StepsCompleteThrough(domain.StepCustomer) {
		return fmt.Errorf("%w: wizard is not complete through customer step", ErrStepNotReady)
	}
	if d.ServiceArea == domain.AreaOutOfService {
		return ErrOutOfServiceArea
	}
	// Повторная инициация идемпотентна: привязка уже существует
	if d.PaymentRef != "" {
		return nil
	}

	d.RecalculatePricing()

	auth, err := s.payments.Authorize(ctx, d.Pricing.Deposit)
	if err != nil {
		s.logger.Error("applyInitiatePayment: authorization failed for session=%s: %v", d.SessionID, err)
		return fmt.Errorf("%w: payment authorization: %v", ErrInternal, err)
	}

	d.PaymentRef = auth.Reference
	d.PaymentClientSecret = auth.ClientSecret
	return nil
}

// applyPaymentLinkage привязывает внешнюю авторизацию платежа к черновику.
// Ссылка перепроверяется у провайдера при коммите, поэтому подмена
// ссылки клиентом не дает бронирования без оплаты
func (s *Service) applyPaymentLinkage(d *domain.BookingDraft, req *models.ApplyActionRequest) error {
	if !d.StepsCompleteThrough(domain.StepCustomer) {
		return fmt.Errorf("%w: wizard is not complete through customer step", ErrStepNotReady)
	}
	if d.ServiceArea == domain.AreaOutOfService {
		return ErrOutOfServiceArea
	}
	if req.PaymentRef == nil || *req.PaymentRef == "" {
		return fmt.Errorf("%w: payment reference is required", ErrInvalidInput)
	}

	d.PaymentRef = *req.PaymentRef
	d.PaymentClientSecret = ""
	return nil
}

func (s *Service) applyNext(d *domain.BookingDraft) error {
	// Шаг подтверждения достижим только через успешный коммит
	if d.Step >= domain.StepPayment {
		return fmt.Errorf("%w: cannot advance past payment step", ErrStepNotReady)
	}
	if !d.StepComplete(d.Step) {
		return fmt.Errorf("%w: step %d is not complete", ErrStepNotReady, d.Step)
	}
	if d.Step+1 == domain.StepPayment && d.ServiceArea == domain.AreaOutOfService {
		return ErrOutOfServiceArea
	}
	d.Step++
	return nil
}

func (s *Service) applyPrevious(d *domain.BookingDraft) error {
	if d.Step > domain.FirstStep {
		d.Step--
	}
	return nil
}

func (s *Service) applyGoTo(d *domain.BookingDraft, req *models.ApplyActionRequest) error {
	if req.Step == nil {
		return fmt.Errorf("%w: step is required", ErrInvalidInput)
	}
	step := domain.WizardStep(*req.Step)
	if !domain.IsValidStep(step) || step == domain.StepConfirmation {
		return fmt.Errorf("%w: invalid step %d", ErrInvalidInput, *req.Step)
	}
	if step > domain.FirstStep && !d.StepsCompleteThrough(step-1) {
		return fmt.Errorf("%w: steps before %d are not complete", ErrStepNotReady, *req.Step)
	}
	if step == domain.StepPayment && d.ServiceArea == domain.AreaOutOfService {
		return ErrOutOfServiceArea
	}
	d.Step = step
	return nil
}

func containsSlot(slots []string, label string) bool {
	for _, s := range slots {
		if s == label {
			return true
		}
	}
	return false
}
