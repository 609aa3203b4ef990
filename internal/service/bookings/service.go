package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/CurtBryan/party-lab-sub000/internal/domain"
	bookingRepo "github.com/CurtBryan/party-lab-sub000/internal/infra/storage/booking"
	"github.com/CurtBryan/party-lab-sub000/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// List получает бронирования с гибкой фильтрацией по продукту, дате и
// статусу. По умолчанию отмененные бронирования не включаются
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование с указанием причины.
// Оплаченный депозит помечается к возврату, слот освобождается
func (s *Service) Cancel(ctx context.Context, req *models.CancelBookingRequest) error {
	if req == nil || req.ID <= 0 {
		return fmt.Errorf("%w: booking id is required", ErrInvalidInput)
	}

	s.logger.Info("Cancel: cancelling booking id=%d", req.ID)

	booking, err := s.bookingRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", req.ID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d is already %s", req.ID, booking.Status)
		return fmt.Errorf("%w: booking is %s", ErrCannotCancel, booking.Status)
	}

	if booking.PaymentStatus == domain.PaymentPaid {
		if err := s.bookingRepo.UpdatePaymentStatus(ctx, req.ID, domain.PaymentRefundDue); err != nil {
			s.logger.Error("Cancel: failed to flag refund for booking id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: Cancel - flag refund: %v", ErrInternal, err)
		}
	}

	if err := s.bookingRepo.Cancel(ctx, req.ID, req.Reason); err != nil {
		s.logger.Error("Cancel: failed to cancel booking id=%d: %v", req.ID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: booking id=%d cancelled", req.ID)
	return nil
}
