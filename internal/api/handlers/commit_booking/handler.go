package commit_booking

import (
	"errors"
	"net/http"

	"github.com/CurtBryan/party-lab-sub000/internal/api/handlers"
	commitBooking "github.com/CurtBryan/party-lab-sub000/internal/usecase/commit_booking"
)

const (
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgDraftNotFound         = "черновик не найден или истек"
	msgDraftNotReady         = "черновик не готов к подтверждению"
	msgPaymentNotConfirmed   = "депозит не подтвержден"
	msgSlotNoLongerAvailable = "слот был занят, депозит будет возвращен"
	msgBookingNotRecorded    = "платеж прошел, но бронирование не записано, свяжитесь с нами"
)

type Handler struct {
	useCase CommitBookingUseCase
	logger  Logger
}

func NewHandler(useCase CommitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/commit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CommitBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/commit - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &commitBooking.Request{SessionID: req.SessionID})
	if err != nil {
		switch {
		case errors.Is(err, commitBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/commit - Invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, commitBooking.ErrDraftNotFound):
			h.logger.Warn("POST /bookings/commit - Draft not found: session=%s", req.SessionID)
			handlers.RespondNotFound(w, msgDraftNotFound)

		case errors.Is(err, commitBooking.ErrDraftNotReady):
			h.logger.Warn("POST /bookings/commit - Draft not ready: session=%s", req.SessionID)
			handlers.RespondError(w, http.StatusConflict, msgDraftNotReady)

		case errors.Is(err, commitBooking.ErrPaymentNotConfirmed):
			h.logger.Warn("POST /bookings/commit - Payment not confirmed: session=%s", req.SessionID)
			handlers.RespondError(w, http.StatusPaymentRequired, msgPaymentNotConfirmed)

		case errors.Is(err, commitBooking.ErrSlotNoLongerAvailable):
			h.logger.Warn("POST /bookings/commit - Slot no longer available: session=%s", req.SessionID)
			handlers.RespondError(w, http.StatusConflict, msgSlotNoLongerAvailable)

		case errors.Is(err, commitBooking.ErrBookingNotRecorded):
			// Платеж прошел, а запись не сохранилась: клиенту отдается
			// отличимый от прочих сбоев ответ
			h.logger.Error("POST /bookings/commit - Payment without booking: session=%s, error=%v",
				req.SessionID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgBookingNotRecorded)

		default:
			h.logger.Error("POST /bookings/commit - Failed: session=%s, error=%v", req.SessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusCreated
	if result.AlreadyExisted {
		status = http.StatusOK
	}

	h.logger.Info("POST /bookings/commit - Booking committed: session=%s, booking_id=%d, existed=%t",
		req.SessionID, result.Booking.ID, result.AlreadyExisted)
	handlers.RespondJSON(w, status, FromUseCaseResponse(result))
}
