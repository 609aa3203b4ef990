package commit_booking

import (
	commitBooking "github.com/CurtBryan/party-lab-sub000/internal/usecase/commit_booking"
	bookingModels "github.com/CurtBryan/party-lab-sub000/internal/service/bookings/models"
)

// CommitBookingRequest HTTP request model
type CommitBookingRequest struct {
	SessionID string `json:"sessionId"`
}

// CommitBookingResponse HTTP response model
type CommitBookingResponse struct {
	Booking        *bookingModels.BookingResponse `json:"booking"`
	AlreadyExisted bool                           `json:"alreadyExisted"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *commitBooking.Response) *CommitBookingResponse {
	return &CommitBookingResponse{
		Booking:        bookingModels.FromDomainBooking(resp.Booking),
		AlreadyExisted: resp.AlreadyExisted,
	}
}
