package get_available_slots

import (
	getAvailableSlots "github.com/CurtBryan/party-lab-sub000/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Product     string   `json:"product"`
	Date        string   `json:"date"`
	Slots       []string `json:"slots"`
	IsBlocked   bool     `json:"isBlocked"`
	BlockReason string   `json:"blockReason,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	return &AvailableSlotsResponse{
		Product:     string(resp.Product),
		Date:        resp.Date.Format("2006-01-02"),
		Slots:       resp.Slots,
		IsBlocked:   resp.IsBlocked,
		BlockReason: resp.BlockReason,
	}
}
