package evaluate_service_area

import (
	evaluateServiceArea "github.com/CurtBryan/party-lab-sub000/internal/usecase/evaluate_service_area"
)

// EvaluateServiceAreaRequest HTTP request model
type EvaluateServiceAreaRequest struct {
	Address string `json:"address"`
}

// ServiceAreaResponse HTTP response model
type ServiceAreaResponse struct {
	Status        string  `json:"status"`
	DistanceMiles float64 `json:"distanceMiles"`
	TripSurcharge float64 `json:"tripSurcharge"`
	Message       string  `json:"message"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *evaluateServiceArea.Response) *ServiceAreaResponse {
	return &ServiceAreaResponse{
		Status:        string(resp.Status),
		DistanceMiles: resp.DistanceMiles,
		TripSurcharge: resp.TripSurcharge,
		Message:       resp.Message,
	}
}
