package evaluate_service_area

import "github.com/CurtBryan/party-lab-sub000/internal/domain"

// Request модель запроса на оценку зоны обслуживания
type Request struct {
	Address string // Адрес доставки в свободной форме
}

// Response модель ответа с результатом оценки
type Response struct {
	Status        domain.ServiceAreaStatus // Классификация адреса относительно зоны обслуживания
	DistanceMiles float64                  // Расстояние от склада в милях (0 для unresolved)
	TripSurcharge float64                  // Доплата за доставку
	Message       string                   // Пояснение для пользователя
}
