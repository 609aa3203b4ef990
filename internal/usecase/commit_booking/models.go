package commit_booking

import "github.com/CurtBryan/party-lab-sub000/internal/domain"

// Request модель запроса на коммит бронирования
type Request struct {
	SessionID string // Идентификатор сессии мастера бронирования
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking        *domain.Booking // Сохраненное бронирование
	AlreadyExisted bool            // true, если коммит с этим платежом уже выполнялся
}
