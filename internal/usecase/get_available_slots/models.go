package get_available_slots

import (
	"time"

	"github.com/CurtBryan/party-lab-sub000/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Product domain.Product // Продукт, для которого запрашиваются слоты
	Date    time.Time      // Дата мероприятия (без времени)
}

// Response модель ответа со списком свободных слотов из фиксированного меню
type Response struct {
	Product     domain.Product // Продукт
	Date        time.Time      // Дата, на которую запрашивались слоты
	Slots       []string       // Свободные слоты в формате "HH:MM-HH:MM"
	IsBlocked   bool           // Дата закрыта административным правилом целиком
	BlockReason string         // Причина закрытия (если IsBlocked)
}
