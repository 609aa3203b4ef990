package payments

// Authorization результат инициации платежа у провайдера
type Authorization struct {
	// Reference идентификатор платежа у провайдера.
	// Служит ключом идемпотентности коммита бронирования.
	Reference string

	// ClientSecret секрет для завершения платежа на клиенте
	ClientSecret string
}

// State обобщенный статус платежа, провайдер-специфичные статусы
// сводятся к трем исходам
type State string

const (
	StatePaid    State = "paid"
	StatePending State = "pending"
	StateFailed  State = "failed"
)
