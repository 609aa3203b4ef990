package commit_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("commit_booking: invalid input data")

	// ErrDraftNotFound возвращается, когда черновик не найден или истек
	ErrDraftNotFound = errors.New("commit_booking: draft not found")

	// ErrDraftNotReady возвращается, когда черновик не готов к коммиту:
	// не все шаги заполнены или адрес вне зоны обслуживания
	ErrDraftNotReady = errors.New("commit_booking: draft is not ready to commit")

	// ErrPaymentNotConfirmed возвращается, когда депозит не подтвержден
	// провайдером платежей
	ErrPaymentNotConfirmed = errors.New("commit_booking: deposit payment is not confirmed")

	// ErrSlotNoLongerAvailable возвращается, когда слот заняли между
	// оплатой и коммитом. Депозит помечается к возврату
	ErrSlotNoLongerAvailable = errors.New("commit_booking: slot is no longer available")

	// ErrBookingNotRecorded возвращается, когда платеж прошел, но запись
	// бронирования не удалось сохранить. Этот случай логируется отдельно:
	// деньги списаны, и оператор должен вмешаться вручную
	ErrBookingNotRecorded = errors.New("commit_booking: payment succeeded but booking was not recorded")

	// ErrInternal возвращается при прочих внутренних ошибках usecase
	ErrInternal = errors.New("commit_booking: internal error")
)
