package drafts

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновик не найден или истек
	ErrDraftNotFound = errors.New("service drafts: draft not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("service drafts: invalid input data")

	// ErrUnknownAction возвращается для неизвестного действия мастера
	ErrUnknownAction = errors.New("service drafts: unknown action")

	// ErrStepNotReady возвращается при попытке перейти на шаг, для
	// которого не заполнены предыдущие шаги
	ErrStepNotReady = errors.New("service drafts: previous steps are not complete")

	// ErrSlotUnavailable возвращается, когда выбранный слот недоступен
	// для продукта на дату
	ErrSlotUnavailable = errors.New("service drafts: slot is not available")

	// ErrOutOfServiceArea возвращается при попытке инициировать оплату
	// для адреса вне зоны обслуживания
	ErrOutOfServiceArea = errors.New("service drafts: address is out of service area")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service drafts: internal error")
)
