package notifier

import "errors"

var (
	// ErrSendFailed возвращается, когда уведомление не было принято сервисом
	ErrSendFailed = errors.New("notifier client: send failed")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("notifier client: internal error")
)
