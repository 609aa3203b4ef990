package payments

import "errors"

var (
	// ErrAuthorizationFailed возвращается, когда провайдер отклонил создание платежа
	ErrAuthorizationFailed = errors.New("payments client: authorization failed")

	// ErrPaymentNotFound возвращается, когда платеж не найден у провайдера
	ErrPaymentNotFound = errors.New("payments client: payment not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("payments client: internal error")
)
