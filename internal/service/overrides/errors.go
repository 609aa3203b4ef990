package overrides

import "errors"

var (
	// ErrOverrideNotFound возвращается, когда правило не найдено
	ErrOverrideNotFound = errors.New("service overrides: override not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("service overrides: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service overrides: internal error")
)
