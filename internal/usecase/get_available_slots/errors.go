package get_available_slots

import "errors"

var (
	// ErrUnknownProduct возвращается, когда продукт отсутствует в каталоге
	ErrUnknownProduct = errors.New("get_available_slots: unknown product")

	// ErrInvalidDate возвращается при некорректной дате (в прошлом)
	ErrInvalidDate = errors.New("get_available_slots: invalid date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase.
	// Ошибка хранилища всегда дает ErrInternal, а не пустой список слотов:
	// проверка доступности обязана закрываться при сбое, но сбой должен
	// быть виден вызывающему как повторяемая ошибка
	ErrInternal = errors.New("get_available_slots: internal error")
)
