package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("service bookings: booking not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("service bookings: invalid input data")

	// ErrCannotCancel возвращается при попытке отменить уже отмененное
	// бронирование
	ErrCannotCancel = errors.New("service bookings: booking cannot be cancelled")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service bookings: internal error")
)
