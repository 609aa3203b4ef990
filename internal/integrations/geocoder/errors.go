package geocoder

import "errors"

var (
	// ErrNoMatch возвращается, когда геокодер не нашел адрес
	ErrNoMatch = errors.New("geocoder client: no match for address")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("geocoder client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("geocoder client: invalid response")
)
