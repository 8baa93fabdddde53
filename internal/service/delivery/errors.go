package delivery

import "errors"

var (
	// ErrDeliveryUnavailable адрес за пределами зоны доставки
	ErrDeliveryUnavailable = errors.New("delivery unavailable for this address")

	// ErrLocationNotFound локация выдачи не найдена
	ErrLocationNotFound = errors.New("location not found")

	// ErrInvalidInput некорректные координаты
	ErrInvalidInput = errors.New("invalid delivery address")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("delivery: internal error")
)
