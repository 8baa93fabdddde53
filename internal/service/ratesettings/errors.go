package ratesettings

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных значениях настроек
	ErrInvalidInput = errors.New("invalid rate settings")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("ratesettings: internal error")
)
