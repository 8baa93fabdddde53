package create_hold

import "errors"

var (
	// ErrVehicleNotFound возвращается, когда машина не найдена
	ErrVehicleNotFound = errors.New("create_hold: vehicle not found")

	// ErrVehicleNotAvailable возвращается, когда машина занята на выбранный период
	ErrVehicleNotAvailable = errors.New("create_hold: vehicle is not available for the period")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_hold: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_hold: internal error")
)
