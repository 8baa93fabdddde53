package create_booking

import "errors"

var (
	// ErrVehicleNotFound возвращается, когда машина не найдена
	ErrVehicleNotFound = errors.New("create_booking: vehicle not found")

	// ErrVehicleNotAvailable возвращается, когда машина занята на выбранный период
	ErrVehicleNotAvailable = errors.New("create_booking: vehicle is not available for the period")

	// ErrHoldNotFound возвращается, когда холд не найден
	ErrHoldNotFound = errors.New("create_booking: hold not found")

	// ErrHoldMismatch возвращается, когда холд принадлежит другому пользователю, машине или периоду
	ErrHoldMismatch = errors.New("create_booking: hold does not match the booking")

	// ErrHoldExpired возвращается, когда холд истек или уже использован
	ErrHoldExpired = errors.New("create_booking: hold is expired or no longer active")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
