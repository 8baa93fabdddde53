package release_hold

import "errors"

var (
	// ErrHoldNotFound возвращается, когда холд не найден
	ErrHoldNotFound = errors.New("release_hold: hold not found")

	// ErrAccessDenied возвращается, когда холд принадлежит другому пользователю
	ErrAccessDenied = errors.New("release_hold: access denied")

	// ErrHoldNotActive возвращается, когда холд уже освобожден, истек или использован
	ErrHoldNotActive = errors.New("release_hold: hold is not active")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("release_hold: internal error")
)
