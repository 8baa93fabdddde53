package maps

import "errors"

var (
	// ErrNotConfigured возвращается, когда ключ API не задан
	ErrNotConfigured = errors.New("maps client: api key not configured")

	// ErrRouteNotFound возвращается, когда маршрут между точками не найден
	ErrRouteNotFound = errors.New("maps client: route not found")

	// ErrInvalidResponse возвращается при некорректном ответе от API
	ErrInvalidResponse = errors.New("maps client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что Google Maps недоступен и расстояние нужно оценить по прямой
	ErrServiceDegraded = errors.New("maps unavailable: graceful degradation applied")
)
