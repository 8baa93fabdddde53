package maps

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
)

// RouteDistance расстояние и время в пути по дороге
type RouteDistance struct {
	Meters   int
	Duration time.Duration
}

// Kilometers расстояние в километрах
func (d RouteDistance) Kilometers() float64 {
	return float64(d.Meters) / 1000
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// formatPoint координаты в формате "lat,lng", который принимает Distance Matrix API
func formatPoint(p domain.GeoPoint) string {
	return fmt.Sprintf("%.6f,%.6f", p.Latitude, p.Longitude)
}
