package domain

// Location пункт выдачи и возврата машин
type Location struct {
	ID        int64
	Name      string
	City      string
	Address   string
	Latitude  float64
	Longitude float64
}

// GeoPoint координаты точки
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// Point координаты локации
func (l *Location) Point() GeoPoint {
	return GeoPoint{Latitude: l.Latitude, Longitude: l.Longitude}
}
