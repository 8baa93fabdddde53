package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Vehicle транспортное средство, доступное для аренды
type Vehicle struct {
	ID              int64
	LocationID      *int64 // NULL = машина доступна во всех локациях
	CategoryID      int64
	CategoryName    string
	ProtectionGroup ProtectionGroup
	Make            string
	Model           string
	DailyRate       decimal.Decimal
	Seats           int
	FuelType        string
	Transmission    string
	IsAvailable     bool

	CleaningBufferHours *int                // NULL = DefaultCleaningBufferHours
	TankCapacityLitres  decimal.NullDecimal // нужен для расчета доп. опции "топливо"

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CleaningBuffer возвращает буфер на уборку после возврата
func (v *Vehicle) CleaningBuffer() time.Duration {
	hours := DefaultCleaningBufferHours
	if v.CleaningBufferHours != nil && *v.CleaningBufferHours >= 0 {
		hours = *v.CleaningBufferHours
	}
	return time.Duration(hours) * time.Hour
}

// IsLocationAgnostic true, если машина не привязана к локации
func (v *Vehicle) IsLocationAgnostic() bool {
	return v.LocationID == nil
}

// ServesLocation true, если машину можно получить в указанной локации
// nil означает поиск по всем локациям
func (v *Vehicle) ServesLocation(locationID *int64) bool {
	if locationID == nil || v.LocationID == nil {
		return true
	}
	return *v.LocationID == *locationID
}

// VehicleFilter фильтры поиска, все заданные условия объединяются через AND
type VehicleFilter struct {
	Category     *string          // название категории, без учета регистра
	MinPrice     *decimal.Decimal // минимальная дневная ставка
	MaxPrice     *decimal.Decimal // максимальная дневная ставка
	Seats        *int             // минимальное количество мест
	Transmission *string
	FuelType     *string
}

// Matches проверяет машину по всем заданным фильтрам
func (f *VehicleFilter) Matches(v *Vehicle) bool {
	if f == nil {
		return true
	}
	if f.Category != nil && !strings.EqualFold(v.CategoryName, *f.Category) {
		return false
	}
	if f.MinPrice != nil && v.DailyRate.LessThan(*f.MinPrice) {
		return false
	}
	if f.MaxPrice != nil && v.DailyRate.GreaterThan(*f.MaxPrice) {
		return false
	}
	if f.Seats != nil && v.Seats < *f.Seats {
		return false
	}
	if f.Transmission != nil && !strings.EqualFold(v.Transmission, *f.Transmission) {
		return false
	}
	if f.FuelType != nil && !strings.EqualFold(v.FuelType, *f.FuelType) {
		return false
	}
	return true
}
