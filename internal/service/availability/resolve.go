package availability

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
)

// Query параметры поиска доступных машин
type Query struct {
	LocationID *int64 // nil = все локации
	Range      domain.DateRange
	Filter     *domain.VehicleFilter
	// ExcludeHoldID холд текущего клиента, который не должен блокировать его же заказ
	ExcludeHoldID *uuid.UUID
	Now           time.Time
}

// Snapshot срез данных, на котором принимается решение о доступности
type Snapshot struct {
	Vehicles []*domain.Vehicle
	Bookings []*domain.Booking
	Holds    []*domain.Hold
}

// Resolve возвращает машины, свободные на весь запрошенный интервал
// Результат отсортирован по дневной ставке, затем по ID
func Resolve(q Query, snap Snapshot) []*domain.Vehicle {
	bookingsByVehicle := groupBookings(snap.Bookings)
	holdsByVehicle := groupHolds(snap.Holds)

	result := make([]*domain.Vehicle, 0, len(snap.Vehicles))
	for _, v := range snap.Vehicles {
		// 1. Кандидаты: локация, общий флаг доступности, фильтры
		if !v.IsAvailable || !v.ServesLocation(q.LocationID) || !q.Filter.Matches(v) {
			continue
		}

		bookings := bookingsByVehicle[v.ID]

		// 2-3. Пересечения с бронированиями и активными холдами
		if !IsFree(q.Range, bookings, holdsByVehicle[v.ID], q.Now, q.ExcludeHoldID) {
			continue
		}

		// 4. Буфер на уборку после предыдущей аренды
		if blockedByCleaningBuffer(v, bookings, q.Range.Start) {
			continue
		}

		result = append(result, v)
	}

	sort.SliceStable(result, func(i, j int) bool {
		if cmp := result[i].DailyRate.Cmp(result[j].DailyRate); cmp != 0 {
			return cmp < 0
		}
		return result[i].ID < result[j].ID
	})

	return result
}

// IsFree проверяет одну машину только по пересечениям с бронированиями и холдами
// Буфер на уборку здесь не учитывается: проверка используется для повторной сверки
// перед подтверждением, когда машина уже найдена поиском
func IsFree(r domain.DateRange, bookings []*domain.Booking, holds []*domain.Hold, now time.Time, excludeHoldID *uuid.UUID) bool {
	for _, b := range bookings {
		if b.IsBlocking() && r.Overlaps(b.StartAt, b.EndAt) {
			return false
		}
	}

	for _, h := range holds {
		if excludeHoldID != nil && h.ID == *excludeHoldID {
			continue
		}
		if h.IsActiveAt(now) && r.Overlaps(h.StartAt, h.EndAt) {
			return false
		}
	}

	return true
}

// blockedByCleaningBuffer true, если предыдущая аренда закончилась меньше чем за буфер до начала
// Начало ровно в момент окончания буфера допустимо
func blockedByCleaningBuffer(v *domain.Vehicle, bookings []*domain.Booking, requestedStart time.Time) bool {
	buffer := v.CleaningBuffer()
	for _, b := range bookings {
		if !b.HasCleaningBuffer() || !b.StartAt.Before(requestedStart) {
			continue
		}
		if b.EffectiveEnd().Add(buffer).After(requestedStart) {
			return true
		}
	}
	return false
}

func groupBookings(bookings []*domain.Booking) map[int64][]*domain.Booking {
	grouped := make(map[int64][]*domain.Booking, len(bookings))
	for _, b := range bookings {
		grouped[b.VehicleID] = append(grouped[b.VehicleID], b)
	}
	return grouped
}

func groupHolds(holds []*domain.Hold) map[int64][]*domain.Hold {
	grouped := make(map[int64][]*domain.Hold, len(holds))
	for _, h := range holds {
		grouped[h.VehicleID] = append(grouped[h.VehicleID], h)
	}
	return grouped
}
