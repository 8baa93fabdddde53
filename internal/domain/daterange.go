package domain

import (
	"fmt"
	"time"
)

// DateRange интервал аренды [Start, End]
// Дни считаются по календарным компонентам даты в часовом поясе Start
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange создает интервал и проверяет, что конец строго позже начала
func NewDateRange(start, end time.Time) (DateRange, error) {
	r := DateRange{Start: start, End: end}
	if err := r.Validate(); err != nil {
		return DateRange{}, err
	}
	return r, nil
}

// Validate проверяет, что конец интервала строго позже начала
func (r DateRange) Validate() error {
	if !r.End.After(r.Start) {
		return fmt.Errorf("%w: end %s must be after start %s",
			ErrValidation, r.End.Format(DateTimeFormat), r.Start.Format(DateTimeFormat))
	}
	return nil
}

// ValidateRental дополнительно проверяет, что аренда не длиннее MaxRentalDays
func (r DateRange) ValidateRental() error {
	if err := r.Validate(); err != nil {
		return err
	}
	if days := r.CalendarDays(); days > MaxRentalDays {
		return fmt.Errorf("%w: rental of %d days exceeds maximum of %d", ErrValidation, days, MaxRentalDays)
	}
	return nil
}

// CalendarDays количество дней аренды без ограничений
// Неполный последний день (время возврата позже времени получения) считается целым днем
func (r DateRange) CalendarDays() int {
	loc := r.Start.Location()
	start := r.Start
	end := r.End.In(loc)

	// Разница календарных дат без учета перехода на летнее время
	startDate := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	endDate := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	days := int(endDate.Sub(startDate).Hours() / 24)

	if clockOf(end) > clockOf(start) {
		days++
	}
	if days < MinRentalDays {
		days = MinRentalDays
	}
	return days
}

// RentalDays количество дней аренды, ограниченное диапазоном [MinRentalDays, MaxRentalDays]
func (r DateRange) RentalDays() int {
	days := r.CalendarDays()
	if days > MaxRentalDays {
		return MaxRentalDays
	}
	return days
}

// Overlaps проверяет пересечение с [start, end] включительно с обеих сторон
func (r DateRange) Overlaps(start, end time.Time) bool {
	return !start.After(r.End) && !end.Before(r.Start)
}

// PickupDate календарная дата получения машины
func (r DateRange) PickupDate() time.Time {
	return time.Date(r.Start.Year(), r.Start.Month(), r.Start.Day(), 0, 0, 0, 0, r.Start.Location())
}

func clockOf(t time.Time) time.Duration {
	h, m, s := t.Clock()
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second + time.Duration(t.Nanosecond())
}
