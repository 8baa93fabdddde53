package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(day, hour int) time.Time {
	// Октябрь 2026: 5-е число понедельник
	return time.Date(2026, time.October, day, hour, 0, 0, 0, time.Local)
}

func TestNewDateRange_EndMustBeAfterStart(t *testing.T) {
	_, err := NewDateRange(at(5, 10), at(5, 10))
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewDateRange(at(6, 10), at(5, 10))
	assert.ErrorIs(t, err, ErrValidation)

	r, err := NewDateRange(at(5, 10), at(8, 10))
	require.NoError(t, err)
	assert.Equal(t, 3, r.RentalDays())
}

func TestCalendarDays(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"same clock three days", at(5, 10), at(8, 10), 3},
		{"later return clock counts partial day", at(5, 10), at(8, 11), 4},
		{"one minute late counts a day", at(5, 10), at(8, 10).Add(time.Minute), 4},
		{"earlier return clock", at(5, 10), at(8, 9), 3},
		{"same day is one day", at(5, 9), at(5, 17), 1},
		{"overnight short rental", at(5, 20), at(6, 8), 1},
		{"long rental is not clamped", at(1, 10), time.Date(2026, time.November, 5, 10, 0, 0, 0, time.Local), 35},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := DateRange{Start: tt.start, End: tt.end}
			assert.Equal(t, tt.want, r.CalendarDays())
		})
	}
}

func TestRentalDays_ClampedToMaximum(t *testing.T) {
	r := DateRange{Start: at(1, 10), End: time.Date(2026, time.November, 5, 10, 0, 0, 0, time.Local)}
	assert.Equal(t, MaxRentalDays, r.RentalDays())
	assert.ErrorIs(t, r.ValidateRental(), ErrValidation)
}

func TestValidateRental_ThirtyDaysAllowed(t *testing.T) {
	r := DateRange{Start: at(1, 10), End: at(31, 10)}
	assert.Equal(t, 30, r.CalendarDays())
	assert.NoError(t, r.ValidateRental())
}

func TestOverlaps_Inclusive(t *testing.T) {
	r := DateRange{Start: at(10, 10), End: at(12, 10)}

	assert.True(t, r.Overlaps(at(8, 10), at(10, 10)), "touching start boundary overlaps")
	assert.True(t, r.Overlaps(at(12, 10), at(14, 10)), "touching end boundary overlaps")
	assert.True(t, r.Overlaps(at(11, 0), at(11, 5)), "inside")
	assert.False(t, r.Overlaps(at(8, 10), at(10, 9)), "ends before start")
	assert.False(t, r.Overlaps(at(12, 11), at(14, 10)), "starts after end")
}

func TestCalendarDays_UsesStartLocation(t *testing.T) {
	vancouver, err := time.LoadLocation("America/Vancouver")
	if err != nil {
		t.Skip("timezone database not available")
	}

	start := time.Date(2026, time.October, 5, 22, 0, 0, 0, vancouver)
	// 06:00 UTC 8 октября = 23:00 7 октября по Ванкуверу
	end := time.Date(2026, time.October, 8, 6, 0, 0, 0, time.UTC)

	r := DateRange{Start: start, End: end}
	assert.Equal(t, 3, r.CalendarDays())
}
