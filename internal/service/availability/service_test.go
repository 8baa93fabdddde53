package availability_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	"github.com/m04kA/SMC-CarRentalService/internal/service/availability"
	"github.com/m04kA/SMC-CarRentalService/pkg/logger"
)

// ---- mocks -----------------------------------------------------------------

type mockVehicleRepo struct {
	listCandidates func(ctx context.Context, locationID *int64, filter *domain.VehicleFilter) ([]*domain.Vehicle, error)
}

func (m *mockVehicleRepo) ListCandidates(ctx context.Context, locationID *int64, filter *domain.VehicleFilter) ([]*domain.Vehicle, error) {
	return m.listCandidates(ctx, locationID, filter)
}

type mockBookingRepo struct {
	listForAvailability func(ctx context.Context, vehicleIDs []int64, window domain.DateRange, lookback time.Duration) ([]*domain.Booking, error)
}

func (m *mockBookingRepo) ListForAvailability(ctx context.Context, vehicleIDs []int64, window domain.DateRange, lookback time.Duration) ([]*domain.Booking, error) {
	return m.listForAvailability(ctx, vehicleIDs, window, lookback)
}

type mockHoldRepo struct {
	listActiveOverlapping func(ctx context.Context, vehicleIDs []int64, window domain.DateRange, now time.Time) ([]*domain.Hold, error)
}

func (m *mockHoldRepo) ListActiveOverlapping(ctx context.Context, vehicleIDs []int64, window domain.DateRange, now time.Time) ([]*domain.Hold, error) {
	return m.listActiveOverlapping(ctx, vehicleIDs, window, now)
}

type countingMetrics struct {
	failClosed map[string]int
}

func (m *countingMetrics) IncAvailabilityFailClosed(operation string) {
	if m.failClosed == nil {
		m.failClosed = map[string]int{}
	}
	m.failClosed[operation]++
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

var (
	_ availability.VehicleRepository = (*mockVehicleRepo)(nil)
	_ availability.BookingRepository = (*mockBookingRepo)(nil)
	_ availability.HoldRepository    = (*mockHoldRepo)(nil)
)

// ---- helpers ---------------------------------------------------------------

var errDB = errors.New("connection refused")

func noBookings() *mockBookingRepo {
	return &mockBookingRepo{
		listForAvailability: func(context.Context, []int64, domain.DateRange, time.Duration) ([]*domain.Booking, error) {
			return nil, nil
		},
	}
}

func noHolds() *mockHoldRepo {
	return &mockHoldRepo{
		listActiveOverlapping: func(context.Context, []int64, domain.DateRange, time.Time) ([]*domain.Hold, error) {
			return nil, nil
		},
	}
}

func candidates(vehicles ...*domain.Vehicle) *mockVehicleRepo {
	return &mockVehicleRepo{
		listCandidates: func(context.Context, *int64, *domain.VehicleFilter) ([]*domain.Vehicle, error) {
			return vehicles, nil
		},
	}
}

func newService(v availability.VehicleRepository, b availability.BookingRepository, h availability.HoldRepository, m *countingMetrics) *availability.Service {
	return availability.NewService(v, b, h, m, logger.NewNop()).WithTimeProvider(fixedTime{t: now})
}

// ---- ResolveAvailability ---------------------------------------------------

func TestService_ResolveAvailability_OK(t *testing.T) {
	r := domain.DateRange{Start: ts(10, 10, 0), End: ts(13, 10, 0)}

	bookings := &mockBookingRepo{
		listForAvailability: func(_ context.Context, vehicleIDs []int64, window domain.DateRange, lookback time.Duration) ([]*domain.Booking, error) {
			assert.Equal(t, []int64{1, 2}, vehicleIDs)
			assert.Equal(t, r, window)
			assert.Equal(t, time.Duration(domain.MaxCleaningBufferHours)*time.Hour, lookback)
			return []*domain.Booking{booking(1, domain.StatusConfirmed, ts(11, 10, 0), ts(12, 10, 0))}, nil
		},
	}

	svc := newService(candidates(vehicle(1, "50"), vehicle(2, "60")), bookings, noHolds(), &countingMetrics{})

	got, err := svc.ResolveAvailability(context.Background(), nil, r, nil)
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, ids(got))
}

func TestService_ResolveAvailability_InvalidRange(t *testing.T) {
	svc := newService(candidates(), noBookings(), noHolds(), &countingMetrics{})

	_, err := svc.ResolveAvailability(context.Background(), nil, domain.DateRange{Start: ts(10, 10, 0), End: ts(10, 10, 0)}, nil)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestService_ResolveAvailability_FailsClosed(t *testing.T) {
	r := domain.DateRange{Start: ts(10, 10, 0), End: ts(13, 10, 0)}

	tests := []struct {
		name     string
		vehicles *mockVehicleRepo
		bookings *mockBookingRepo
		holds    *mockHoldRepo
	}{
		{
			name: "vehicles lookup fails",
			vehicles: &mockVehicleRepo{listCandidates: func(context.Context, *int64, *domain.VehicleFilter) ([]*domain.Vehicle, error) {
				return nil, errDB
			}},
			bookings: noBookings(),
			holds:    noHolds(),
		},
		{
			name:     "bookings lookup fails",
			vehicles: candidates(vehicle(1, "50")),
			bookings: &mockBookingRepo{listForAvailability: func(context.Context, []int64, domain.DateRange, time.Duration) ([]*domain.Booking, error) {
				return nil, errDB
			}},
			holds: noHolds(),
		},
		{
			name:     "holds lookup fails",
			vehicles: candidates(vehicle(1, "50")),
			bookings: noBookings(),
			holds: &mockHoldRepo{listActiveOverlapping: func(context.Context, []int64, domain.DateRange, time.Time) ([]*domain.Hold, error) {
				return nil, errDB
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &countingMetrics{}
			svc := newService(tt.vehicles, tt.bookings, tt.holds, m)

			got, err := svc.ResolveAvailability(context.Background(), nil, r, nil)
			assert.ErrorIs(t, err, domain.ErrDataUnavailable)
			assert.NotNil(t, got)
			assert.Empty(t, got)
			assert.Equal(t, 1, m.failClosed["search"])
		})
	}
}

// ---- IsAvailable -----------------------------------------------------------

func TestService_IsAvailable(t *testing.T) {
	r := domain.DateRange{Start: ts(10, 10, 0), End: ts(13, 10, 0)}
	holdID := uuid.New()

	holds := &mockHoldRepo{
		listActiveOverlapping: func(_ context.Context, vehicleIDs []int64, _ domain.DateRange, at time.Time) ([]*domain.Hold, error) {
			assert.Equal(t, []int64{7}, vehicleIDs)
			assert.Equal(t, now, at)
			return []*domain.Hold{{
				ID: holdID, VehicleID: 7, Status: domain.HoldStatusActive,
				StartAt: r.Start, EndAt: r.End, ExpiresAt: now.Add(5 * time.Minute),
			}}, nil
		},
	}

	svc := newService(candidates(), noBookings(), holds, &countingMetrics{})

	ok, err := svc.IsAvailable(context.Background(), 7, r)
	require.NoError(t, err)
	assert.False(t, ok, "someone else's hold blocks")

	ok, err = svc.IsAvailableExcludingHold(context.Background(), 7, r, &holdID)
	require.NoError(t, err)
	assert.True(t, ok, "own hold does not block")
}

func TestService_IsAvailable_FailsClosed(t *testing.T) {
	m := &countingMetrics{}
	bookings := &mockBookingRepo{listForAvailability: func(context.Context, []int64, domain.DateRange, time.Duration) ([]*domain.Booking, error) {
		return nil, errDB
	}}
	svc := newService(candidates(), bookings, noHolds(), m)

	ok, err := svc.IsAvailable(context.Background(), 7, domain.DateRange{Start: ts(10, 10, 0), End: ts(13, 10, 0)})
	assert.False(t, ok)
	assert.ErrorIs(t, err, domain.ErrDataUnavailable)
	assert.Equal(t, 1, m.failClosed["check"])
}

func TestService_IsBookable_AppliesCleaningBuffer(t *testing.T) {
	returned := ts(10, 10, 0)
	bookings := &mockBookingRepo{listForAvailability: func(context.Context, []int64, domain.DateRange, time.Duration) ([]*domain.Booking, error) {
		return []*domain.Booking{booking(1, domain.StatusCompleted, ts(7, 10, 0), returned)}, nil
	}}
	svc := newService(candidates(), bookings, noHolds(), &countingMetrics{})
	r := domain.DateRange{Start: returned.Add(time.Hour), End: ts(12, 10, 0)}

	bookable, err := svc.IsBookable(context.Background(), vehicle(1, "60"), r)
	require.NoError(t, err)
	assert.False(t, bookable)

	free, err := svc.IsAvailable(context.Background(), 1, r)
	require.NoError(t, err)
	assert.True(t, free, "freshness check skips the cleaning buffer")
}
