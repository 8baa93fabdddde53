package vehicle_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	"github.com/m04kA/SMC-CarRentalService/internal/infra/storage/vehicle"
	"github.com/m04kA/SMC-CarRentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CarRentalService/pkg/ptr"
)

var vehicleColumns = []string{
	"id", "location_id", "category_id", "name", "protection_group", "make", "model",
	"daily_rate", "seats", "fuel_type", "transmission", "is_available",
	"cleaning_buffer_hours", "tank_capacity_litres", "created_at", "updated_at",
}

func TestRepository_ListCandidates(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := vehicle.NewRepository(db)
	now := time.Now()

	t.Run("LocationAndFilters", func(t *testing.T) {
		filter := &domain.VehicleFilter{
			Category: ptr.Ptr("SUV"),
			MaxPrice: ptr.Ptr(decimal.RequireFromString("100")),
			Seats:    ptr.Ptr(5),
		}

		mock.ExpectQuery(`SELECT (.+) FROM vehicles v JOIN vehicle_categories c ON c.id = v.category_id ` +
			`WHERE v.is_available = \$1 AND \(v.location_id = \$2 OR v.location_id IS NULL\) ` +
			`AND LOWER\(c.name\) = LOWER\(\$3\) AND v.daily_rate <= \$4 AND v.seats >= \$5 ` +
			`ORDER BY v.daily_rate ASC, v.id ASC`).
			WithArgs(true, int64(1), "SUV", decimal.RequireFromString("100"), 5).
			WillReturnRows(sqlmock.NewRows(vehicleColumns).
				AddRow(7, 1, 2, "SUV", 2, "Toyota", "RAV4", "89.00", 5, "hybrid", "automatic", true, nil, "55", now, now).
				AddRow(9, nil, 2, "SUV", 2, "Ford", "Escape", "95.00", 5, "gasoline", "automatic", true, 4, nil, now, now))

		got, err := repo.ListCandidates(context.Background(), ptr.Ptr(int64(1)), filter)
		require.NoError(t, err)
		require.Len(t, got, 2)

		assert.Equal(t, int64(1), *got[0].LocationID)
		assert.Equal(t, domain.ProtectionGroupSUV, got[0].ProtectionGroup)
		assert.True(t, got[0].TankCapacityLitres.Valid)
		assert.Equal(t, 2*time.Hour, got[0].CleaningBuffer())

		assert.True(t, got[1].IsLocationAgnostic())
		assert.False(t, got[1].TankCapacityLitres.Valid)
		assert.Equal(t, 4*time.Hour, got[1].CleaningBuffer())
	})

	t.Run("AllLocations", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM vehicles v (.+) WHERE v.is_available = \$1 ORDER BY`).
			WithArgs(true).
			WillReturnRows(sqlmock.NewRows(vehicleColumns))

		got, err := repo.ListCandidates(context.Background(), nil, nil)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := vehicle.NewRepository(db)
	now := time.Now()

	t.Run("LocksInsideTransaction", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT (.+) FROM vehicles v (.+) WHERE v.id = \$1 FOR UPDATE OF v`).
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows(vehicleColumns).
				AddRow(7, 1, 1, "Compact", 1, "Honda", "Civic", "59.99", 5, "gasoline", "automatic", true, nil, nil, now, now))
		mock.ExpectCommit()

		tx, err := db.Begin()
		require.NoError(t, err)
		ctx := dbmetrics.WithTx(context.Background(), tx)

		v, err := repo.GetByID(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, "Civic", v.Model)
		require.NoError(t, tx.Commit())
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM vehicles v (.+) WHERE v.id = \$1$`).
			WithArgs(int64(8)).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByID(context.Background(), 8)
		assert.ErrorIs(t, err, vehicle.ErrVehicleNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
