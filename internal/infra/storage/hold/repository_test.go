package hold_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	"github.com/m04kA/SMC-CarRentalService/internal/infra/storage/hold"
)

var (
	now   = time.Date(2026, time.October, 1, 9, 0, 0, 0, time.UTC)
	start = time.Date(2026, time.October, 10, 10, 0, 0, 0, time.UTC)
	end   = time.Date(2026, time.October, 13, 10, 0, 0, 0, time.UTC)
)

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	h := &domain.Hold{
		VehicleID: 7, UserID: 42, StartAt: start, EndAt: end,
		Status: domain.HoldStatusActive, ExpiresAt: now.Add(15 * time.Minute),
	}

	mock.ExpectQuery(`INSERT INTO reservation_holds \(id,vehicle_id,user_id,start_at,end_at,status,expires_at\) VALUES (.+) RETURNING created_at`).
		WithArgs(sqlmock.AnyArg(), int64(7), int64(42), start, end, "active", now.Add(15*time.Minute)).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))

	created, err := hold.NewRepository(db).Create(context.Background(), h)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, now, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListActiveOverlapping(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	id := uuid.New()
	mock.ExpectQuery(`SELECT (.+) FROM reservation_holds WHERE vehicle_id IN \(\$1\) AND status = \$2 ` +
		`AND expires_at > \$3 AND start_at <= \$4 AND end_at >= \$5`).
		WithArgs(int64(7), "active", now, end, start).
		WillReturnRows(sqlmock.NewRows([]string{"id", "vehicle_id", "user_id", "start_at", "end_at", "status", "expires_at", "created_at"}).
			AddRow(id.String(), 7, 42, start, end, "active", now.Add(time.Minute), now))

	got, err := hold.NewRepository(db).ListActiveOverlapping(context.Background(), []int64{7}, domain.DateRange{Start: start, End: end}, now)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, id, got[0].ID)
	assert.True(t, got[0].IsActiveAt(now))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := hold.NewRepository(db)
	id := uuid.New()

	mock.ExpectExec(`UPDATE reservation_holds SET status = \$1 WHERE id = \$2 AND status = \$3`).
		WithArgs("converted", id, "active").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.UpdateStatus(context.Background(), id, domain.HoldStatusActive, domain.HoldStatusConverted))

	mock.ExpectExec(`UPDATE reservation_holds SET status`).
		WithArgs("released", id, "active").
		WillReturnResult(sqlmock.NewResult(0, 0))
	err = repo.UpdateStatus(context.Background(), id, domain.HoldStatusActive, domain.HoldStatusReleased)
	assert.ErrorIs(t, err, hold.ErrStatusConflict)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ExpireStale(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`UPDATE reservation_holds SET status = \$1 WHERE status = \$2 AND expires_at <= \$3`).
		WithArgs("expired", "active", now).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := hold.NewRepository(db).ExpireStale(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
