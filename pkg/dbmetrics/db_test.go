package dbmetrics

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CarRentalService/pkg/metrics"
)

func TestGetExecutor_PrefersTransactionFromContext(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	wrapped := Wrap(db, nil, "test")

	mock.ExpectBegin()
	tx, err := wrapped.BeginTx(context.Background(), nil)
	require.NoError(t, err)

	ctx := WithTx(context.Background(), tx)
	assert.True(t, IsInTransaction(ctx))
	assert.Same(t, tx, GetExecutor(ctx, wrapped))

	assert.False(t, IsInTransaction(context.Background()))
	assert.Same(t, wrapped, GetExecutor(context.Background(), wrapped))

	mock.ExpectRollback()
	require.NoError(t, tx.Rollback())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDB_ObservesQueryDuration(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	m := metrics.NewWithRegisterer("test", prometheus.NewRegistry())
	wrapped := Wrap(db, m, "test")

	mock.ExpectExec("UPDATE reservation_holds").WillReturnResult(sqlmock.NewResult(0, 2))

	_, err = wrapped.ExecContext(context.Background(), "UPDATE reservation_holds SET status = 'expired'")
	require.NoError(t, err)

	assert.Equal(t, 1, testutil.CollectAndCount(m.DBQueryDuration, "db_query_duration_seconds"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOperation(t *testing.T) {
	assert.Equal(t, "select", operation("  SELECT id FROM vehicles"))
	assert.Equal(t, "insert", operation("INSERT INTO bookings"))
	assert.Equal(t, "unknown", operation(""))
}
