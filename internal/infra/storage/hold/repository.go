package hold

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	"github.com/m04kA/SMC-CarRentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CarRentalService/pkg/psqlbuilder"
)

var columns = []string{"id", "vehicle_id", "user_id", "start_at", "end_at", "status", "expires_at", "created_at"}

// Repository репозиторий холдов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория холдов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает холд, ID генерируется на стороне сервиса
func (r *Repository) Create(ctx context.Context, h *domain.Hold) (*domain.Hold, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("reservation_holds").
		Columns("id", "vehicle_id", "user_id", "start_at", "end_at", "status", "expires_at").
		Values(h.ID, h.VehicleID, h.UserID, h.StartAt, h.EndAt, h.Status, h.ExpiresAt).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&h.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return h, nil
}

// GetByID получает холд по ID
// Внутри транзакции блокирует строку (FOR UPDATE)
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Hold, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	sb := psqlbuilder.Select(columns...).
		From("reservation_holds").
		Where(squirrel.Eq{"id": id})
	if dbmetrics.IsInTransaction(ctx) {
		sb = sb.Suffix("FOR UPDATE")
	}

	query, args, err := sb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	h, err := scanHold(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrHoldNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan hold: %w", ErrScanRow, err)
	}

	return h, nil
}

// ListActiveOverlapping возвращает активные неистекшие холды машин, пересекающиеся с window
func (r *Repository) ListActiveOverlapping(ctx context.Context, vehicleIDs []int64, window domain.DateRange, now time.Time) ([]*domain.Hold, error) {
	if len(vehicleIDs) == 0 {
		return []*domain.Hold{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("reservation_holds").
		Where(squirrel.Eq{"vehicle_id": vehicleIDs}).
		Where(squirrel.Eq{"status": domain.HoldStatusActive}).
		Where(squirrel.Gt{"expires_at": now}).
		Where(squirrel.LtOrEq{"start_at": window.End}).
		Where(squirrel.GtOrEq{"end_at": window.Start}).
		OrderBy("vehicle_id ASC", "start_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveOverlapping - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveOverlapping - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	holds := make([]*domain.Hold, 0)
	for rows.Next() {
		h, err := scanHold(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListActiveOverlapping - scan row: %w", ErrScanRow, err)
		}
		holds = append(holds, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActiveOverlapping - rows error: %w", ErrScanRow, err)
	}

	return holds, nil
}

// UpdateStatus переводит холд из статуса from в статус to
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.HoldStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservation_holds").
		Set("status", to).
		Where(squirrel.Eq{"id": id, "status": from}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrStatusConflict
	}

	return nil
}

// ExpireStale помечает истекшие активные холды статусом expired
// Возвращает количество обновленных строк
func (r *Repository) ExpireStale(ctx context.Context, now time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservation_holds").
		Set("status", domain.HoldStatusExpired).
		Where(squirrel.Eq{"status": domain.HoldStatusActive}).
		Where(squirrel.LtOrEq{"expires_at": now}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: ExpireStale - build update query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: ExpireStale - execute update: %w", ErrExecQuery, err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: ExpireStale - get rows affected: %w", ErrExecQuery, err)
	}

	return n, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanHold(row rowScanner) (*domain.Hold, error) {
	var h domain.Hold
	err := row.Scan(&h.ID, &h.VehicleID, &h.UserID, &h.StartAt, &h.EndAt, &h.Status, &h.ExpiresAt, &h.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &h, nil
}
