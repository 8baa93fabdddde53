package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	"github.com/m04kA/SMC-CarRentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CarRentalService/pkg/psqlbuilder"
)

// pgExclusionViolation код ошибки PostgreSQL для нарушения EXCLUDE-ограничения
const pgExclusionViolation = "23P01"

var columns = []string{
	"id",
	"user_id",
	"vehicle_id",
	"hold_id",
	"pickup_location_id",
	"dropoff_location_id",
	"start_at",
	"end_at",
	"status",
	"protection_tier",
	"total_amount",
	"total_days",
	"deposit_amount",
	"returned_at",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её.
// Пересечение с другим подтвержденным бронированием отклоняется ограничением
// bookings_no_overlap и возвращается как ErrVehicleNotAvailable
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var holdID interface{}
	if booking.HoldID != nil {
		holdID = *booking.HoldID
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"user_id",
			"vehicle_id",
			"hold_id",
			"pickup_location_id",
			"dropoff_location_id",
			"start_at",
			"end_at",
			"status",
			"protection_tier",
			"total_amount",
			"total_days",
			"deposit_amount",
		).
		Values(
			booking.UserID,
			booking.VehicleID,
			holdID,
			booking.PickupLocationID,
			booking.DropoffLocationID,
			booking.StartAt,
			booking.EndAt,
			booking.Status,
			booking.ProtectionTier,
			booking.TotalAmount,
			booking.TotalDays,
			booking.DepositAmount,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgExclusionViolation {
			return nil, fmt.Errorf("%w: Create - %s", ErrVehicleNotAvailable, pqErr.Constraint)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
// Внутри транзакции блокирует строку (FOR UPDATE)
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	sb := psqlbuilder.Select(columns...).
		From("bookings").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		sb = sb.Suffix("FOR UPDATE")
	}

	query, args, err := sb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %w", ErrScanRow, err)
	}

	return booking, nil
}

// GetByUserID получает список бронирований пользователя
// Опционально фильтрует по статусу
func (r *Repository) GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From("bookings").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("start_at DESC")

	// Фильтрация по статусу, если указан
	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// ListForAvailability возвращает бронирования машин, влияющие на доступность интервала:
//   - блокирующие (pending, confirmed, active), пересекающиеся с window включительно;
//   - при lookback > 0 также активные и завершенные, начавшиеся до window.Start
//     и закончившиеся не раньше window.Start - lookback (для буфера на уборку).
//
// Внутри транзакции блокирует найденные строки (FOR UPDATE)
func (r *Repository) ListForAvailability(ctx context.Context, vehicleIDs []int64, window domain.DateRange, lookback time.Duration) ([]*domain.Booking, error) {
	if len(vehicleIDs) == 0 {
		return []*domain.Booking{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	conflicts := squirrel.Or{
		squirrel.And{
			squirrel.Eq{"status": statusStrings(domain.BlockingStatuses)},
			squirrel.LtOrEq{"start_at": window.End},
			squirrel.GtOrEq{"end_at": window.Start},
		},
	}
	if lookback > 0 {
		conflicts = append(conflicts, squirrel.And{
			squirrel.Eq{"status": statusStrings(domain.BufferStatuses)},
			squirrel.Lt{"start_at": window.Start},
			squirrel.Expr("COALESCE(returned_at, end_at) >= ?", window.Start.Add(-lookback)),
		})
	}

	selectBuilder := psqlbuilder.Select(columns...).
		From("bookings").
		Where(squirrel.Eq{"vehicle_id": vehicleIDs}).
		Where(conflicts).
		OrderBy("vehicle_id ASC", "start_at ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListForAvailability - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListForAvailability - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// UpdateStatus меняет статус бронирования, если текущий статус равен from
func (r *Repository) UpdateStatus(ctx context.Context, id int64, from, to domain.BookingStatus) error {
	return r.update(ctx, "UpdateStatus", id, from, map[string]interface{}{
		"status":     to,
		"updated_at": squirrel.Expr("NOW()"),
	})
}

// Complete завершает аренду и записывает фактическое время возврата
func (r *Repository) Complete(ctx context.Context, id int64, returnedAt time.Time) error {
	return r.update(ctx, "Complete", id, domain.StatusActive, map[string]interface{}{
		"status":      domain.StatusCompleted,
		"returned_at": returnedAt,
		"updated_at":  squirrel.Expr("NOW()"),
	})
}

// Cancel отменяет бронирование с указанием причины
func (r *Repository) Cancel(ctx context.Context, id int64, from domain.BookingStatus, reason string, cancelledAt time.Time) error {
	return r.update(ctx, "Cancel", id, from, map[string]interface{}{
		"status":              domain.StatusCancelled,
		"cancellation_reason": reason,
		"cancelled_at":        cancelledAt,
		"updated_at":          squirrel.Expr("NOW()"),
	})
}

func (r *Repository) update(ctx context.Context, op string, id int64, from domain.BookingStatus, set map[string]interface{}) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		SetMap(set).
		Where(squirrel.Eq{"id": id, "status": from}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %w", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %w", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %w", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrStatusConflict
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var holdID uuid.NullUUID
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.VehicleID,
		&holdID,
		&booking.PickupLocationID,
		&booking.DropoffLocationID,
		&booking.StartAt,
		&booking.EndAt,
		&booking.Status,
		&booking.ProtectionTier,
		&booking.TotalAmount,
		&booking.TotalDays,
		&booking.DepositAmount,
		&booking.ReturnedAt,
		&booking.CancellationReason,
		&booking.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if holdID.Valid {
		booking.HoldID = &holdID.UUID
	}
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %w", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %w", ErrScanRow, err)
	}

	return bookings, nil
}

func statusStrings(statuses []domain.BookingStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
