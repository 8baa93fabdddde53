package vehicle

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	"github.com/m04kA/SMC-CarRentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CarRentalService/pkg/psqlbuilder"
)

var columns = []string{
	"v.id",
	"v.location_id",
	"v.category_id",
	"c.name",
	"c.protection_group",
	"v.make",
	"v.model",
	"v.daily_rate",
	"v.seats",
	"v.fuel_type",
	"v.transmission",
	"v.is_available",
	"v.cleaning_buffer_hours",
	"v.tank_capacity_litres",
	"v.created_at",
	"v.updated_at",
}

// Repository репозиторий машин
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория машин
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

func (r *Repository) baseSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(columns...).
		From("vehicles v").
		Join("vehicle_categories c ON c.id = v.category_id")
}

// ListCandidates возвращает доступные к аренде машины локации и машины без привязки к локации
// locationID == nil означает поиск по всем локациям
// Фильтры применяются на стороне БД; резолвер повторно проверяет их в памяти
func (r *Repository) ListCandidates(ctx context.Context, locationID *int64, filter *domain.VehicleFilter) ([]*domain.Vehicle, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	sb := r.baseSelect().Where(squirrel.Eq{"v.is_available": true})

	if locationID != nil {
		sb = sb.Where(squirrel.Or{
			squirrel.Eq{"v.location_id": *locationID},
			squirrel.Eq{"v.location_id": nil},
		})
	}

	if filter != nil {
		if filter.Category != nil {
			sb = sb.Where("LOWER(c.name) = LOWER(?)", *filter.Category)
		}
		if filter.MinPrice != nil {
			sb = sb.Where(squirrel.GtOrEq{"v.daily_rate": *filter.MinPrice})
		}
		if filter.MaxPrice != nil {
			sb = sb.Where(squirrel.LtOrEq{"v.daily_rate": *filter.MaxPrice})
		}
		if filter.Seats != nil {
			sb = sb.Where(squirrel.GtOrEq{"v.seats": *filter.Seats})
		}
		if filter.Transmission != nil {
			sb = sb.Where("LOWER(v.transmission) = LOWER(?)", *filter.Transmission)
		}
		if filter.FuelType != nil {
			sb = sb.Where("LOWER(v.fuel_type) = LOWER(?)", *filter.FuelType)
		}
	}

	query, args, err := sb.OrderBy("v.daily_rate ASC", "v.id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListCandidates - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCandidates - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	vehicles := make([]*domain.Vehicle, 0)
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListCandidates - scan row: %w", ErrScanRow, err)
		}
		vehicles = append(vehicles, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCandidates - rows error: %w", ErrScanRow, err)
	}

	return vehicles, nil
}

// GetByID получает машину по ID
// Внутри транзакции блокирует строку машины (FOR UPDATE), чтобы параллельные
// бронирования одной машины выполнялись последовательно
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	sb := r.baseSelect().Where(squirrel.Eq{"v.id": id})
	if dbmetrics.IsInTransaction(ctx) {
		sb = sb.Suffix("FOR UPDATE OF v")
	}

	query, args, err := sb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	v, err := scanVehicle(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrVehicleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan vehicle: %w", ErrScanRow, err)
	}

	return v, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanVehicle(row rowScanner) (*domain.Vehicle, error) {
	var v domain.Vehicle
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&v.ID,
		&v.LocationID,
		&v.CategoryID,
		&v.CategoryName,
		&v.ProtectionGroup,
		&v.Make,
		&v.Model,
		&v.DailyRate,
		&v.Seats,
		&v.FuelType,
		&v.Transmission,
		&v.IsAvailable,
		&v.CleaningBufferHours,
		&v.TankCapacityLitres,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	v.CreatedAt = createdAt.Time
	v.UpdatedAt = updatedAt.Time

	return &v, nil
}
