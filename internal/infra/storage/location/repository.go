package location

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

var columns = []string{"id", "name", "city", "address", "latitude", "longitude"}

// Repository репозиторий локаций выдачи
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория локаций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает локацию по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Location, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("locations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	var loc domain.Location
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&loc.ID,
		&loc.Name,
		&loc.City,
		&loc.Address,
		&loc.Latitude,
		&loc.Longitude,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrLocationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan location: %w", ErrScanRow, err)
	}

	return &loc, nil
}

// Exists проверяет существование локации
func (r *Repository) Exists(ctx context.Context, id int64) (bool, error) {
	_, err := r.GetByID(ctx, id)
	if errors.Is(err, ErrLocationNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
