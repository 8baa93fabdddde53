package addon

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CarRentalService/internal/domain"
	"github.com/m04kA/SMC-CarRentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CarRentalService/pkg/psqlbuilder"
)

var columns = []string{"id", "code", "name", "pricing", "price", "is_active"}

// Repository репозиторий каталога дополнительных опций
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория опций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListActive возвращает активные опции каталога
func (r *Repository) ListActive(ctx context.Context) ([]*domain.AddOn, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("add_ons").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAddOns(rows)
}

// GetByIDs возвращает опции по списку ID (включая неактивные)
func (r *Repository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.AddOn, error) {
	if len(ids) == 0 {
		return []*domain.AddOn{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("add_ons").
		Where(squirrel.Eq{"id": ids}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAddOns(rows)
}

func scanAddOns(rows *sql.Rows) ([]*domain.AddOn, error) {
	addOns := make([]*domain.AddOn, 0)

	for rows.Next() {
		var a domain.AddOn
		if err := rows.Scan(&a.ID, &a.Code, &a.Name, &a.Pricing, &a.Price, &a.IsActive); err != nil {
			return nil, fmt.Errorf("%w: scanAddOns - scan row: %w", ErrScanRow, err)
		}
		addOns = append(addOns, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAddOns - rows error: %w", ErrScanRow, err)
	}

	return addOns, nil
}
