package override

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/CurtBryan/party-lab-sub000/internal/domain"
	"github.com/CurtBryan/party-lab-sub000/pkg/dbmetrics"
	"github.com/CurtBryan/party-lab-sub000/pkg/psqlbuilder"
)

// DBExecutor интерфейс исполнителя запросов
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы с административными правилами
// запрета доступности
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория правил
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое правило запрета
func (r *Repository) Create(ctx context.Context, o *domain.AvailabilityOverride) (*domain.AvailabilityOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("availability_overrides").
		Columns(
			"override_date",
			"product",
			"slot_label",
			"reason",
		).
		Values(
			o.Date,
			o.Product,
			o.SlotLabel,
			o.Reason,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&o.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	o.CreatedAt = createdAt.Time
	return o, nil
}

// GetForDate получает все правила, действующие на дату.
// Вызывается проверкой доступности при каждом запросе слотов и при коммите.
func (r *Repository) GetForDate(ctx context.Context, date time.Time) ([]*domain.AvailabilityOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"override_date",
		"product",
		"slot_label",
		"reason",
		"created_at",
	).
		From("availability_overrides").
		Where(squirrel.Eq{"override_date": date}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetForDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetForDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanOverrides(rows)
}

// Delete удаляет правило по ID
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("availability_overrides").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrOverrideNotFound
	}

	return nil
}

// scanOverrides сканирует результаты запроса в слайс правил
func (r *Repository) scanOverrides(rows *sql.Rows) ([]*domain.AvailabilityOverride, error) {
	overrides := make([]*domain.AvailabilityOverride, 0)

	for rows.Next() {
		var o domain.AvailabilityOverride
		var product sql.NullString
		var slotLabel sql.NullString
		var createdAt sql.NullTime

		err := rows.Scan(
			&o.ID,
			&o.Date,
			&product,
			&slotLabel,
			&o.Reason,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanOverrides - scan row: %v", ErrScanRow, err)
		}

		if product.Valid {
			p := domain.Product(product.String)
			o.Product = &p
		}
		if slotLabel.Valid {
			s := slotLabel.String
			o.SlotLabel = &s
		}
		o.CreatedAt = createdAt.Time

		overrides = append(overrides, &o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanOverrides - rows error: %v", ErrScanRow, err)
	}

	return overrides, nil
}
