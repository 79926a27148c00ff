package jar

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/murlyka/CatCafe-BookingService/internal/domain"
	"github.com/murlyka/CatCafe-BookingService/pkg/dbmetrics"
	"github.com/murlyka/CatCafe-BookingService/pkg/psqlbuilder"
)

var jarColumns = []string{
	"id",
	"external_id",
	"title",
	"description",
	"goal_amount",
	"current_amount",
	"created_at",
	"updated_at",
}

// Repository репозиторий банок для сбора донатов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория банок
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByExternalID получает банку по внешнему идентификатору провайдера
func (r *Repository) GetByExternalID(ctx context.Context, externalID string) (*domain.FundraisingJar, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(jarColumns...).
		From("fundraising_jars").
		Where(squirrel.Eq{"external_id": externalID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByExternalID - build select query: %v", ErrBuildQuery, err)
	}

	var j domain.FundraisingJar
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&j.ID,
		&j.ExternalID,
		&j.Title,
		&j.Description,
		&j.GoalAmount,
		&j.CurrentAmount,
		&j.CreatedAt,
		&j.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrJarNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByExternalID - scan jar: %v", ErrScanRow, err)
	}

	return &j, nil
}

// List получает все банки
func (r *Repository) List(ctx context.Context) ([]*domain.FundraisingJar, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(jarColumns...).
		From("fundraising_jars").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	jars := make([]*domain.FundraisingJar, 0)
	for rows.Next() {
		var j domain.FundraisingJar
		err := rows.Scan(
			&j.ID,
			&j.ExternalID,
			&j.Title,
			&j.Description,
			&j.GoalAmount,
			&j.CurrentAmount,
			&j.CreatedAt,
			&j.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		jars = append(jars, &j)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return jars, nil
}

// SetCurrentAmount перезаписывает накопленную сумму банки по внешнему идентификатору
// Вызывается вебхуком провайдера и ручной синхронизацией; последняя запись выигрывает
func (r *Repository) SetCurrentAmount(ctx context.Context, externalID string, amount float64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("fundraising_jars").
		Set("current_amount", amount).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"external_id": externalID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetCurrentAmount - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetCurrentAmount - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetCurrentAmount - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrJarNotFound
	}

	return nil
}
