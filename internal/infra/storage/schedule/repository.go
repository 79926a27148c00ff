package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/murlyka/CatCafe-BookingService/internal/domain"
	"github.com/murlyka/CatCafe-BookingService/pkg/dbmetrics"
	"github.com/murlyka/CatCafe-BookingService/pkg/psqlbuilder"
)

var scheduleColumns = []string{
	"weekday",
	"is_open",
	"open_time",
	"close_time",
	"break_start",
	"break_end",
	"updated_at",
}

// Repository репозиторий недельного расписания работы
// Расписание редактируется админкой; здесь только чтение
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByWeekday получает расписание на день недели (time.Weekday: воскресенье = 0)
func (r *Repository) GetByWeekday(ctx context.Context, weekday int) (*domain.DaySchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(scheduleColumns...).
		From("working_hours").
		Where(squirrel.Eq{"weekday": weekday}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByWeekday - build select query: %v", ErrBuildQuery, err)
	}

	var day domain.DaySchedule
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&day.Weekday,
		&day.IsOpen,
		&day.OpenTime,
		&day.CloseTime,
		&day.BreakStart,
		&day.BreakEnd,
		&day.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrDayNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByWeekday - scan day: %v", ErrScanRow, err)
	}

	return &day, nil
}

// GetWeek получает расписание на всю неделю, отсортированное по дню недели
func (r *Repository) GetWeek(ctx context.Context) ([]*domain.DaySchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(scheduleColumns...).
		From("working_hours").
		OrderBy("weekday ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetWeek - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWeek - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	week := make([]*domain.DaySchedule, 0, 7)
	for rows.Next() {
		var day domain.DaySchedule
		err := rows.Scan(
			&day.Weekday,
			&day.IsOpen,
			&day.OpenTime,
			&day.CloseTime,
			&day.BreakStart,
			&day.BreakEnd,
			&day.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetWeek - scan row: %v", ErrScanRow, err)
		}
		week = append(week, &day)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetWeek - rows error: %v", ErrScanRow, err)
	}

	return week, nil
}
