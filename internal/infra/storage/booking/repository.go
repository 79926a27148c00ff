package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/murlyka/CatCafe-BookingService/internal/domain"
	"github.com/murlyka/CatCafe-BookingService/pkg/dbmetrics"
	"github.com/murlyka/CatCafe-BookingService/pkg/psqlbuilder"
)

// uniqueViolationCode код ошибки PostgreSQL при нарушении уникального индекса
const uniqueViolationCode = "23505"

// bookingColumns колонки таблицы bookings в порядке сканирования
var bookingColumns = []string{
	"id",
	"service_id",
	"service_name",
	"booking_date",
	"start_time",
	"duration_minutes",
	"guests_count",
	"total_price",
	"customer_name",
	"customer_phone",
	"customer_email",
	"comment",
	"status",
	"payment_status",
	"payment_id",
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
// ID (UUID) генерируется вызывающей стороной до вставки.
// Если в контексте передана активная транзакция, использует её -
// это нужно для проверки вместимости зала под блокировкой
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"service_id",
			"service_name",
			"booking_date",
			"start_time",
			"duration_minutes",
			"guests_count",
			"total_price",
			"customer_name",
			"customer_phone",
			"customer_email",
			"comment",
			"status",
			"payment_status",
		).
		Values(
			booking.ID,
			booking.ServiceID,
			booking.ServiceName,
			booking.BookingDate,
			booking.StartTime,
			booking.DurationMinutes,
			booking.GuestsCount,
			booking.TotalPrice,
			booking.CustomerName,
			booking.CustomerPhone,
			booking.CustomerEmail,
			booking.Comment,
			booking.Status,
			booking.PaymentStatus,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanBooking(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// GetByPaymentID получает бронирование по ID инвойса платёжного провайдера
func (r *Repository) GetByPaymentID(ctx context.Context, paymentID string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"payment_id": paymentID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByPaymentID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanBooking(executor.QueryRowContext(ctx, query, args...), "GetByPaymentID")
}

// List получает бронирования с гибкой фильтрацией
//
// Примеры использования:
//
//  1. Все активные бронирования:
//     filter := domain.BookingsFilter{}
//
//  2. Бронирования на конкретную дату:
//     date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
//     filter := domain.BookingsFilter{StartDate: &date, EndDate: &date}
//
//  3. Неоплаченные бронирования с инвойсом (для ручной сверки):
//     ps := domain.PaymentUnpaid
//     filter := domain.BookingsFilter{PaymentStatus: &ps}
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings")

	// Фильтрация по периоду
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"booking_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"booking_date": *filter.EndDate})
	}

	// Фильтрация по статусу
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		// Если не указан конкретный статус и не нужны неактивные - исключаем их
		inactiveStatusStrings := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactiveStatusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactiveStatusStrings})
	}

	// Фильтрация по статусу оплаты
	if filter.PaymentStatus != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"payment_status": *filter.PaymentStatus})
	}

	// Определяем сортировку в зависимости от фильтра
	singleDate := filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.Equal(*filter.EndDate)
	if singleDate {
		// Для конкретной даты сортируем по времени начала (ASC)
		selectBuilder = selectBuilder.OrderBy("start_time ASC")
	} else {
		// Для периода сортируем по дате и времени (DESC - сначала новые)
		selectBuilder = selectBuilder.OrderBy("booking_date DESC, start_time DESC")
	}

	// Внутри транзакции на конкретную дату блокируем строки -
	// так проверка вместимости при создании бронирования не гоняется с параллельной вставкой
	if dbmetrics.IsInTransaction(ctx) && singleDate {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// SetInvoice привязывает инвойс платёжного провайдера к бронированию
// payment_id после установки не меняется: обновляются только строки с payment_id IS NULL
func (r *Repository) SetInvoice(ctx context.Context, id string, paymentID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("payment_id", paymentID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where("payment_id IS NULL").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetInvoice - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateInvoice
		}
		return fmt.Errorf("%w: SetInvoice - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetInvoice - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		// Либо бронирования нет, либо инвойс уже привязан - различаем по выборке
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return ErrInvoiceAlreadyLinked
	}

	return nil
}

// MarkPaid переводит бронирование в оплаченное и подтверждённое состояние
// и привязывает инвойс, если он ещё не был привязан при создании.
// Операция идемпотентна: повторный вызов для уже оплаченного бронирования
// устанавливает те же значения и также завершается успехом
func (r *Repository) MarkPaid(ctx context.Context, id string, paymentID string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("payment_status", domain.PaymentPaid).
		Set("status", domain.StatusConfirmed).
		Set("payment_id", squirrel.Expr("COALESCE(payment_id, NULLIF(?, ''))", paymentID)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(bookingColumns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: MarkPaid - build update query: %v", ErrBuildQuery, err)
	}

	return r.scanBooking(executor.QueryRowContext(ctx, query, args...), "MarkPaid")
}

// UpdateStatus обновляет статус бронирования (ручное управление администратором)
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(bookingColumns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.scanBooking(executor.QueryRowContext(ctx, query, args...), "UpdateStatus")
}

// UpdatePaymentStatus обновляет статус оплаты (возвраты, ручные корректировки)
func (r *Repository) UpdatePaymentStatus(ctx context.Context, id string, status domain.PaymentStatus) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("payment_status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(bookingColumns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdatePaymentStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.scanBooking(executor.QueryRowContext(ctx, query, args...), "UpdatePaymentStatus")
}

// Cancel отменяет бронирование с указанием причины
// Статус проверяется прямо в условии - параллельная отмена или завершение
// не даст перевести бронирование в отменённое повторно
func (r *Repository) Cancel(ctx context.Context, id string, reason string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": []string{string(domain.StatusPending), string(domain.StatusConfirmed)}}).
		Suffix("RETURNING " + strings.Join(bookingColumns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	cancelled, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...), "Cancel")
	if errors.Is(err, ErrBookingNotFound) {
		// Либо бронирования нет, либо его статус не допускает отмену
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return nil, getErr
		}
		return nil, ErrCannotCancel
	}
	return cancelled, err
}

// scanBooking сканирует одну строку результата в модель бронирования
func (r *Repository) scanBooking(row *sql.Row, op string) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.ServiceID,
		&booking.ServiceName,
		&booking.BookingDate,
		&booking.StartTime,
		&booking.DurationMinutes,
		&booking.GuestsCount,
		&booking.TotalPrice,
		&booking.CustomerName,
		&booking.CustomerPhone,
		&booking.CustomerEmail,
		&booking.Comment,
		&booking.Status,
		&booking.PaymentStatus,
		&booking.PaymentID,
		&booking.CancellationReason,
		&booking.CancelledAt,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan booking: %v", ErrScanRow, op, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var booking domain.Booking
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.ServiceID,
			&booking.ServiceName,
			&booking.BookingDate,
			&booking.StartTime,
			&booking.DurationMinutes,
			&booking.GuestsCount,
			&booking.TotalPrice,
			&booking.CustomerName,
			&booking.CustomerPhone,
			&booking.CustomerEmail,
			&booking.Comment,
			&booking.Status,
			&booking.PaymentStatus,
			&booking.PaymentID,
			&booking.CancellationReason,
			&booking.CancelledAt,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		booking.CreatedAt = createdAt.Time
		booking.UpdatedAt = updatedAt.Time

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// isUniqueViolation проверяет, что ошибка вызвана нарушением уникального индекса
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolationCode
	}
	return false
}
