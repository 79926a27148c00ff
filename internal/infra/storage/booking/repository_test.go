package booking

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murlyka/CatCafe-BookingService/internal/domain"
	"github.com/murlyka/CatCafe-BookingService/pkg/types"
)

func newTestRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), mock
}

func bookingRows() *sqlmock.Rows {
	return sqlmock.NewRows(bookingColumns)
}

func addBookingRow(rows *sqlmock.Rows, id string, status domain.BookingStatus, paymentStatus domain.PaymentStatus, paymentID interface{}) *sqlmock.Rows {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	return rows.AddRow(
		id,                // id
		int64(1),          // service_id
		"Котокафе: визит", // service_name
		time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), // booking_date
		"14:00:00",            // start_time
		60,                    // duration_minutes
		2,                     // guests_count
		700.0,                 // total_price
		"Мария",               // customer_name
		"+380501234567",       // customer_phone
		"maria@example.com",   // customer_email
		nil,                   // comment
		string(status),        // status
		string(paymentStatus), // payment_status
		paymentID,             // payment_id
		nil,                   // cancellation_reason
		nil,                   // cancelled_at
		now,                   // created_at
		now,                   // updated_at
	)
}

func TestCreate(t *testing.T) {
	repo, mock := newTestRepository(t)

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`INSERT INTO bookings`).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	booking := &domain.Booking{
		ID:              "b-1",
		ServiceID:       1,
		ServiceName:     "Котокафе: визит",
		BookingDate:     time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		StartTime:       types.TimeString("14:00"),
		DurationMinutes: 60,
		GuestsCount:     2,
		TotalPrice:      700.0,
		CustomerName:    "Мария",
		CustomerPhone:   "+380501234567",
		Status:          domain.StatusPending,
		PaymentStatus:   domain.PaymentUnpaid,
	}

	created, err := repo.Create(context.Background(), booking)
	require.NoError(t, err)

	assert.Equal(t, now, created.CreatedAt)
	assert.Equal(t, now, created.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID(t *testing.T) {
	repo, mock := newTestRepository(t)

	rows := addBookingRow(bookingRows(), "b-1", domain.StatusPending, domain.PaymentUnpaid, nil)
	mock.ExpectQuery(`SELECT .+ FROM bookings WHERE id = \$1`).
		WithArgs("b-1").
		WillReturnRows(rows)

	booking, err := repo.GetByID(context.Background(), "b-1")
	require.NoError(t, err)

	assert.Equal(t, "b-1", booking.ID)
	assert.Equal(t, domain.StatusPending, booking.Status)
	assert.Equal(t, types.TimeString("14:00"), booking.StartTime)
	assert.Nil(t, booking.PaymentID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectQuery(`SELECT .+ FROM bookings WHERE id = \$1`).
		WithArgs("b-404").
		WillReturnRows(bookingRows())

	_, err := repo.GetByID(context.Background(), "b-404")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetByPaymentID(t *testing.T) {
	repo, mock := newTestRepository(t)

	rows := addBookingRow(bookingRows(), "b-1", domain.StatusPending, domain.PaymentUnpaid, "inv-1")
	mock.ExpectQuery(`SELECT .+ FROM bookings WHERE payment_id = \$1`).
		WithArgs("inv-1").
		WillReturnRows(rows)

	booking, err := repo.GetByPaymentID(context.Background(), "inv-1")
	require.NoError(t, err)

	assert.Equal(t, "b-1", booking.ID)
	require.NotNil(t, booking.PaymentID)
	assert.Equal(t, "inv-1", *booking.PaymentID)
}

func TestSetInvoice(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectExec(`UPDATE bookings SET payment_id = \$1, updated_at = NOW\(\) WHERE id = \$2 AND payment_id IS NULL`).
		WithArgs("inv-1", "b-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SetInvoice(context.Background(), "b-1", "inv-1")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetInvoice_AlreadyLinked(t *testing.T) {
	repo, mock := newTestRepository(t)

	// Бронирование существует, но payment_id уже установлен - update не затронул строк
	mock.ExpectExec(`UPDATE bookings SET payment_id = \$1`).
		WithArgs("inv-2", "b-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	rows := addBookingRow(bookingRows(), "b-1", domain.StatusPending, domain.PaymentUnpaid, "inv-1")
	mock.ExpectQuery(`SELECT .+ FROM bookings WHERE id = \$1`).
		WithArgs("b-1").
		WillReturnRows(rows)

	err := repo.SetInvoice(context.Background(), "b-1", "inv-2")
	assert.ErrorIs(t, err, ErrInvoiceAlreadyLinked)
}

func TestSetInvoice_BookingNotFound(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectExec(`UPDATE bookings SET payment_id = \$1`).
		WithArgs("inv-1", "b-404").
		WillReturnResult(sqlmock.NewResult(0, 0))

	mock.ExpectQuery(`SELECT .+ FROM bookings WHERE id = \$1`).
		WithArgs("b-404").
		WillReturnRows(bookingRows())

	err := repo.SetInvoice(context.Background(), "b-404", "inv-1")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestSetInvoice_DuplicateInvoice(t *testing.T) {
	repo, mock := newTestRepository(t)

	// Уникальный индекс по payment_id: инвойс уже привязан к другому бронированию
	mock.ExpectExec(`UPDATE bookings SET payment_id = \$1`).
		WithArgs("inv-1", "b-2").
		WillReturnError(&pq.Error{Code: pq.ErrorCode(uniqueViolationCode)})

	err := repo.SetInvoice(context.Background(), "b-2", "inv-1")
	assert.ErrorIs(t, err, ErrDuplicateInvoice)
}

func TestMarkPaid(t *testing.T) {
	repo, mock := newTestRepository(t)

	rows := addBookingRow(bookingRows(), "b-1", domain.StatusConfirmed, domain.PaymentPaid, "inv-1")
	mock.ExpectQuery(`UPDATE bookings SET payment_status = \$1, status = \$2, payment_id = COALESCE\(payment_id, NULLIF\(\$3, ''\)\), updated_at = NOW\(\) WHERE id = \$4 RETURNING`).
		WithArgs(string(domain.PaymentPaid), string(domain.StatusConfirmed), "inv-1", "b-1").
		WillReturnRows(rows)

	updated, err := repo.MarkPaid(context.Background(), "b-1", "inv-1")
	require.NoError(t, err)

	assert.Equal(t, domain.StatusConfirmed, updated.Status)
	assert.Equal(t, domain.PaymentPaid, updated.PaymentStatus)
	require.NotNil(t, updated.PaymentID)
	assert.Equal(t, "inv-1", *updated.PaymentID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkPaid_NotFound(t *testing.T) {
	repo, mock := newTestRepository(t)

	mock.ExpectQuery(`UPDATE bookings SET payment_status = \$1`).
		WithArgs(string(domain.PaymentPaid), string(domain.StatusConfirmed), "inv-1", "b-404").
		WillReturnRows(bookingRows())

	_, err := repo.MarkPaid(context.Background(), "b-404", "inv-1")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestList_ExcludesInactiveByDefault(t *testing.T) {
	repo, mock := newTestRepository(t)

	rows := addBookingRow(bookingRows(), "b-1", domain.StatusPending, domain.PaymentUnpaid, nil)
	mock.ExpectQuery(`SELECT .+ FROM bookings WHERE status NOT IN \(\$1\) ORDER BY booking_date DESC, start_time DESC`).
		WithArgs(string(domain.StatusCancelled)).
		WillReturnRows(rows)

	bookings, err := repo.List(context.Background(), domain.BookingsFilter{})
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "b-1", bookings[0].ID)
}

func TestList_SingleDateOrdersByStartTime(t *testing.T) {
	repo, mock := newTestRepository(t)

	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT .+ FROM bookings WHERE booking_date >= \$1 AND booking_date <= \$2 AND status NOT IN \(\$3\) ORDER BY start_time ASC`).
		WithArgs(date, date, string(domain.StatusCancelled)).
		WillReturnRows(bookingRows())

	bookings, err := repo.List(context.Background(), domain.BookingsFilter{
		StartDate: &date,
		EndDate:   &date,
	})
	require.NoError(t, err)
	assert.Empty(t, bookings)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancel(t *testing.T) {
	repo, mock := newTestRepository(t)

	rows := addBookingRow(bookingRows(), "b-1", domain.StatusCancelled, domain.PaymentUnpaid, nil)
	mock.ExpectQuery(`UPDATE bookings SET status = \$1, cancellation_reason = \$2`).
		WithArgs(
			string(domain.StatusCancelled),
			"клиент заболел",
			"b-1",
			string(domain.StatusPending),
			string(domain.StatusConfirmed),
		).
		WillReturnRows(rows)

	cancelled, err := repo.Cancel(context.Background(), "b-1", "клиент заболел")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, cancelled.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	repo, mock := newTestRepository(t)

	// Update не нашёл строк в допустимом статусе, но бронирование существует
	mock.ExpectQuery(`UPDATE bookings SET status = \$1, cancellation_reason = \$2`).
		WithArgs(
			string(domain.StatusCancelled),
			"повторная отмена",
			"b-1",
			string(domain.StatusPending),
			string(domain.StatusConfirmed),
		).
		WillReturnRows(bookingRows())

	rows := addBookingRow(bookingRows(), "b-1", domain.StatusCancelled, domain.PaymentUnpaid, nil)
	mock.ExpectQuery(`SELECT .+ FROM bookings WHERE id = \$1`).
		WithArgs("b-1").
		WillReturnRows(rows)

	_, err := repo.Cancel(context.Background(), "b-1", "повторная отмена")
	assert.ErrorIs(t, err, ErrCannotCancel)
}
