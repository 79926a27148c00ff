package reconcile_payment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murlyka/CatCafe-BookingService/internal/domain"
	bookingRepo "github.com/murlyka/CatCafe-BookingService/internal/infra/storage/booking"
	"github.com/murlyka/CatCafe-BookingService/pkg/ptr"
)

type stubBookingRepo struct {
	byPayment map[string]*domain.Booking
	byID      map[string]*domain.Booking

	markPaidCalls int
}

func (s *stubBookingRepo) GetByPaymentID(_ context.Context, invoiceID string) (*domain.Booking, error) {
	if b, ok := s.byPayment[invoiceID]; ok {
		return b, nil
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (s *stubBookingRepo) GetByID(_ context.Context, bookingID string) (*domain.Booking, error) {
	if b, ok := s.byID[bookingID]; ok {
		return b, nil
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (s *stubBookingRepo) MarkPaid(_ context.Context, bookingID, invoiceID string) (*domain.Booking, error) {
	s.markPaidCalls++
	b, ok := s.byID[bookingID]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	updated := *b
	updated.Status = domain.StatusConfirmed
	updated.PaymentStatus = domain.PaymentPaid
	updated.PaymentID = ptr.Ptr(invoiceID)
	return &updated, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func unpaidBooking(id string) *domain.Booking {
	return &domain.Booking{
		ID:            id,
		Status:        domain.StatusPending,
		PaymentStatus: domain.PaymentUnpaid,
	}
}

func TestExecute_MarksBookingPaid(t *testing.T) {
	booking := unpaidBooking("b-1")
	booking.PaymentID = ptr.Ptr("inv-1")

	repo := &stubBookingRepo{
		byPayment: map[string]*domain.Booking{"inv-1": booking},
		byID:      map[string]*domain.Booking{"b-1": booking},
	}

	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		InvoiceID: "inv-1",
		Reference: "b-1",
		Status:    "success",
	})
	require.NoError(t, err)

	assert.True(t, resp.Updated)
	assert.Equal(t, "b-1", resp.BookingID)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, string(domain.PaymentPaid), resp.PaymentStatus)
	assert.Equal(t, 1, repo.markPaidCalls)
}

func TestExecute_NonFinalStatusIsNoop(t *testing.T) {
	repo := &stubBookingRepo{}
	uc := NewUseCase(repo, nopLogger{})

	for _, status := range []string{"created", "processing", "failure", "expired"} {
		resp, err := uc.Execute(context.Background(), &Request{
			InvoiceID: "inv-1",
			Status:    status,
		})
		require.NoError(t, err)
		assert.False(t, resp.Updated)
	}

	assert.Equal(t, 0, repo.markPaidCalls)
}

func TestExecute_AlreadyPaidIsIdempotent(t *testing.T) {
	booking := &domain.Booking{
		ID:            "b-1",
		Status:        domain.StatusConfirmed,
		PaymentStatus: domain.PaymentPaid,
		PaymentID:     ptr.Ptr("inv-1"),
	}

	repo := &stubBookingRepo{
		byPayment: map[string]*domain.Booking{"inv-1": booking},
		byID:      map[string]*domain.Booking{"b-1": booking},
	}

	uc := NewUseCase(repo, nopLogger{})

	// Повторная доставка вебхука не меняет состояние
	resp, err := uc.Execute(context.Background(), &Request{
		InvoiceID: "inv-1",
		Status:    "success",
	})
	require.NoError(t, err)

	assert.False(t, resp.Updated)
	assert.Equal(t, "b-1", resp.BookingID)
	assert.Equal(t, 0, repo.markPaidCalls)
}

func TestExecute_FallsBackToReference(t *testing.T) {
	// Инвойс не был привязан при создании - ищем по reference
	booking := unpaidBooking("b-2")

	repo := &stubBookingRepo{
		byPayment: map[string]*domain.Booking{},
		byID:      map[string]*domain.Booking{"b-2": booking},
	}

	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		InvoiceID: "inv-2",
		Reference: "b-2",
		Status:    "success",
	})
	require.NoError(t, err)

	assert.True(t, resp.Updated)
	assert.Equal(t, "b-2", resp.BookingID)
}

func TestExecute_BookingNotFound(t *testing.T) {
	repo := &stubBookingRepo{
		byPayment: map[string]*domain.Booking{},
		byID:      map[string]*domain.Booking{},
	}

	uc := NewUseCase(repo, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		InvoiceID: "inv-404",
		Reference: "b-404",
		Status:    "success",
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_EmptyRequest(t *testing.T) {
	uc := NewUseCase(&stubBookingRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Status: "success"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
