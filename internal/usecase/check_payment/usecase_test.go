package check_payment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murlyka/CatCafe-BookingService/internal/integrations/monobank"
	"github.com/murlyka/CatCafe-BookingService/internal/usecase/reconcile_payment"
)

type stubPaymentClient struct {
	status *monobank.InvoiceStatus
	err    error
}

func (s *stubPaymentClient) GetInvoiceStatus(_ context.Context, _ string) (*monobank.InvoiceStatus, error) {
	return s.status, s.err
}

type stubReconciler struct {
	lastRequest *reconcile_payment.Request
	response    *reconcile_payment.Response
	err         error
}

func (s *stubReconciler) Execute(_ context.Context, req *reconcile_payment.Request) (*reconcile_payment.Response, error) {
	s.lastRequest = req
	if s.err != nil {
		return nil, s.err
	}
	return s.response, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExecute_SuccessfulInvoiceReconciled(t *testing.T) {
	client := &stubPaymentClient{status: &monobank.InvoiceStatus{
		InvoiceID: "inv-1",
		Status:    monobank.InvoiceStatusSuccess,
		Reference: "b-1",
	}}
	reconciler := &stubReconciler{response: &reconcile_payment.Response{
		BookingID: "b-1",
		Updated:   true,
	}}

	uc := NewUseCase(client, reconciler, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{InvoiceID: "inv-1"})
	require.NoError(t, err)

	assert.True(t, resp.Updated)
	assert.Equal(t, "b-1", resp.BookingID)
	assert.Equal(t, monobank.InvoiceStatusSuccess, resp.Status)

	// Статус провайдера передаётся в сверку как есть
	require.NotNil(t, reconciler.lastRequest)
	assert.Equal(t, "inv-1", reconciler.lastRequest.InvoiceID)
	assert.Equal(t, "b-1", reconciler.lastRequest.Reference)
}

func TestExecute_PendingInvoiceIsNoop(t *testing.T) {
	client := &stubPaymentClient{status: &monobank.InvoiceStatus{
		InvoiceID: "inv-1",
		Status:    monobank.InvoiceStatusCreated,
		Reference: "b-1",
	}}
	reconciler := &stubReconciler{response: &reconcile_payment.Response{Updated: false}}

	uc := NewUseCase(client, reconciler, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{InvoiceID: "inv-1"})
	require.NoError(t, err)

	assert.False(t, resp.Updated)
	assert.Equal(t, monobank.InvoiceStatusCreated, resp.Status)
}

func TestExecute_InvoiceNotFound(t *testing.T) {
	client := &stubPaymentClient{err: monobank.ErrInvoiceNotFound}
	uc := NewUseCase(client, &stubReconciler{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{InvoiceID: "inv-404"})
	assert.ErrorIs(t, err, ErrInvoiceNotFound)
}

func TestExecute_BookingNotFound(t *testing.T) {
	client := &stubPaymentClient{status: &monobank.InvoiceStatus{
		InvoiceID: "inv-1",
		Status:    monobank.InvoiceStatusSuccess,
	}}
	reconciler := &stubReconciler{err: reconcile_payment.ErrBookingNotFound}

	uc := NewUseCase(client, reconciler, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{InvoiceID: "inv-1"})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_PaymentsDisabled(t *testing.T) {
	uc := NewUseCase(nil, &stubReconciler{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{InvoiceID: "inv-1"})
	assert.ErrorIs(t, err, ErrPaymentsDisabled)
}

func TestExecute_EmptyInvoiceID(t *testing.T) {
	uc := NewUseCase(&stubPaymentClient{}, &stubReconciler{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
