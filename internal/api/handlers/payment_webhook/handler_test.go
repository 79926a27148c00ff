package payment_webhook

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	reconcilePayment "github.com/murlyka/CatCafe-BookingService/internal/usecase/reconcile_payment"
)

type stubReconciler struct {
	lastRequest *reconcilePayment.Request
	response    *reconcilePayment.Response
	err         error
}

func (s *stubReconciler) Execute(_ context.Context, req *reconcilePayment.Request) (*reconcilePayment.Response, error) {
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

func TestHandle_GetHandshake(t *testing.T) {
	handler := NewHandler(&stubReconciler{}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/payments/webhook", nil)
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandle_SuccessfulPayment(t *testing.T) {
	reconciler := &stubReconciler{response: &reconcilePayment.Response{
		BookingID: "b-1",
		Updated:   true,
	}}
	handler := NewHandler(reconciler, nopLogger{})

	body := `{"invoiceId":"inv-1","status":"success","reference":"b-1","amount":70000}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/webhook", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, reconciler.lastRequest)
	assert.Equal(t, "inv-1", reconciler.lastRequest.InvoiceID)
	assert.Equal(t, "b-1", reconciler.lastRequest.Reference)
	assert.Equal(t, "success", reconciler.lastRequest.Status)
}

func TestHandle_UnknownBookingIsAcked(t *testing.T) {
	reconciler := &stubReconciler{err: reconcilePayment.ErrBookingNotFound}
	handler := NewHandler(reconciler, nopLogger{})

	body := `{"invoiceId":"inv-404","status":"success","reference":"b-404"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/webhook", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	// Подтверждаем, чтобы провайдер не ретраил бесконечно
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandle_InvalidBody(t *testing.T) {
	handler := NewHandler(&stubReconciler{}, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/webhook", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InternalErrorTriggersRetry(t *testing.T) {
	reconciler := &stubReconciler{err: reconcilePayment.ErrInternal}
	handler := NewHandler(reconciler, nopLogger{})

	body := `{"invoiceId":"inv-1","status":"success"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/webhook", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
