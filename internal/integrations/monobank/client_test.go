package monobank

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestClient(baseURL string) *Client {
	return NewClient(baseURL, "test-token", 5*time.Second, nopLogger{})
}

func TestCreateInvoice(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/merchant/invoice/create", r.URL.Path)
		assert.Equal(t, "test-token", r.Header.Get("X-Token"))

		var req CreateInvoiceRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(70000), req.Amount)
		assert.Equal(t, 980, req.Ccy)
		assert.Equal(t, "booking-1", req.MerchantPaymInfo.Reference)

		_ = json.NewEncoder(w).Encode(Invoice{
			InvoiceID: "inv-1",
			PageURL:   "https://pay.example.com/inv-1",
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	invoice, err := client.CreateInvoice(context.Background(), &CreateInvoiceRequest{
		Amount: 70000,
		Ccy:    980,
		MerchantPaymInfo: MerchantPaymInfo{
			Reference: "booking-1",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "inv-1", invoice.InvoiceID)
	assert.Equal(t, "https://pay.example.com/inv-1", invoice.PageURL)
}

func TestCreateInvoice_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.CreateInvoice(context.Background(), &CreateInvoiceRequest{Amount: 100, Ccy: 980})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestCreateInvoice_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(apiError{ErrCode: "BAD_REQUEST", ErrText: "invalid amount"})
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.CreateInvoice(context.Background(), &CreateInvoiceRequest{Ccy: 980})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProvider)
	assert.Contains(t, err.Error(), "invalid amount")
}

func TestGetInvoiceStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/merchant/invoice/status", r.URL.Path)
		assert.Equal(t, "inv-1", r.URL.Query().Get("invoiceId"))

		_ = json.NewEncoder(w).Encode(InvoiceStatus{
			InvoiceID: "inv-1",
			Status:    InvoiceStatusSuccess,
			Amount:    70000,
			Ccy:       980,
			Reference: "booking-1",
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	status, err := client.GetInvoiceStatus(context.Background(), "inv-1")
	require.NoError(t, err)
	assert.True(t, status.IsPaid())
	assert.Equal(t, "booking-1", status.Reference)
}

func TestGetInvoiceStatus_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.GetInvoiceStatus(context.Background(), "inv-404")
	assert.ErrorIs(t, err, ErrInvoiceNotFound)
}

func TestGetJar(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/personal/client-info", r.URL.Path)
		assert.Equal(t, "test-token", r.Header.Get("X-Token"))

		_ = json.NewEncoder(w).Encode(clientInfo{
			ClientID: "c-1",
			Jars: []Jar{
				{ID: "jar-1", SendID: "send-1", Title: "На корм котикам", Balance: 125050},
				{ID: "jar-2", SendID: "send-2", Title: "Другое", Balance: 10},
			},
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	jar, err := client.GetJar(context.Background(), "jar-1")
	require.NoError(t, err)
	assert.Equal(t, int64(125050), jar.Balance)

	// Банка ищется и по короткому sendId
	jar, err = client.GetJar(context.Background(), "send-2")
	require.NoError(t, err)
	assert.Equal(t, "jar-2", jar.ID)

	_, err = client.GetJar(context.Background(), "jar-404")
	assert.ErrorIs(t, err, ErrJarNotFound)
}
