package jar_webhook

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/murlyka/CatCafe-BookingService/internal/service/jars"
)

type stubJarService struct {
	account      string
	balanceMinor int64
	calls        int
	err          error
}

func (s *stubJarService) ApplyStatement(_ context.Context, account string, balanceMinor int64) error {
	s.calls++
	s.account = account
	s.balanceMinor = balanceMinor
	return s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle_GetHandshake(t *testing.T) {
	handler := NewHandler(&stubJarService{}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/jars/webhook", nil)
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandle_StatementItemAppliesBalance(t *testing.T) {
	service := &stubJarService{}
	handler := NewHandler(service, nopLogger{})

	body := `{
		"type": "StatementItem",
		"data": {
			"account": "jar-1",
			"statementItem": {"id": "st-1", "amount": 5000, "balance": 125050}
		}
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/jars/webhook", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, service.calls)
	assert.Equal(t, "jar-1", service.account)
	assert.Equal(t, int64(125050), service.balanceMinor)
}

func TestHandle_OtherEventTypesAreIgnored(t *testing.T) {
	service := &stubJarService{}
	handler := NewHandler(service, nopLogger{})

	body := `{"type": "SomethingElse", "data": {}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/jars/webhook", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, service.calls)
}

func TestHandle_UntrackedJarIsAcked(t *testing.T) {
	service := &stubJarService{err: jars.ErrJarNotFound}
	handler := NewHandler(service, nopLogger{})

	body := `{
		"type": "StatementItem",
		"data": {"account": "jar-unknown", "statementItem": {"balance": 100}}
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/jars/webhook", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandle_InvalidBody(t *testing.T) {
	handler := NewHandler(&stubJarService{}, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/jars/webhook", strings.NewReader("not json"))
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
