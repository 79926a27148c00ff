package jars

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murlyka/CatCafe-BookingService/internal/domain"
	jarRepo "github.com/murlyka/CatCafe-BookingService/internal/infra/storage/jar"
	"github.com/murlyka/CatCafe-BookingService/internal/integrations/monobank"
	"github.com/murlyka/CatCafe-BookingService/pkg/ptr"
)

type stubJarRepo struct {
	jars map[string]*domain.FundraisingJar

	lastAccount string
	lastAmount  float64
	setCalls    int
	setErr      error
}

func (s *stubJarRepo) GetByExternalID(_ context.Context, externalID string) (*domain.FundraisingJar, error) {
	if j, ok := s.jars[externalID]; ok {
		return j, nil
	}
	return nil, jarRepo.ErrJarNotFound
}

func (s *stubJarRepo) List(_ context.Context) ([]*domain.FundraisingJar, error) {
	jars := make([]*domain.FundraisingJar, 0, len(s.jars))
	for _, j := range s.jars {
		jars = append(jars, j)
	}
	return jars, nil
}

func (s *stubJarRepo) SetCurrentAmount(_ context.Context, externalID string, amount float64) error {
	s.setCalls++
	s.lastAccount = externalID
	s.lastAmount = amount
	if s.setErr != nil {
		return s.setErr
	}
	j, ok := s.jars[externalID]
	if !ok {
		return jarRepo.ErrJarNotFound
	}
	j.CurrentAmount = amount
	return nil
}

type stubPaymentClient struct {
	jar *monobank.Jar
	err error
}

func (s *stubPaymentClient) GetJar(_ context.Context, _ string) (*monobank.Jar, error) {
	return s.jar, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func trackedJar(externalID string) *domain.FundraisingJar {
	return &domain.FundraisingJar{
		ID:         1,
		ExternalID: externalID,
		Title:      "На корм котикам",
		GoalAmount: ptr.Ptr(10000.0),
	}
}

func TestApplyStatement_FloorsToWholeUnits(t *testing.T) {
	repo := &stubJarRepo{jars: map[string]*domain.FundraisingJar{
		"jar-1": trackedJar("jar-1"),
	}}
	service := NewService(repo, nil, "", nopLogger{})

	// Баланс 125050 копеек - копейки отбрасываются
	err := service.ApplyStatement(context.Background(), "jar-1", 125050)
	require.NoError(t, err)

	assert.Equal(t, 1, repo.setCalls)
	assert.Equal(t, "jar-1", repo.lastAccount)
	assert.Equal(t, 1250.0, repo.lastAmount)
}

func TestApplyStatement_OverwritesPreviousAmount(t *testing.T) {
	jar := trackedJar("jar-1")
	jar.CurrentAmount = 900.0

	repo := &stubJarRepo{jars: map[string]*domain.FundraisingJar{"jar-1": jar}}
	service := NewService(repo, nil, "", nopLogger{})

	// Баланс перезаписывается целиком, а не прибавляется
	require.NoError(t, service.ApplyStatement(context.Background(), "jar-1", 50000))
	assert.Equal(t, 500.0, jar.CurrentAmount)

	// Повторная доставка той же выписки результата не меняет
	require.NoError(t, service.ApplyStatement(context.Background(), "jar-1", 50000))
	assert.Equal(t, 500.0, jar.CurrentAmount)
}

func TestApplyStatement_UntrackedJar(t *testing.T) {
	repo := &stubJarRepo{jars: map[string]*domain.FundraisingJar{}}
	service := NewService(repo, nil, "", nopLogger{})

	err := service.ApplyStatement(context.Background(), "jar-unknown", 100)
	assert.ErrorIs(t, err, ErrJarNotFound)
}

func TestApplyStatement_EmptyAccount(t *testing.T) {
	service := NewService(&stubJarRepo{}, nil, "", nopLogger{})

	err := service.ApplyStatement(context.Background(), "", 100)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSync_UpdatesFromProvider(t *testing.T) {
	repo := &stubJarRepo{jars: map[string]*domain.FundraisingJar{
		"jar-1": trackedJar("jar-1"),
	}}
	client := &stubPaymentClient{jar: &monobank.Jar{
		ID:      "jar-1",
		Title:   "На корм котикам",
		Balance: 250000,
	}}
	service := NewService(repo, client, "", nopLogger{})

	resp, err := service.Sync(context.Background(), "jar-1")
	require.NoError(t, err)

	assert.Equal(t, 2500.0, resp.CurrentAmount)
	assert.Equal(t, "jar-1", resp.ExternalID)
	assert.False(t, resp.GoalReached)
}

func TestSync_ProviderDisabled(t *testing.T) {
	service := NewService(&stubJarRepo{}, nil, "", nopLogger{})

	_, err := service.Sync(context.Background(), "jar-1")
	assert.ErrorIs(t, err, ErrProviderDisabled)
}

func TestSync_ProviderJarNotFound(t *testing.T) {
	client := &stubPaymentClient{err: monobank.ErrJarNotFound}
	service := NewService(&stubJarRepo{}, client, "", nopLogger{})

	_, err := service.Sync(context.Background(), "jar-404")
	assert.ErrorIs(t, err, ErrJarNotFound)
}

func TestGetProviderStatus_DefaultJar(t *testing.T) {
	client := &stubPaymentClient{jar: &monobank.Jar{
		ID:      "jar-default",
		Title:   "На корм котикам",
		Balance: 125050,
		Goal:    ptr.Ptr(int64(1000000)),
	}}
	service := NewService(&stubJarRepo{}, client, "jar-default", nopLogger{})

	resp, err := service.GetProviderStatus(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, "jar-default", resp.ID)
	assert.Equal(t, 1250.0, resp.Balance)
	require.NotNil(t, resp.Goal)
	assert.Equal(t, 10000.0, *resp.Goal)
}

func TestGetProviderStatus_NoJarConfigured(t *testing.T) {
	service := NewService(&stubJarRepo{}, &stubPaymentClient{}, "", nopLogger{})

	_, err := service.GetProviderStatus(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
