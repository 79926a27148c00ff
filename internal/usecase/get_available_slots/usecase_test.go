package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murlyka/CatCafe-BookingService/internal/domain"
	scheduleRepo "github.com/murlyka/CatCafe-BookingService/internal/infra/storage/schedule"
	servicesRepo "github.com/murlyka/CatCafe-BookingService/internal/infra/storage/services"
	"github.com/murlyka/CatCafe-BookingService/pkg/ptr"
	"github.com/murlyka/CatCafe-BookingService/pkg/types"
)

type stubServiceRepo struct {
	service *domain.Service
	err     error
}

func (s *stubServiceRepo) GetByID(_ context.Context, _ int64) (*domain.Service, error) {
	return s.service, s.err
}

type stubScheduleRepo struct {
	day *domain.DaySchedule
	err error
}

func (s *stubScheduleRepo) GetByWeekday(_ context.Context, _ int) (*domain.DaySchedule, error) {
	return s.day, s.err
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(svc *stubServiceRepo, sched *stubScheduleRepo, now time.Time) *UseCase {
	uc := NewUseCase(svc, sched, Config{SlotStepMinutes: 60}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func TestExecute_ReturnsWindows(t *testing.T) {
	now := time.Date(2025, 10, 10, 12, 0, 0, 0, time.UTC)
	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

	svc := &stubServiceRepo{service: &domain.Service{
		ID: 1, Name: "Час с котиками", DurationMinutes: 60, Price: 350, Active: true,
	}}
	sched := &stubScheduleRepo{day: &domain.DaySchedule{
		Weekday:   int(date.Weekday()),
		IsOpen:    true,
		OpenTime:  ptr.Ptr(types.TimeString("10:00")),
		CloseTime: ptr.Ptr(types.TimeString("13:00")),
	}}

	uc := newTestUseCase(svc, sched, now)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, Date: date})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 3)
	assert.Equal(t, "10:00-11:00", resp.Slots[0].Window())
	assert.Equal(t, "12:00-13:00", resp.Slots[2].Window())
}

func TestExecute_ServiceNotFound(t *testing.T) {
	now := time.Date(2025, 10, 10, 12, 0, 0, 0, time.UTC)

	svc := &stubServiceRepo{err: servicesRepo.ErrServiceNotFound}
	uc := newTestUseCase(svc, &stubScheduleRepo{}, now)

	_, err := uc.Execute(context.Background(), &Request{
		ServiceID: 42,
		Date:      time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_InactiveService(t *testing.T) {
	now := time.Date(2025, 10, 10, 12, 0, 0, 0, time.UTC)

	svc := &stubServiceRepo{service: &domain.Service{ID: 1, DurationMinutes: 60, Active: false}}
	uc := newTestUseCase(svc, &stubScheduleRepo{}, now)

	_, err := uc.Execute(context.Background(), &Request{
		ServiceID: 1,
		Date:      time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrServiceInactive)
}

func TestExecute_MissingScheduleMeansClosed(t *testing.T) {
	now := time.Date(2025, 10, 10, 12, 0, 0, 0, time.UTC)

	svc := &stubServiceRepo{service: &domain.Service{ID: 1, DurationMinutes: 60, Active: true}}
	sched := &stubScheduleRepo{err: scheduleRepo.ErrDayNotFound}
	uc := newTestUseCase(svc, sched, now)

	resp, err := uc.Execute(context.Background(), &Request{
		ServiceID: 1,
		Date:      time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_InvalidInput(t *testing.T) {
	now := time.Date(2025, 10, 10, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&stubServiceRepo{}, &stubScheduleRepo{}, now)

	_, err := uc.Execute(context.Background(), &Request{ServiceID: 0, Date: now})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ServiceID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
