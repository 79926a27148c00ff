package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/murlyka/CatCafe-BookingService/internal/domain"
	scheduleRepo "github.com/murlyka/CatCafe-BookingService/internal/infra/storage/schedule"
	servicesRepo "github.com/murlyka/CatCafe-BookingService/internal/infra/storage/services"
)

// UseCase use case для получения доступных окон визита
type UseCase struct {
	serviceRepo  ServiceRepository
	scheduleRepo ScheduleRepository
	timeProvider TimeProvider
	config       Config
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	serviceRepo ServiceRepository,
	scheduleRepo ScheduleRepository,
	config Config,
	logger Logger,
) *UseCase {
	if config.SlotStepMinutes <= 0 {
		config.SlotStepMinutes = domain.DefaultSlotStepMinutes
	}
	if config.MinNoticeMinutes < 0 {
		config.MinNoticeMinutes = domain.DefaultMinNoticeMinutes
	}

	return &UseCase{
		serviceRepo:  serviceRepo,
		scheduleRepo: scheduleRepo,
		timeProvider: &RealTimeProvider{},
		config:       config,
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных окон визита
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%d, date=%s",
		req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем услугу и проверяем, что она доступна для бронирования
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, servicesRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if !service.IsBookable() {
		uc.logger.Warn("GetAvailableSlots: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceInactive
	}

	// 4. Получаем расписание работы на день недели запрошенной даты
	day, err := uc.scheduleRepo.GetByWeekday(ctx, int(req.Date.Weekday()))
	if err != nil {
		// Отсутствие строки расписания трактуем как закрытый день
		if errors.Is(err, scheduleRepo.ErrDayNotFound) {
			uc.logger.Info("GetAvailableSlots: no schedule for weekday=%d, treating as closed", int(req.Date.Weekday()))
			return &Response{
				Date:      req.Date,
				ServiceID: req.ServiceID,
				Slots:     []domain.SlotWindow{},
			}, nil
		}
		uc.logger.Error("GetAvailableSlots: failed to get schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	// 5. Строим сетку окон с учетом длительности услуги, перерыва и текущего времени
	slots, err := generateSlotWindows(
		day,
		service.DurationMinutes,
		uc.config.SlotStepMinutes,
		req.Date,
		now,
		uc.config.MinNoticeMinutes,
	)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slot windows: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slot windows: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: generated %d windows for service=%d, date=%s",
		len(slots), req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:      req.Date,
		ServiceID: req.ServiceID,
		Slots:     slots,
	}, nil
}
