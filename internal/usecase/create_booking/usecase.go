package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/murlyka/CatCafe-BookingService/internal/domain"
	scheduleRepo "github.com/murlyka/CatCafe-BookingService/internal/infra/storage/schedule"
	servicesRepo "github.com/murlyka/CatCafe-BookingService/internal/infra/storage/services"
	"github.com/murlyka/CatCafe-BookingService/internal/integrations/monobank"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo   BookingRepository
	serviceRepo   ServiceRepository
	scheduleRepo  ScheduleRepository
	paymentClient PaymentClient
	txManager     TransactionManager
	timeProvider  TimeProvider
	config        Config
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
// paymentClient может быть nil - тогда бронирования создаются без инвойса
func NewUseCase(
	bookingRepo BookingRepository,
	serviceRepo ServiceRepository,
	scheduleRepo ScheduleRepository,
	paymentClient PaymentClient,
	txManager TransactionManager,
	config Config,
	logger Logger,
) *UseCase {
	if config.SlotStepMinutes <= 0 {
		config.SlotStepMinutes = domain.DefaultSlotStepMinutes
	}
	if config.CurrencyCode <= 0 {
		config.CurrencyCode = domain.CurrencyUAH
	}

	return &UseCase{
		bookingRepo:   bookingRepo,
		serviceRepo:   serviceRepo,
		scheduleRepo:  scheduleRepo,
		paymentClient: paymentClient,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		config:        config,
		logger:        logger,
	}
}

// Execute выполняет use case создания бронирования
// Бронирование сначала сохраняется локально в статусе pending/unpaid,
// и только потом запрашивается инвойс у провайдера: сбой провайдера
// не теряет бронирование, а лишь оставляет его без ссылки на оплату
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: service=%d, date=%s, time=%s, guests=%d",
		req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime, req.GuestsCount)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Проверяем, что дата не в прошлом
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("CreateBooking: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 4. Получаем услугу и проверяем, что она доступна для бронирования
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, servicesRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if !service.IsBookable() {
		uc.logger.Warn("CreateBooking: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceInactive
	}

	// 5. Получаем расписание работы на день недели визита
	day, err := uc.scheduleRepo.GetByWeekday(ctx, int(req.Date.Weekday()))
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrDayNotFound) {
			uc.logger.Warn("CreateBooking: no schedule for weekday=%d, cafe is closed", int(req.Date.Weekday()))
			return nil, ErrCafeClosed
		}
		uc.logger.Error("CreateBooking: failed to get schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	// 6. Проверяем, что окно визита умещается в рабочие часы
	if err := validateWindow(day, req.StartTime, service.DurationMinutes); err != nil {
		uc.logger.Warn("CreateBooking: window validation failed: %v", err)
		return nil, err
	}

	// 7. Проверяем минимальное время до визита при бронировании на сегодня
	if err := validateBookingTime(req.Date, req.StartTime, now, uc.config.MinNoticeMinutes); err != nil {
		uc.logger.Warn("CreateBooking: booking time validation failed: %v", err)
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 8. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 8.1. Проверяем вместимость кафе, если ограничение включено
		// Бронирования на эту дату читаются с блокировкой (FOR UPDATE)
		if uc.config.DailyGuestCapacity > 0 {
			filter := domain.BookingsFilter{
				StartDate:       &req.Date,
				EndDate:         &req.Date,
				IncludeInactive: false, // Только активные бронирования
			}

			bookings, err := uc.bookingRepo.List(txCtx, filter)
			if err != nil {
				uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
				return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
			}

			overlappingGuests, err := countOverlappingGuests(req.StartTime, service.DurationMinutes, bookings)
			if err != nil {
				uc.logger.Error("CreateBooking: failed to count overlapping guests: %v", err)
				return fmt.Errorf("%w: failed to count overlapping guests: %v", ErrInternal, err)
			}

			if overlappingGuests+req.GuestsCount > uc.config.DailyGuestCapacity {
				uc.logger.Warn("CreateBooking: no capacity, %d/%d guests taken, requested %d",
					overlappingGuests, uc.config.DailyGuestCapacity, req.GuestsCount)
				return ErrSlotNotAvailable
			}

			uc.logger.Info("CreateBooking: capacity ok, %d/%d guests taken",
				overlappingGuests, uc.config.DailyGuestCapacity)
		}

		// 8.2. Создаем бронирование в статусе pending/unpaid
		booking := &domain.Booking{
			ID:              uuid.NewString(),
			ServiceID:       req.ServiceID,
			BookingDate:     req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: service.DurationMinutes,
			GuestsCount:     req.GuestsCount,
			TotalPrice:      service.Price * float64(req.GuestsCount),
			Status:          domain.StatusPending,
			PaymentStatus:   domain.PaymentUnpaid,
			CustomerName:    req.CustomerName,
			CustomerPhone:   req.CustomerPhone,
			CustomerEmail:   req.CustomerEmail,
			Comment:         req.Comment,
			// Денормализация данных услуги
			ServiceName: service.Name,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", result.ID)

	resp := &Response{
		ID:              result.ID,
		ServiceID:       result.ServiceID,
		ServiceName:     result.ServiceName,
		BookingDate:     result.BookingDate,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		GuestsCount:     result.GuestsCount,
		TotalPrice:      result.TotalPrice,
		Status:          string(result.Status),
		PaymentStatus:   string(result.PaymentStatus),
		CreatedAt:       result.CreatedAt,
	}

	// 9. Запрашиваем инвойс у провайдера (после фиксации бронирования)
	if uc.paymentClient != nil {
		invoice, err := uc.requestInvoice(ctx, result)
		if err != nil {
			// Сбой провайдера не отменяет бронирование: инвойс можно
			// выставить позже через админский эндпоинт
			uc.logger.Warn("CreateBooking: failed to create invoice for booking id=%s: %v", result.ID, err)
			return resp, nil
		}

		resp.InvoiceID = invoice.InvoiceID
		resp.PageURL = invoice.PageURL
	}

	return resp, nil
}

// requestInvoice создает инвойс у провайдера и привязывает его к бронированию
// Reference инвойса равен ID бронирования - по нему сходится сверка платежей
func (uc *UseCase) requestInvoice(ctx context.Context, booking *domain.Booking) (*monobank.Invoice, error) {
	invoiceReq := &monobank.CreateInvoiceRequest{
		Amount: domain.PriceToMinorUnits(booking.TotalPrice),
		Ccy:    uc.config.CurrencyCode,
		MerchantPaymInfo: monobank.MerchantPaymInfo{
			Reference:   booking.ID,
			Destination: booking.ServiceName,
		},
		RedirectURL: strings.ReplaceAll(uc.config.RedirectURL, "{id}", booking.ID),
		WebHookURL:  uc.config.WebhookURL,
	}

	invoice, err := uc.paymentClient.CreateInvoice(ctx, invoiceReq)
	if err != nil {
		return nil, err
	}

	if err := uc.bookingRepo.SetInvoice(ctx, booking.ID, invoice.InvoiceID); err != nil {
		// Инвойс создан, но не привязан: сверка по reference найдёт
		// бронирование по ID, поэтому возвращаем инвойс клиенту
		uc.logger.Error("CreateBooking: failed to link invoice %s to booking id=%s: %v",
			invoice.InvoiceID, booking.ID, err)
	}

	return invoice, nil
}
