package bookings

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/murlyka/CatCafe-BookingService/internal/infra/storage/booking"
	"github.com/murlyka/CatCafe-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// List получает бронирования с гибкой фильтрацией
// Поддерживает фильтрацию по периоду, статусу, статусу оплаты
// и включению отменённых бронирований
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings, status=%v, paymentStatus=%v, includeInactive=%v",
		req.Status, req.PaymentStatus, req.IncludeInactive)

	// Конвертируем request в domain фильтр
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование с указанием причины
// Завершённые и уже отменённые бронирования отменить нельзя
func (s *Service) Cancel(ctx context.Context, id string, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%s", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%s cannot be cancelled (status=%s)", id, booking.Status)
		return nil, ErrCannotCancel
	}

	cancelled, err := s.bookingRepo.Cancel(ctx, id, req.CancellationReason)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		if errors.Is(err, bookingRepo.ErrCannotCancel) {
			return nil, ErrCannotCancel
		}
		s.logger.Error("Cancel: failed to cancel booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%s", id)
	return models.FromDomainBooking(cancelled), nil
}

// UpdateStatus обновляет статус бронирования
func (s *Service) UpdateStatus(ctx context.Context, id string, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: booking id=%s, status=%s", id, req.Status)

	status, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%s", req.Status, id)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	updated, err := s.bookingRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: booking id=%s updated to status=%s", id, status)
	return models.FromDomainBooking(updated), nil
}

// UpdatePaymentStatus обновляет статус оплаты бронирования
// Ручная корректировка для возвратов и оплат мимо провайдера
func (s *Service) UpdatePaymentStatus(ctx context.Context, id string, req *models.UpdatePaymentStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdatePaymentStatus: booking id=%s, paymentStatus=%s", id, req.PaymentStatus)

	status, err := models.ToDomainPaymentStatus(req.PaymentStatus)
	if err != nil {
		s.logger.Warn("UpdatePaymentStatus: invalid status=%s for booking id=%s", req.PaymentStatus, id)
		return nil, fmt.Errorf("%w: invalid payment status", ErrInvalidInput)
	}

	updated, err := s.bookingRepo.UpdatePaymentStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdatePaymentStatus: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdatePaymentStatus: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdatePaymentStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdatePaymentStatus: booking id=%s updated to paymentStatus=%s", id, status)
	return models.FromDomainBooking(updated), nil
}
