package create_booking

import (
	"context"
	"time"

	"github.com/murlyka/CatCafe-BookingService/internal/domain"
	"github.com/murlyka/CatCafe-BookingService/internal/integrations/monobank"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	SetInvoice(ctx context.Context, bookingID, invoiceID string) error
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, serviceID int64) (*domain.Service, error)
}

// ScheduleRepository интерфейс репозитория расписания работы
type ScheduleRepository interface {
	GetByWeekday(ctx context.Context, weekday int) (*domain.DaySchedule, error)
}

// PaymentClient интерфейс клиента платёжного провайдера
// Может быть nil-обёрткой, если провайдер не сконфигурирован
type PaymentClient interface {
	CreateInvoice(ctx context.Context, req *monobank.CreateInvoiceRequest) (*monobank.Invoice, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
