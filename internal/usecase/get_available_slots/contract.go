package get_available_slots

import (
	"context"
	"time"

	"github.com/murlyka/CatCafe-BookingService/internal/domain"
)

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	// GetByID получает услугу по идентификатору
	GetByID(ctx context.Context, serviceID int64) (*domain.Service, error)
}

// ScheduleRepository интерфейс репозитория расписания работы
type ScheduleRepository interface {
	// GetByWeekday получает расписание на день недели (воскресенье = 0)
	GetByWeekday(ctx context.Context, weekday int) (*domain.DaySchedule, error)
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
