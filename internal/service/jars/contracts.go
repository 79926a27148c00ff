package jars

import (
	"context"

	"github.com/murlyka/CatCafe-BookingService/internal/domain"
	"github.com/murlyka/CatCafe-BookingService/internal/integrations/monobank"
)

// JarRepository интерфейс репозитория банок
type JarRepository interface {
	GetByExternalID(ctx context.Context, externalID string) (*domain.FundraisingJar, error)
	List(ctx context.Context) ([]*domain.FundraisingJar, error)
	SetCurrentAmount(ctx context.Context, externalID string, amount float64) error
}

// PaymentClient интерфейс клиента платёжного провайдера
type PaymentClient interface {
	GetJar(ctx context.Context, jarID string) (*monobank.Jar, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
