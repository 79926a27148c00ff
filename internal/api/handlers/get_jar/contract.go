package get_jar

import (
	"context"

	"github.com/murlyka/CatCafe-BookingService/internal/service/jars/models"
)

type JarService interface {
	List(ctx context.Context) (*models.JarListResponse, error)
	Sync(ctx context.Context, externalID string) (*models.JarResponse, error)
	GetProviderStatus(ctx context.Context, jarID string) (*models.ProviderJarResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
