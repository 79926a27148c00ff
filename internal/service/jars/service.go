package jars

import (
	"context"
	"errors"
	"fmt"

	"github.com/murlyka/CatCafe-BookingService/internal/domain"
	jarRepo "github.com/murlyka/CatCafe-BookingService/internal/infra/storage/jar"
	"github.com/murlyka/CatCafe-BookingService/internal/integrations/monobank"
	"github.com/murlyka/CatCafe-BookingService/internal/service/jars/models"
)

// Service сервис для работы с банками для сбора донатов
type Service struct {
	jarRepo       JarRepository
	paymentClient PaymentClient
	defaultJarID  string
	logger        Logger
}

// NewService создает новый экземпляр сервиса банок
// paymentClient может быть nil - тогда доступны только локальные данные
func NewService(jarRepo JarRepository, paymentClient PaymentClient, defaultJarID string, logger Logger) *Service {
	return &Service{
		jarRepo:       jarRepo,
		paymentClient: paymentClient,
		defaultJarID:  defaultJarID,
		logger:        logger,
	}
}

// List получает все банки с локально накопленными суммами
func (s *Service) List(ctx context.Context) (*models.JarListResponse, error) {
	s.logger.Info("List: fetching jars")

	jars, err := s.jarRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainJarList(jars), nil
}

// ApplyStatement применяет баланс из выписки провайдера к банке
// balanceMinor - полный баланс банки в минимальных единицах валюты,
// локальная сумма перезаписывается целиком, поэтому повторная доставка
// той же выписки результата не меняет
func (s *Service) ApplyStatement(ctx context.Context, account string, balanceMinor int64) error {
	if account == "" {
		return fmt.Errorf("%w: account is required", ErrInvalidInput)
	}

	amount := domain.MinorUnitsToAmount(balanceMinor)
	s.logger.Info("ApplyStatement: jar=%s, balance=%d minor units (%.2f)", account, balanceMinor, amount)

	if err := s.jarRepo.SetCurrentAmount(ctx, account, amount); err != nil {
		if errors.Is(err, jarRepo.ErrJarNotFound) {
			s.logger.Warn("ApplyStatement: jar %s is not tracked", account)
			return ErrJarNotFound
		}
		s.logger.Error("ApplyStatement: repository error for jar %s: %v", account, err)
		return fmt.Errorf("%w: ApplyStatement - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ApplyStatement: jar %s updated to %.2f", account, amount)
	return nil
}

// Sync подтягивает актуальный баланс банки от провайдера
// Резервный канал на случай потерянного вебхука
func (s *Service) Sync(ctx context.Context, externalID string) (*models.JarResponse, error) {
	s.logger.Info("Sync: syncing jar %s", externalID)

	if externalID == "" {
		return nil, fmt.Errorf("%w: externalId is required", ErrInvalidInput)
	}
	if s.paymentClient == nil {
		return nil, ErrProviderDisabled
	}

	providerJar, err := s.paymentClient.GetJar(ctx, externalID)
	if err != nil {
		if errors.Is(err, monobank.ErrJarNotFound) {
			s.logger.Warn("Sync: jar %s not found at provider", externalID)
			return nil, ErrJarNotFound
		}
		s.logger.Error("Sync: provider error for jar %s: %v", externalID, err)
		return nil, fmt.Errorf("%w: Sync - provider error: %v", ErrInternal, err)
	}

	amount := domain.MinorUnitsToAmount(providerJar.Balance)
	if err := s.jarRepo.SetCurrentAmount(ctx, externalID, amount); err != nil {
		if errors.Is(err, jarRepo.ErrJarNotFound) {
			return nil, ErrJarNotFound
		}
		s.logger.Error("Sync: repository error for jar %s: %v", externalID, err)
		return nil, fmt.Errorf("%w: Sync - repository error: %v", ErrInternal, err)
	}

	jar, err := s.jarRepo.GetByExternalID(ctx, externalID)
	if err != nil {
		s.logger.Error("Sync: failed to reload jar %s: %v", externalID, err)
		return nil, fmt.Errorf("%w: Sync - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Sync: jar %s synced to %.2f", externalID, amount)
	return models.FromDomainJar(jar), nil
}

// GetProviderStatus получает состояние банки напрямую от провайдера
// При пустом jarID используется банка по умолчанию из конфигурации
func (s *Service) GetProviderStatus(ctx context.Context, jarID string) (*models.ProviderJarResponse, error) {
	if jarID == "" {
		jarID = s.defaultJarID
	}
	if jarID == "" {
		return nil, fmt.Errorf("%w: jar id is required", ErrInvalidInput)
	}
	if s.paymentClient == nil {
		return nil, ErrProviderDisabled
	}

	s.logger.Info("GetProviderStatus: fetching jar %s from provider", jarID)

	providerJar, err := s.paymentClient.GetJar(ctx, jarID)
	if err != nil {
		if errors.Is(err, monobank.ErrJarNotFound) {
			s.logger.Warn("GetProviderStatus: jar %s not found at provider", jarID)
			return nil, ErrJarNotFound
		}
		s.logger.Error("GetProviderStatus: provider error for jar %s: %v", jarID, err)
		return nil, fmt.Errorf("%w: GetProviderStatus - provider error: %v", ErrInternal, err)
	}

	return models.FromProviderJar(providerJar), nil
}
