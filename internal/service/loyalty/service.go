package loyalty

import (
	"context"
	"errors"
	"fmt"

	"github.com/toyesterday/agenda/internal/domain"
	loyaltyRepo "github.com/toyesterday/agenda/internal/infra/storage/loyalty"
)

// Result результат начисления балла лояльности
type Result struct {
	NewCount      int
	RewardGranted bool
}

// Service сервис программы лояльности.
// Накопление идет по ключу (клиент, нормализованное имя услуги); имя с
// несколькими услугами через запятую даёт один составной ключ - поведение
// унаследовано от исходной программы и менять его без миграции данных нельзя.
type Service struct {
	repo   LoyaltyRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса лояльности
func NewService(repo LoyaltyRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Accrue начисляет один балл за завершённую услугу.
// Вызывается ровно один раз на переход записи в статус completed.
// Несуществующий клиент - не ошибка: возвращается нулевой результат,
// основная операция сохранения записи не должна от этого падать.
func (s *Service) Accrue(ctx context.Context, clientID int64, serviceName string) (*Result, error) {
	key := domain.NewServiceKey(serviceName)

	count, err := s.repo.Accrue(ctx, clientID, key)
	if err != nil {
		if errors.Is(err, loyaltyRepo.ErrClientNotFound) {
			s.logger.Warn("Accrue: client id=%d not found, skipping loyalty update", clientID)
			return &Result{NewCount: 0, RewardGranted: false}, nil
		}
		s.logger.Error("Accrue: repository error for client=%d key=%s: %v", clientID, key, err)
		return nil, fmt.Errorf("loyalty: accrue failed: %w", err)
	}

	// Ноль после инкремента означает, что порог достигнут:
	// счётчик сброшен и выдана награда
	rewardGranted := count == 0

	if rewardGranted {
		s.logger.Info("Accrue: client=%d key=%s reached reward threshold, counter reset", clientID, key)
	} else {
		s.logger.Info("Accrue: client=%d key=%s count=%d", clientID, key, count)
	}

	return &Result{NewCount: count, RewardGranted: rewardGranted}, nil
}

// Deduct снимает один балл при откате статуса completed (исправление ошибки
// оператора). Нулевой счётчик и несуществующий клиент - no-op.
func (s *Service) Deduct(ctx context.Context, clientID int64, serviceName string) error {
	key := domain.NewServiceKey(serviceName)

	if err := s.repo.Deduct(ctx, clientID, key); err != nil {
		s.logger.Error("Deduct: repository error for client=%d key=%s: %v", clientID, key, err)
		return fmt.Errorf("loyalty: deduct failed: %w", err)
	}

	s.logger.Info("Deduct: client=%d key=%s", clientID, key)
	return nil
}

// GetByClient возвращает счётчики лояльности клиента
func (s *Service) GetByClient(ctx context.Context, clientID int64) (map[domain.ServiceKey]int, error) {
	points, err := s.repo.GetByClient(ctx, clientID)
	if err != nil {
		s.logger.Error("GetByClient: repository error for client=%d: %v", clientID, err)
		return nil, fmt.Errorf("loyalty: get points failed: %w", err)
	}
	return points, nil
}
