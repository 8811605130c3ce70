package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/toyesterday/agenda/internal/domain"
	profRepo "github.com/toyesterday/agenda/internal/infra/storage/professional"
)

// Service сервис управления недельным расписанием мастеров.
// Движок доступности расписание только читает; единственная точка
// записи - этот сервис.
type Service struct {
	scheduleRepo ScheduleRepository
	profRepo     ProfessionalRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(
	scheduleRepo ScheduleRepository,
	profRepo ProfessionalRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		profRepo:     profRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// ReplaceWeek заменяет недельное расписание мастера целиком
func (s *Service) ReplaceWeek(ctx context.Context, professionalID int64, entries []domain.WeeklySchedule) error {
	s.logger.Info("ReplaceWeek: replacing schedule for professional=%d, %d entries", professionalID, len(entries))

	if err := validateEntries(entries); err != nil {
		s.logger.Warn("ReplaceWeek: validation failed for professional=%d: %v", professionalID, err)
		return err
	}

	if _, err := s.profRepo.GetByID(ctx, professionalID); err != nil {
		if errors.Is(err, profRepo.ErrProfessionalNotFound) {
			s.logger.Warn("ReplaceWeek: professional id=%d not found", professionalID)
			return ErrProfessionalNotFound
		}
		s.logger.Error("ReplaceWeek: failed to get professional id=%d: %v", professionalID, err)
		return fmt.Errorf("%w: ReplaceWeek - get professional: %v", ErrInternal, err)
	}

	// delete + insert должны пройти атомарно, иначе между ними
	// расчёт доступности увидит пустое расписание
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := s.scheduleRepo.ReplaceWeek(txCtx, professionalID, entries); err != nil {
			return fmt.Errorf("%w: ReplaceWeek - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("ReplaceWeek: transaction failed for professional=%d: %v", professionalID, err)
		return err
	}

	s.logger.Info("ReplaceWeek: schedule replaced for professional=%d", professionalID)
	return nil
}

// validateEntries проверяет инварианты недельного расписания:
// день недели в [0..6], не более одной записи на день,
// для рабочего дня заданы границы и start < end.
// Рабочее окно через местную полночь не поддерживается.
func validateEntries(entries []domain.WeeklySchedule) error {
	seen := make(map[int]bool, len(entries))

	for _, entry := range entries {
		if entry.DayOfWeek < domain.MinWeekday || entry.DayOfWeek > domain.MaxWeekday {
			return fmt.Errorf("%w: day_of_week %d out of range [0..6]", ErrInvalidInput, entry.DayOfWeek)
		}
		if seen[entry.DayOfWeek] {
			return fmt.Errorf("%w: duplicate entry for day_of_week %d", ErrInvalidInput, entry.DayOfWeek)
		}
		seen[entry.DayOfWeek] = true

		if !entry.IsAvailable {
			continue
		}
		if entry.StartTime == nil || entry.EndTime == nil {
			return fmt.Errorf("%w: available day %d requires start_time and end_time", ErrInvalidInput, entry.DayOfWeek)
		}
		if !entry.StartTime.IsBefore(*entry.EndTime) {
			return fmt.Errorf("%w: day %d start_time %s must be before end_time %s",
				ErrInvalidInput, entry.DayOfWeek, entry.StartTime, entry.EndTime)
		}
	}

	return nil
}
