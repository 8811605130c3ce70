package blockedslots

import (
	"context"
	"errors"
	"fmt"

	"github.com/toyesterday/agenda/internal/domain"
	profRepo "github.com/toyesterday/agenda/internal/infra/storage/professional"
)

// Service сервис блокировок времени (отпуск, перерыв, санитарный день).
// Блокировка без мастера действует на всех мастеров бизнеса.
type Service struct {
	blockedRepo BlockedSlotRepository
	profRepo    ProfessionalRepository
	cache       AvailabilityCache
	logger      Logger
}

// NewService создает новый экземпляр сервиса блокировок
func NewService(
	blockedRepo BlockedSlotRepository,
	profRepo ProfessionalRepository,
	cache AvailabilityCache,
	logger Logger,
) *Service {
	return &Service{
		blockedRepo: blockedRepo,
		profRepo:    profRepo,
		cache:       cache,
		logger:      logger,
	}
}

// Create создает блокировку времени
func (s *Service) Create(ctx context.Context, slot *domain.BlockedSlot) (*domain.BlockedSlot, error) {
	s.logger.Info("Create: blocking interval for business=%d", slot.BusinessID)

	if err := validateSlot(slot); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	// Для персональной блокировки проверяем, что мастер существует
	// и принадлежит этому бизнесу
	if slot.ProfessionalID != nil {
		prof, err := s.profRepo.GetByID(ctx, *slot.ProfessionalID)
		if err != nil {
			if errors.Is(err, profRepo.ErrProfessionalNotFound) {
				s.logger.Warn("Create: professional id=%d not found", *slot.ProfessionalID)
				return nil, ErrProfessionalNotFound
			}
			s.logger.Error("Create: failed to get professional id=%d: %v", *slot.ProfessionalID, err)
			return nil, fmt.Errorf("%w: Create - get professional: %v", ErrInternal, err)
		}
		if prof.BusinessID != slot.BusinessID {
			s.logger.Warn("Create: professional id=%d belongs to another business", *slot.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
	}

	created, err := s.blockedRepo.Create(ctx, slot)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	// Персональную блокировку можно инвалидировать точечно;
	// общая для бизнеса покрывается коротким TTL кеша
	if created.ProfessionalID != nil {
		s.cache.Invalidate(ctx, *created.ProfessionalID, created.StartTime.Format(domain.DateFormat))
	}

	s.logger.Info("Create: blocked slot id=%d created for business=%d", created.ID, created.BusinessID)
	return created, nil
}

func validateSlot(slot *domain.BlockedSlot) error {
	if slot.BusinessID <= 0 {
		return fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}
	if slot.StartTime.IsZero() || slot.EndTime.IsZero() {
		return fmt.Errorf("%w: start_time and end_time are required", ErrInvalidInput)
	}
	if !slot.StartTime.Before(slot.EndTime) {
		return fmt.Errorf("%w: start_time must be before end_time", ErrInvalidInput)
	}
	if slot.Reason != nil && len(*slot.Reason) > domain.MaxReasonLength {
		return fmt.Errorf("%w: reason exceeds %d characters", ErrInvalidInput, domain.MaxReasonLength)
	}
	return nil
}
