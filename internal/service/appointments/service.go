package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/toyesterday/agenda/internal/domain"
	apptRepo "github.com/toyesterday/agenda/internal/infra/storage/appointment"
	"github.com/toyesterday/agenda/internal/integrations/notify"
	"github.com/toyesterday/agenda/internal/service/appointments/models"
)

// Service сервис для работы с записями клиентов
type Service struct {
	apptRepo  AppointmentRepository
	profRepo  ProfessionalRepository
	loyalty   LoyaltyLedger
	notifier  Notifier
	cache     AvailabilityCache
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	apptRepo AppointmentRepository,
	profRepo ProfessionalRepository,
	loyalty LoyaltyLedger,
	notifier Notifier,
	cache AvailabilityCache,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		apptRepo:  apptRepo,
		profRepo:  profRepo,
		loyalty:   loyalty,
		notifier:  notifier,
		cache:     cache,
		txManager: txManager,
		logger:    logger,
	}
}

// GetByClient получает историю записей клиента
func (s *Service) GetByClient(ctx context.Context, clientID int64) ([]*models.AppointmentResponse, error) {
	s.logger.Info("GetByClient: fetching appointments for client=%d", clientID)

	appointments, err := s.apptRepo.GetByClientID(ctx, clientID)
	if err != nil {
		s.logger.Error("GetByClient: repository error for client=%d: %v", clientID, err)
		return nil, fmt.Errorf("%w: GetByClient - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByClient: fetched %d appointments for client=%d", len(appointments), clientID)
	return models.FromDomainAppointmentList(appointments), nil
}

// CancelByToken отменяет запись по публичному токену самостоятельной отмены.
// Отменить можно только подтверждённую запись. После отмены слот снова
// становится доступным, поэтому кеш доступности этого дня инвалидируется.
func (s *Service) CancelByToken(ctx context.Context, appointmentID int64, token string) (*models.AppointmentResponse, error) {
	s.logger.Info("CancelByToken: cancelling appointment id=%d", appointmentID)

	if token == "" {
		return nil, fmt.Errorf("%w: cancellation token is required", ErrInvalidInput)
	}

	appt, err := s.apptRepo.CancelByToken(ctx, appointmentID, token)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("CancelByToken: appointment id=%d not found or token mismatch", appointmentID)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("CancelByToken: repository error for appointment id=%d: %v", appointmentID, err)
		return nil, fmt.Errorf("%w: CancelByToken - repository error: %v", ErrInternal, err)
	}

	s.invalidateAvailability(ctx, appt)

	s.notifier.Dispatch(notify.AppointmentEvent{
		Type:           notify.EventAppointmentCancelled,
		AppointmentID:  appt.ID,
		BusinessID:     appt.BusinessID,
		ProfessionalID: appt.ProfessionalID,
		ClientID:       appt.ClientID,
		ServiceName:    appt.ServiceName,
		StartTime:      appt.StartTime,
	})

	s.logger.Info("CancelByToken: appointment id=%d cancelled", appointmentID)
	return models.FromDomainAppointment(appt), nil
}

// UpdateStatus меняет статус записи.
// Переход в completed начисляет балл лояльности, переход из completed
// обратно - снимает; оба срабатывают ровно один раз на переход (повторное
// сохранение того же статуса - no-op). Ошибки лояльности логируются и
// глотаются: потеря балла допустима, блокировка сохранения записи - нет.
func (s *Service) UpdateStatus(ctx context.Context, appointmentID int64, req *models.UpdateStatusRequest) (*models.UpdateStatusResponse, error) {
	s.logger.Info("UpdateStatus: appointment id=%d -> %s", appointmentID, req.Status)

	newStatus, ok := models.ToDomainAppointmentStatus(req.Status)
	if !ok {
		s.logger.Warn("UpdateStatus: invalid status %q for appointment id=%d", req.Status, appointmentID)
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}

	var (
		prevStatus domain.AppointmentStatus
		updated    *domain.Appointment
	)

	// Читаем и меняем статус в одной транзакции: переход определяется
	// парой (старый, новый), и параллельное обновление не должно
	// привести к двойному начислению
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		appt, err := s.apptRepo.GetByID(txCtx, appointmentID)
		if err != nil {
			if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			return fmt.Errorf("%w: UpdateStatus - get appointment: %v", ErrInternal, err)
		}

		prevStatus = appt.Status

		// Сохранение без смены статуса - no-op
		if prevStatus == newStatus {
			updated = appt
			return nil
		}

		updated, err = s.apptRepo.UpdateStatus(txCtx, appointmentID, newStatus)
		if err != nil {
			return fmt.Errorf("%w: UpdateStatus - update: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%d not found", appointmentID)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: transaction failed for appointment id=%d: %v", appointmentID, err)
		return nil, err
	}

	resp := &models.UpdateStatusResponse{Appointment: models.FromDomainAppointment(updated)}

	if prevStatus != newStatus {
		resp.RewardGranted = s.applyLoyaltyTransition(ctx, updated, prevStatus, newStatus)
		s.invalidateAvailability(ctx, updated)

		if newStatus == domain.StatusCompleted {
			event := notify.AppointmentEvent{
				Type:           notify.EventAppointmentCompleted,
				AppointmentID:  updated.ID,
				BusinessID:     updated.BusinessID,
				ProfessionalID: updated.ProfessionalID,
				ClientID:       updated.ClientID,
				ServiceName:    updated.ServiceName,
				StartTime:      updated.StartTime,
			}
			if resp.RewardGranted != nil {
				event.RewardGranted = *resp.RewardGranted
			}
			s.notifier.Dispatch(event)
		}
	}

	s.logger.Info("UpdateStatus: appointment id=%d status %s -> %s", appointmentID, prevStatus, newStatus)
	return resp, nil
}

// applyLoyaltyTransition применяет переход лояльности после смены статуса.
// Возвращает признак награды при переходе в completed, иначе nil.
func (s *Service) applyLoyaltyTransition(ctx context.Context, appt *domain.Appointment, prev, next domain.AppointmentStatus) *bool {
	switch {
	case next == domain.StatusCompleted && prev != domain.StatusCompleted:
		result, err := s.loyalty.Accrue(ctx, appt.ClientID, appt.ServiceName)
		if err != nil {
			// Балл потерян, но сохранение записи уже прошло - не откатываем
			s.logger.Error("UpdateStatus: loyalty accrue failed for appointment id=%d client=%d: %v",
				appt.ID, appt.ClientID, err)
			return nil
		}
		return &result.RewardGranted

	case prev == domain.StatusCompleted && next != domain.StatusCompleted:
		if err := s.loyalty.Deduct(ctx, appt.ClientID, appt.ServiceName); err != nil {
			s.logger.Error("UpdateStatus: loyalty deduct failed for appointment id=%d client=%d: %v",
				appt.ID, appt.ClientID, err)
		}
	}
	return nil
}

// invalidateAvailability сбрасывает кеш доступности для местной даты записи.
// Дата считается в часовом поясе бизнеса: UTC-момент около полуночи может
// относиться к другой местной дате.
func (s *Service) invalidateAvailability(ctx context.Context, appt *domain.Appointment) {
	business, err := s.profRepo.GetBusiness(ctx, appt.BusinessID)
	if err != nil {
		s.logger.Warn("invalidateAvailability: failed to get business id=%d: %v", appt.BusinessID, err)
		return
	}

	loc, err := business.Location()
	if err != nil {
		s.logger.Warn("invalidateAvailability: invalid timezone %q for business id=%d: %v",
			business.Timezone, appt.BusinessID, err)
		return
	}

	localDay, _ := domain.LocalDayOf(appt.StartTime, loc)
	s.cache.Invalidate(ctx, appt.ProfessionalID, localDay.Format(domain.DateFormat))
}
