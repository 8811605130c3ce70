package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/toyesterday/agenda/internal/domain"
	clientrepo "github.com/toyesterday/agenda/internal/infra/storage/client"
	profrepo "github.com/toyesterday/agenda/internal/infra/storage/professional"
	"github.com/toyesterday/agenda/internal/integrations/notify"
)

// UseCase представляет usecase для создания публичной записи
type UseCase struct {
	professionalRepo ProfessionalRepository
	appointmentRepo  AppointmentRepository
	blockedSlotRepo  BlockedSlotRepository
	clientRepo       ClientRepository
	notifier         Notifier
	cache            AvailabilityCache
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр UseCase
func NewUseCase(
	professionalRepo ProfessionalRepository,
	appointmentRepo AppointmentRepository,
	blockedSlotRepo BlockedSlotRepository,
	clientRepo ClientRepository,
	notifier Notifier,
	cache AvailabilityCache,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		professionalRepo: professionalRepo,
		appointmentRepo:  appointmentRepo,
		blockedSlotRepo:  blockedSlotRepo,
		clientRepo:       clientRepo,
		notifier:         notifier,
		cache:            cache,
		txManager:        txManager,
		timeProvider:     timeProvider,
		logger:           logger,
	}
}

// Execute создает запись клиента к мастеру.
// Имена услуг склеиваются через запятую, цена и длительность суммируются.
// Проверка занятости слота повторяется внутри serializable-транзакции,
// чтобы два конкурентных запроса не заняли одно и то же время.
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("[CreateAppointment] Execute - invalid request: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Получаем мастера и его салон
	professional, err := uc.professionalRepo.GetByID(ctx, req.ProfessionalID)
	if err != nil {
		if errors.Is(err, profrepo.ErrProfessionalNotFound) {
			return nil, fmt.Errorf("%w: id=%d", ErrProfessionalNotFound, req.ProfessionalID)
		}
		uc.logger.Error("[CreateAppointment] Execute - failed to get professional %d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	business, err := uc.professionalRepo.GetBusiness(ctx, professional.BusinessID)
	if err != nil {
		if errors.Is(err, profrepo.ErrBusinessNotFound) {
			return nil, fmt.Errorf("%w: id=%d", ErrBusinessNotFound, professional.BusinessID)
		}
		uc.logger.Error("[CreateAppointment] Execute - failed to get business %d: %v", professional.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	loc, err := business.Location()
	if err != nil {
		uc.logger.Error("[CreateAppointment] Execute - invalid timezone %q for business %d: %v",
			business.Timezone, business.ID, err)
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, business.Timezone)
	}

	// 3. Агрегируем выбранные услуги
	startTime := req.StartTime.UTC()
	if !startTime.After(now) {
		return nil, fmt.Errorf("%w: start_time=%s", ErrStartTimeInPast, startTime.Format(time.RFC3339))
	}

	serviceName, totalPrice, totalDuration := aggregateServices(req.Services)
	endTime := startTime.Add(time.Duration(totalDuration) * time.Minute)
	requested := domain.Interval{Start: startTime, End: endTime}

	localDate, _ := domain.LocalDayOf(startTime, loc)
	windowStart := localDate.UTC()
	windowEnd := localDate.Add(24 * time.Hour).UTC()

	// 4. Создаем клиента и запись атомарно, с повторной проверкой занятости
	var created *domain.Appointment
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		client, err := uc.resolveClient(txCtx, business.ID, req)
		if err != nil {
			return err
		}

		if err := uc.ensureSlotFree(txCtx, business.ID, professional.ID, requested, windowStart, windowEnd); err != nil {
			return err
		}

		created, err = uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			BusinessID:        business.ID,
			ProfessionalID:    professional.ID,
			ClientID:          client.ID,
			ServiceName:       serviceName,
			Price:             &totalPrice,
			StartTime:         startTime,
			EndTime:           endTime,
			Status:            domain.StatusConfirmed,
			CancellationToken: uuid.NewString(),
		})
		if err != nil {
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrSlotNotAvailable) && !errors.Is(err, ErrInvalidInput) {
			uc.logger.Error("[CreateAppointment] Execute - transaction failed for professional %d: %v",
				professional.ID, err)
		}
		return nil, err
	}

	// 5. Инвалидируем кеш доступности на дату записи
	uc.cache.Invalidate(ctx, professional.ID, localDate.Format(domain.DateFormat))

	// 6. Отправляем уведомление (fire-and-forget)
	uc.notifier.Dispatch(notify.AppointmentEvent{
		Type:           notify.EventAppointmentCreated,
		AppointmentID:  created.ID,
		BusinessID:     created.BusinessID,
		ProfessionalID: created.ProfessionalID,
		ClientID:       created.ClientID,
		ServiceName:    created.ServiceName,
		StartTime:      created.StartTime,
	})

	uc.logger.Info("[CreateAppointment] Execute - created appointment %d for professional %d at %s",
		created.ID, professional.ID, created.StartTime.Format(time.RFC3339))

	return &Response{
		AppointmentID:     created.ID,
		ProfessionalID:    created.ProfessionalID,
		ClientID:          created.ClientID,
		ServiceName:       created.ServiceName,
		Price:             totalPrice,
		StartTime:         created.StartTime,
		EndTime:           created.EndTime,
		Status:            string(created.Status),
		CancellationToken: created.CancellationToken,
	}, nil
}

// resolveClient находит клиента по телефону или создает нового
func (uc *UseCase) resolveClient(ctx context.Context, businessID int64, req Request) (*domain.Client, error) {
	client, err := uc.clientRepo.GetByPhone(ctx, businessID, req.ClientPhone)
	if err == nil {
		return client, nil
	}
	if !errors.Is(err, clientrepo.ErrClientNotFound) {
		return nil, fmt.Errorf("%w: failed to get client by phone: %v", ErrInternal, err)
	}

	client, err = uc.clientRepo.Create(ctx, &domain.Client{
		BusinessID: businessID,
		FullName:   strings.TrimSpace(req.ClientName),
		Phone:      req.ClientPhone,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create client: %v", ErrInternal, err)
	}
	return client, nil
}

// ensureSlotFree проверяет, что запрошенный интервал не пересекается с
// занятыми записями и блокировками мастера
func (uc *UseCase) ensureSlotFree(ctx context.Context, businessID, professionalID int64, requested domain.Interval, windowStart, windowEnd time.Time) error {
	busy, err := uc.appointmentRepo.GetBusyByProfessionalWindow(ctx, professionalID, windowStart, windowEnd)
	if err != nil {
		return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}
	for _, appt := range busy {
		if requested.Overlaps(appt.Interval()) {
			return fmt.Errorf("%w: overlaps appointment %d", ErrSlotNotAvailable, appt.ID)
		}
	}

	blocked, err := uc.blockedSlotRepo.GetOverlappingWindow(ctx, businessID, professionalID, windowStart, windowEnd)
	if err != nil {
		return fmt.Errorf("%w: failed to get blocked slots: %v", ErrInternal, err)
	}
	for _, slot := range blocked {
		if requested.Overlaps(slot.Interval()) {
			return fmt.Errorf("%w: overlaps blocked slot %d", ErrSlotNotAvailable, slot.ID)
		}
	}

	return nil
}

// aggregateServices склеивает имена услуг через запятую и суммирует
// цену и длительность
func aggregateServices(services []ServiceInput) (string, float64, int) {
	names := make([]string, 0, len(services))
	var totalPrice float64
	var totalDuration int
	for _, svc := range services {
		names = append(names, strings.TrimSpace(svc.Name))
		totalPrice += svc.Price
		totalDuration += svc.DurationMinutes
	}
	return strings.Join(names, ", "), totalPrice, totalDuration
}
