package get_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/toyesterday/agenda/internal/domain"
	profRepo "github.com/toyesterday/agenda/internal/infra/storage/professional"
)

// UseCase use case расчёта доступных слотов записи.
// Конвейер: расписание мастера -> занятые интервалы -> генерация слотов.
// Расчёт без побочных эффектов и без разделяемого состояния: запросы по
// разным (мастер, дата) могут выполняться с любой степенью параллелизма.
type UseCase struct {
	profRepo     ProfessionalRepository
	scheduleRepo ScheduleRepository
	apptRepo     AppointmentRepository
	blockedRepo  BlockedSlotRepository
	cache        AvailabilityCache
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	profRepo ProfessionalRepository,
	scheduleRepo ScheduleRepository,
	apptRepo AppointmentRepository,
	blockedRepo BlockedSlotRepository,
	cache AvailabilityCache,
	logger Logger,
) *UseCase {
	return &UseCase{
		profRepo:     profRepo,
		scheduleRepo: scheduleRepo,
		apptRepo:     apptRepo,
		blockedRepo:  blockedRepo,
		cache:        cache,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет расчёт доступности.
// Любая ошибка чтения данных - отказ целиком (fail closed): лучше не показать
// ни одного слота, чем показать слот, который на самом деле занят.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: professional=%d, date=%s, duration=%d",
		req.ProfessionalID, req.Date.Format(domain.DateFormat), req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем мастера и профиль его бизнеса (часовой пояс)
	professional, err := uc.profRepo.GetByID(ctx, req.ProfessionalID)
	if err != nil {
		if errors.Is(err, profRepo.ErrProfessionalNotFound) {
			uc.logger.Warn("GetAvailability: professional id=%d not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("GetAvailability: failed to get professional id=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	business, err := uc.profRepo.GetBusiness(ctx, professional.BusinessID)
	if err != nil {
		if errors.Is(err, profRepo.ErrBusinessNotFound) {
			uc.logger.Warn("GetAvailability: business id=%d not found", professional.BusinessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("GetAvailability: failed to get business id=%d: %v", professional.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	loc, err := business.Location()
	if err != nil {
		uc.logger.Error("GetAvailability: invalid timezone %q for business id=%d: %v",
			business.Timezone, business.ID, err)
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, business.Timezone)
	}

	// 3. Дата запроса - календарная дата в поясе бизнеса. Компоненты даты
	// берутся как есть, без сдвига через UTC: "2026-03-16" означает
	// 16 марта по местному времени салона, в каком бы поясе ни был вызывающий
	localDay := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, loc)
	weekday := localDay.Weekday()
	dateKey := localDay.Format(domain.DateFormat)

	// 4. Пробуем кеш
	if times, ok := uc.cache.Get(ctx, req.ProfessionalID, dateKey, req.DurationMinutes); ok {
		uc.logger.Info("GetAvailability: cache hit for professional=%d date=%s", req.ProfessionalID, dateKey)
		return &Response{
			ProfessionalID: req.ProfessionalID,
			Date:           localDay,
			AvailableTimes: times,
		}, nil
	}

	// 5. Рабочее окно мастера на эту дату
	workday, working, err := uc.resolveWorkingWindow(ctx, req.ProfessionalID, localDay, weekday, loc)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to resolve working window: %v", err)
		return nil, err
	}
	if !working {
		uc.logger.Info("GetAvailability: professional=%d is not working on %s (weekday=%d)",
			req.ProfessionalID, dateKey, weekday)
		return &Response{
			ProfessionalID: req.ProfessionalID,
			Date:           localDay,
			AvailableTimes: []time.Time{},
		}, nil
	}

	// 6. Занятые интервалы: записи мастера за окно дня и применимые
	// блокировки (персональные и общие для бизнеса)
	appointments, err := uc.apptRepo.GetBusyByProfessionalWindow(ctx, req.ProfessionalID, workday.Start, workday.End)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	blocked, err := uc.blockedRepo.GetOverlappingWindow(ctx, business.ID, req.ProfessionalID, workday.Start, workday.End)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get blocked slots: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocked slots: %v", ErrInternal, err)
	}

	busy := collectBusyIntervals(appointments, blocked)

	// 7. Генерируем слоты
	now := uc.timeProvider.Now()
	availableTimes := generateSlots(workday, busy, req.DurationMinutes, now)

	uc.cache.Set(ctx, req.ProfessionalID, dateKey, req.DurationMinutes, availableTimes)

	uc.logger.Info("GetAvailability: generated %d slots for professional=%d date=%s (busy=%d)",
		len(availableTimes), req.ProfessionalID, dateKey, len(busy))

	return &Response{
		ProfessionalID: req.ProfessionalID,
		Date:           localDay,
		AvailableTimes: availableTimes,
	}, nil
}
