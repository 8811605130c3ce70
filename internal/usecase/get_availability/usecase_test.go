package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyesterday/agenda/internal/domain"
	profRepo "github.com/toyesterday/agenda/internal/infra/storage/professional"
	scheduleRepo "github.com/toyesterday/agenda/internal/infra/storage/schedule"
	"github.com/toyesterday/agenda/pkg/ptr"
	"github.com/toyesterday/agenda/pkg/types"
)

type fakeProfRepo struct {
	professional *domain.Professional
	business     *domain.Business
	profErr      error
	businessErr  error
}

func (f *fakeProfRepo) GetByID(ctx context.Context, id int64) (*domain.Professional, error) {
	if f.profErr != nil {
		return nil, f.profErr
	}
	return f.professional, nil
}

func (f *fakeProfRepo) GetBusiness(ctx context.Context, businessID int64) (*domain.Business, error) {
	if f.businessErr != nil {
		return nil, f.businessErr
	}
	return f.business, nil
}

type fakeScheduleRepo struct {
	entry *domain.WeeklySchedule
	err   error
}

func (f *fakeScheduleRepo) GetByProfessionalAndWeekday(ctx context.Context, professionalID int64, dayOfWeek int) (*domain.WeeklySchedule, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.entry, nil
}

type fakeApptRepo struct {
	appointments []*domain.Appointment
	err          error
}

func (f *fakeApptRepo) GetBusyByProfessionalWindow(ctx context.Context, professionalID int64, windowStart, windowEnd time.Time) ([]*domain.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.appointments, nil
}

type fakeBlockedRepo struct {
	slots []*domain.BlockedSlot
	err   error
}

func (f *fakeBlockedRepo) GetOverlappingWindow(ctx context.Context, businessID, professionalID int64, windowStart, windowEnd time.Time) ([]*domain.BlockedSlot, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.slots, nil
}

type fakeCache struct {
	stored  map[string][]time.Time
	hit     []time.Time
	hasHit  bool
	setKeys []string
}

func (f *fakeCache) Get(ctx context.Context, professionalID int64, date string, durationMinutes int) ([]time.Time, bool) {
	if f.hasHit {
		return f.hit, true
	}
	return nil, false
}

func (f *fakeCache) Set(ctx context.Context, professionalID int64, date string, durationMinutes int, times []time.Time) {
	if f.stored == nil {
		f.stored = map[string][]time.Time{}
	}
	f.stored[date] = times
	f.setKeys = append(f.setKeys, date)
}

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func workingDay(start, end string) *domain.WeeklySchedule {
	s := types.TimeOfDay(start)
	e := types.TimeOfDay(end)
	return &domain.WeeklySchedule{
		ProfessionalID: 1,
		IsAvailable:    true,
		StartTime:      &s,
		EndTime:        &e,
	}
}

func newTestUseCase(prof *fakeProfRepo, sched *fakeScheduleRepo, appts *fakeApptRepo, blocked *fakeBlockedRepo, cache *fakeCache, now time.Time) *UseCase {
	uc := NewUseCase(prof, sched, appts, blocked, cache, nopLogger{})
	uc.timeProvider = &fixedTime{now: now}
	return uc
}

func defaultFakes() (*fakeProfRepo, *fakeScheduleRepo, *fakeApptRepo, *fakeBlockedRepo, *fakeCache) {
	return &fakeProfRepo{
			professional: &domain.Professional{ID: 1, BusinessID: 10},
			business:     &domain.Business{ID: 10, Timezone: "America/Sao_Paulo"},
		},
		&fakeScheduleRepo{entry: workingDay("09:00", "18:00")},
		&fakeApptRepo{},
		&fakeBlockedRepo{},
		&fakeCache{}
}

// Понедельник 2026-03-16; "сейчас" задолго до целевого дня
var (
	testDate = time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	testNow  = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
)

func TestExecute_TimesInBusinessTimezone(t *testing.T) {
	prof, sched, appts, blocked, cache := defaultFakes()
	uc := newTestUseCase(prof, sched, appts, blocked, cache, testNow)

	resp, err := uc.Execute(context.Background(), &Request{
		ProfessionalID:  1,
		Date:            testDate,
		DurationMinutes: 60,
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.AvailableTimes)

	// 09:00 в Сан-Паулу (UTC-3) = 12:00 UTC
	assert.Equal(t, time.Date(2026, 3, 16, 12, 0, 0, 0, time.UTC), resp.AvailableTimes[0].UTC())
	// Последний кандидат: услуга 60 минут должна завершиться к 18:00 местного
	last := resp.AvailableTimes[len(resp.AvailableTimes)-1].UTC()
	assert.Equal(t, time.Date(2026, 3, 16, 20, 0, 0, 0, time.UTC), last)
}

func TestExecute_DifferentTimezoneShiftsWindow(t *testing.T) {
	prof, sched, appts, blocked, cache := defaultFakes()
	prof.business = &domain.Business{ID: 10, Timezone: "America/New_York"}
	uc := newTestUseCase(prof, sched, appts, blocked, cache, testNow)

	resp, err := uc.Execute(context.Background(), &Request{
		ProfessionalID:  1,
		Date:            testDate,
		DurationMinutes: 60,
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.AvailableTimes)

	// 16 марта 2026 в Нью-Йорке действует EDT (UTC-4): 09:00 местного = 13:00 UTC
	assert.Equal(t, time.Date(2026, 3, 16, 13, 0, 0, 0, time.UTC), resp.AvailableTimes[0].UTC())
}

func TestExecute_NotWorkingDayReturnsEmpty(t *testing.T) {
	prof, sched, appts, blocked, cache := defaultFakes()
	sched.entry = &domain.WeeklySchedule{ProfessionalID: 1, IsAvailable: false}
	uc := newTestUseCase(prof, sched, appts, blocked, cache, testNow)

	resp, err := uc.Execute(context.Background(), &Request{
		ProfessionalID:  1,
		Date:            testDate,
		DurationMinutes: 30,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.AvailableTimes, "выходной - пустой список, не ошибка")
}

func TestExecute_MissingScheduleReturnsEmpty(t *testing.T) {
	prof, sched, appts, blocked, cache := defaultFakes()
	sched.err = scheduleRepo.ErrScheduleNotFound
	uc := newTestUseCase(prof, sched, appts, blocked, cache, testNow)

	resp, err := uc.Execute(context.Background(), &Request{
		ProfessionalID:  1,
		Date:            testDate,
		DurationMinutes: 30,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.AvailableTimes)
}

func TestExecute_ProfessionalNotFound(t *testing.T) {
	prof, sched, appts, blocked, cache := defaultFakes()
	prof.profErr = profRepo.ErrProfessionalNotFound
	uc := newTestUseCase(prof, sched, appts, blocked, cache, testNow)

	_, err := uc.Execute(context.Background(), &Request{
		ProfessionalID:  99,
		Date:            testDate,
		DurationMinutes: 30,
	})
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	prof, sched, appts, blocked, cache := defaultFakes()
	uc := newTestUseCase(prof, sched, appts, blocked, cache, testNow)

	tests := []struct {
		name string
		req  *Request
	}{
		{"нулевой мастер", &Request{ProfessionalID: 0, Date: testDate, DurationMinutes: 30}},
		{"нулевая дата", &Request{ProfessionalID: 1, DurationMinutes: 30}},
		{"нулевая длительность", &Request{ProfessionalID: 1, Date: testDate, DurationMinutes: 0}},
		{"слишком длинная услуга", &Request{ProfessionalID: 1, Date: testDate, DurationMinutes: 481}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_FailClosedOnReadErrors(t *testing.T) {
	t.Run("ошибка чтения записей", func(t *testing.T) {
		prof, sched, appts, blocked, cache := defaultFakes()
		appts.err = assert.AnError
		uc := newTestUseCase(prof, sched, appts, blocked, cache, testNow)

		_, err := uc.Execute(context.Background(), &Request{ProfessionalID: 1, Date: testDate, DurationMinutes: 30})
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("ошибка чтения блокировок", func(t *testing.T) {
		prof, sched, appts, blocked, cache := defaultFakes()
		blocked.err = assert.AnError
		uc := newTestUseCase(prof, sched, appts, blocked, cache, testNow)

		_, err := uc.Execute(context.Background(), &Request{ProfessionalID: 1, Date: testDate, DurationMinutes: 30})
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestExecute_BusyAppointmentsAndBlocksExcluded(t *testing.T) {
	prof, sched, appts, blocked, cache := defaultFakes()

	// Запись 12:00-13:00 UTC (09:00-10:00 местного) и общая блокировка
	// 17:00-18:00 UTC (14:00-15:00 местного)
	appts.appointments = []*domain.Appointment{
		{
			ProfessionalID: 1,
			StartTime:      time.Date(2026, 3, 16, 12, 0, 0, 0, time.UTC),
			EndTime:        time.Date(2026, 3, 16, 13, 0, 0, 0, time.UTC),
			Status:         domain.StatusConfirmed,
		},
	}
	blocked.slots = []*domain.BlockedSlot{
		{
			BusinessID: 10,
			Reason:     ptr.Ptr("almoço"),
			StartTime:  time.Date(2026, 3, 16, 17, 0, 0, 0, time.UTC),
			EndTime:    time.Date(2026, 3, 16, 18, 0, 0, 0, time.UTC),
		},
	}
	uc := newTestUseCase(prof, sched, appts, blocked, cache, testNow)

	resp, err := uc.Execute(context.Background(), &Request{
		ProfessionalID:  1,
		Date:            testDate,
		DurationMinutes: 30,
	})
	require.NoError(t, err)

	for _, s := range resp.AvailableTimes {
		candidate := domain.NewInterval(s, 30*time.Minute)
		assert.False(t, candidate.Overlaps(domain.Interval{
			Start: appts.appointments[0].StartTime,
			End:   appts.appointments[0].EndTime,
		}), "слот %s пересекает запись", s)
		assert.False(t, candidate.Overlaps(domain.Interval{
			Start: blocked.slots[0].StartTime,
			End:   blocked.slots[0].EndTime,
		}), "слот %s пересекает блокировку", s)
	}
	// 12:00 UTC занят записью, 13:00 UTC свободен "впритык"
	assert.NotContains(t, resp.AvailableTimes, time.Date(2026, 3, 16, 12, 0, 0, 0, time.UTC))
	assert.Contains(t, resp.AvailableTimes, time.Date(2026, 3, 16, 13, 0, 0, 0, time.UTC))
}

func TestExecute_CacheHitSkipsComputation(t *testing.T) {
	prof, sched, appts, blocked, cache := defaultFakes()
	cached := []time.Time{time.Date(2026, 3, 16, 12, 0, 0, 0, time.UTC)}
	cache.hasHit = true
	cache.hit = cached
	appts.err = assert.AnError // при попадании в кеш до репозитория не доходим
	uc := newTestUseCase(prof, sched, appts, blocked, cache, testNow)

	resp, err := uc.Execute(context.Background(), &Request{
		ProfessionalID:  1,
		Date:            testDate,
		DurationMinutes: 30,
	})
	require.NoError(t, err)
	assert.Equal(t, cached, resp.AvailableTimes)
}

func TestExecute_ResultStoredInCache(t *testing.T) {
	prof, sched, appts, blocked, cache := defaultFakes()
	uc := newTestUseCase(prof, sched, appts, blocked, cache, testNow)

	resp, err := uc.Execute(context.Background(), &Request{
		ProfessionalID:  1,
		Date:            testDate,
		DurationMinutes: 30,
	})
	require.NoError(t, err)

	require.Contains(t, cache.setKeys, "2026-03-16")
	assert.Equal(t, resp.AvailableTimes, cache.stored["2026-03-16"])
}
