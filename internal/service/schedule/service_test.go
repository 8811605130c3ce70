package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyesterday/agenda/internal/domain"
	profRepo "github.com/toyesterday/agenda/internal/infra/storage/professional"
	"github.com/toyesterday/agenda/pkg/types"
)

type fakeScheduleRepo struct {
	replaced []domain.WeeklySchedule
	err      error
}

func (f *fakeScheduleRepo) ReplaceWeek(ctx context.Context, professionalID int64, entries []domain.WeeklySchedule) error {
	if f.err != nil {
		return f.err
	}
	f.replaced = entries
	return nil
}

type fakeProfRepo struct {
	err error
}

func (f *fakeProfRepo) GetByID(ctx context.Context, id int64) (*domain.Professional, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Professional{ID: id, BusinessID: 10}, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func tod(s string) *types.TimeOfDay {
	t := types.TimeOfDay(s)
	return &t
}

func workingEntry(day int, start, end string) domain.WeeklySchedule {
	return domain.WeeklySchedule{
		ProfessionalID: 1,
		DayOfWeek:      day,
		IsAvailable:    true,
		StartTime:      tod(start),
		EndTime:        tod(end),
	}
}

func TestReplaceWeek_Success(t *testing.T) {
	repo := &fakeScheduleRepo{}
	svc := NewService(repo, &fakeProfRepo{}, fakeTxManager{}, nopLogger{})

	entries := []domain.WeeklySchedule{
		workingEntry(1, "09:00", "18:00"),
		workingEntry(2, "09:00", "18:00"),
		{ProfessionalID: 1, DayOfWeek: 0, IsAvailable: false},
	}

	require.NoError(t, svc.ReplaceWeek(context.Background(), 1, entries))
	assert.Equal(t, entries, repo.replaced)
}

func TestReplaceWeek_DayOffWithoutBoundsIsValid(t *testing.T) {
	repo := &fakeScheduleRepo{}
	svc := NewService(repo, &fakeProfRepo{}, fakeTxManager{}, nopLogger{})

	entries := []domain.WeeklySchedule{
		{ProfessionalID: 1, DayOfWeek: 0, IsAvailable: false},
	}

	assert.NoError(t, svc.ReplaceWeek(context.Background(), 1, entries))
}

func TestReplaceWeek_Validation(t *testing.T) {
	svc := NewService(&fakeScheduleRepo{}, &fakeProfRepo{}, fakeTxManager{}, nopLogger{})

	tests := []struct {
		name    string
		entries []domain.WeeklySchedule
	}{
		{
			name:    "день недели вне диапазона",
			entries: []domain.WeeklySchedule{workingEntry(7, "09:00", "18:00")},
		},
		{
			name:    "отрицательный день недели",
			entries: []domain.WeeklySchedule{workingEntry(-1, "09:00", "18:00")},
		},
		{
			name: "дубликат дня",
			entries: []domain.WeeklySchedule{
				workingEntry(1, "09:00", "18:00"),
				workingEntry(1, "10:00", "19:00"),
			},
		},
		{
			name: "рабочий день без границ",
			entries: []domain.WeeklySchedule{
				{ProfessionalID: 1, DayOfWeek: 1, IsAvailable: true},
			},
		},
		{
			name:    "начало равно концу",
			entries: []domain.WeeklySchedule{workingEntry(1, "09:00", "09:00")},
		},
		{
			name:    "начало позже конца (через полночь)",
			entries: []domain.WeeklySchedule{workingEntry(1, "22:00", "02:00")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.ReplaceWeek(context.Background(), 1, tt.entries)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestReplaceWeek_ProfessionalNotFound(t *testing.T) {
	prof := &fakeProfRepo{err: profRepo.ErrProfessionalNotFound}
	svc := NewService(&fakeScheduleRepo{}, prof, fakeTxManager{}, nopLogger{})

	err := svc.ReplaceWeek(context.Background(), 99, []domain.WeeklySchedule{
		workingEntry(1, "09:00", "18:00"),
	})
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestReplaceWeek_RepositoryErrorWrapped(t *testing.T) {
	repo := &fakeScheduleRepo{err: assert.AnError}
	svc := NewService(repo, &fakeProfRepo{}, fakeTxManager{}, nopLogger{})

	err := svc.ReplaceWeek(context.Background(), 1, []domain.WeeklySchedule{
		workingEntry(1, "09:00", "18:00"),
	})
	assert.ErrorIs(t, err, ErrInternal)
}
