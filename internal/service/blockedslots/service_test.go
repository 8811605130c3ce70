package blockedslots

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyesterday/agenda/internal/domain"
	profRepo "github.com/toyesterday/agenda/internal/infra/storage/professional"
	"github.com/toyesterday/agenda/pkg/ptr"
)

type fakeBlockedRepo struct {
	created *domain.BlockedSlot
	err     error
}

func (f *fakeBlockedRepo) Create(ctx context.Context, slot *domain.BlockedSlot) (*domain.BlockedSlot, error) {
	if f.err != nil {
		return nil, f.err
	}
	cp := *slot
	cp.ID = 12
	f.created = &cp
	return &cp, nil
}

type fakeProfRepo struct {
	businessID int64
	err        error
}

func (f *fakeProfRepo) GetByID(ctx context.Context, id int64) (*domain.Professional, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Professional{ID: id, BusinessID: f.businessID}, nil
}

type fakeCache struct {
	invalidated []string
}

func (f *fakeCache) Invalidate(ctx context.Context, professionalID int64, date string) {
	f.invalidated = append(f.invalidated, date)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func validSlot() *domain.BlockedSlot {
	return &domain.BlockedSlot{
		BusinessID: 10,
		StartTime:  time.Date(2026, 3, 16, 12, 0, 0, 0, time.UTC),
		EndTime:    time.Date(2026, 3, 16, 14, 0, 0, 0, time.UTC),
		Reason:     ptr.Ptr("almoço"),
	}
}

func TestCreate_BusinessWideSlot(t *testing.T) {
	repo := &fakeBlockedRepo{}
	cache := &fakeCache{}
	svc := NewService(repo, &fakeProfRepo{businessID: 10}, cache, nopLogger{})

	created, err := svc.Create(context.Background(), validSlot())
	require.NoError(t, err)

	assert.Equal(t, int64(12), created.ID)
	assert.Nil(t, created.ProfessionalID)
	// Общая блокировка не инвалидируется точечно, её покрывает TTL кеша
	assert.Empty(t, cache.invalidated)
}

func TestCreate_PersonalSlotInvalidatesCache(t *testing.T) {
	repo := &fakeBlockedRepo{}
	cache := &fakeCache{}
	svc := NewService(repo, &fakeProfRepo{businessID: 10}, cache, nopLogger{})

	slot := validSlot()
	slot.ProfessionalID = ptr.Ptr(int64(1))

	_, err := svc.Create(context.Background(), slot)
	require.NoError(t, err)

	require.Len(t, cache.invalidated, 1)
	assert.Equal(t, "2026-03-16", cache.invalidated[0])
}

func TestCreate_ProfessionalFromAnotherBusiness(t *testing.T) {
	svc := NewService(&fakeBlockedRepo{}, &fakeProfRepo{businessID: 99}, &fakeCache{}, nopLogger{})

	slot := validSlot()
	slot.ProfessionalID = ptr.Ptr(int64(1))

	_, err := svc.Create(context.Background(), slot)
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestCreate_UnknownProfessional(t *testing.T) {
	svc := NewService(&fakeBlockedRepo{}, &fakeProfRepo{err: profRepo.ErrProfessionalNotFound}, &fakeCache{}, nopLogger{})

	slot := validSlot()
	slot.ProfessionalID = ptr.Ptr(int64(404))

	_, err := svc.Create(context.Background(), slot)
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(&fakeBlockedRepo{}, &fakeProfRepo{businessID: 10}, &fakeCache{}, nopLogger{})

	tests := []struct {
		name   string
		mutate func(*domain.BlockedSlot)
	}{
		{"нулевой бизнес", func(s *domain.BlockedSlot) { s.BusinessID = 0 }},
		{"нет времени начала", func(s *domain.BlockedSlot) { s.StartTime = time.Time{} }},
		{"начало после конца", func(s *domain.BlockedSlot) { s.StartTime, s.EndTime = s.EndTime, s.StartTime }},
		{"начало равно концу", func(s *domain.BlockedSlot) { s.EndTime = s.StartTime }},
		{"слишком длинная причина", func(s *domain.BlockedSlot) {
			s.Reason = ptr.Ptr(strings.Repeat("x", domain.MaxReasonLength+1))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot := validSlot()
			tt.mutate(slot)

			_, err := svc.Create(context.Background(), slot)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
