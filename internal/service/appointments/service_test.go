package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyesterday/agenda/internal/domain"
	apptRepo "github.com/toyesterday/agenda/internal/infra/storage/appointment"
	"github.com/toyesterday/agenda/internal/integrations/notify"
	"github.com/toyesterday/agenda/internal/service/appointments/models"
	"github.com/toyesterday/agenda/internal/service/loyalty"
)

type fakeApptRepo struct {
	appointment *domain.Appointment
	getErr      error
	updateErr   error
	cancelErr   error

	updatedTo domain.AppointmentStatus
}

func (f *fakeApptRepo) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	cp := *f.appointment
	return &cp, nil
}

func (f *fakeApptRepo) GetByClientID(ctx context.Context, clientID int64) ([]*domain.Appointment, error) {
	return []*domain.Appointment{f.appointment}, nil
}

func (f *fakeApptRepo) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) (*domain.Appointment, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.updatedTo = status
	f.appointment.Status = status
	cp := *f.appointment
	return &cp, nil
}

func (f *fakeApptRepo) CancelByToken(ctx context.Context, id int64, token string) (*domain.Appointment, error) {
	if f.cancelErr != nil {
		return nil, f.cancelErr
	}
	if token != f.appointment.CancellationToken || f.appointment.Status != domain.StatusConfirmed {
		return nil, apptRepo.ErrAppointmentNotFound
	}
	f.appointment.Status = domain.StatusCancelled
	cp := *f.appointment
	return &cp, nil
}

type fakeProfRepo struct {
	business *domain.Business
}

func (f *fakeProfRepo) GetBusiness(ctx context.Context, businessID int64) (*domain.Business, error) {
	return f.business, nil
}

type fakeLoyalty struct {
	accrueCalls int
	deductCalls int
	accrueErr   error
	reward      bool
}

func (f *fakeLoyalty) Accrue(ctx context.Context, clientID int64, serviceName string) (*loyalty.Result, error) {
	f.accrueCalls++
	if f.accrueErr != nil {
		return nil, f.accrueErr
	}
	return &loyalty.Result{NewCount: 3, RewardGranted: f.reward}, nil
}

func (f *fakeLoyalty) Deduct(ctx context.Context, clientID int64, serviceName string) error {
	f.deductCalls++
	return nil
}

type fakeNotifier struct {
	events []notify.AppointmentEvent
}

func (f *fakeNotifier) Dispatch(event notify.AppointmentEvent) {
	f.events = append(f.events, event)
}

type fakeCache struct {
	invalidated []string
}

func (f *fakeCache) Invalidate(ctx context.Context, professionalID int64, date string) {
	f.invalidated = append(f.invalidated, date)
}

// fakeTxManager выполняет функцию без настоящей транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testAppointment(status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:                7,
		BusinessID:        10,
		ProfessionalID:    1,
		ClientID:          3,
		ServiceName:       "Corte Masculino",
		StartTime:         time.Date(2026, 3, 16, 12, 0, 0, 0, time.UTC),
		EndTime:           time.Date(2026, 3, 16, 13, 0, 0, 0, time.UTC),
		Status:            status,
		CancellationToken: "tok-123",
	}
}

func newTestService(repo *fakeApptRepo, ledger *fakeLoyalty, notifier *fakeNotifier, cache *fakeCache) *Service {
	prof := &fakeProfRepo{business: &domain.Business{ID: 10, Timezone: "America/Sao_Paulo"}}
	return NewService(repo, prof, ledger, notifier, cache, fakeTxManager{}, nopLogger{})
}

func TestUpdateStatus_CompletedAccruesLoyaltyOnce(t *testing.T) {
	repo := &fakeApptRepo{appointment: testAppointment(domain.StatusConfirmed)}
	ledger := &fakeLoyalty{reward: false}
	notifier := &fakeNotifier{}
	cache := &fakeCache{}
	svc := newTestService(repo, ledger, notifier, cache)

	resp, err := svc.UpdateStatus(context.Background(), 7, &models.UpdateStatusRequest{Status: "completed"})
	require.NoError(t, err)

	assert.Equal(t, 1, ledger.accrueCalls)
	assert.Equal(t, 0, ledger.deductCalls)
	require.NotNil(t, resp.RewardGranted)
	assert.False(t, *resp.RewardGranted)
	assert.Equal(t, domain.StatusCompleted, repo.updatedTo)

	// Уведомление о завершении отправлено
	require.Len(t, notifier.events, 1)
	assert.Equal(t, notify.EventAppointmentCompleted, notifier.events[0].Type)
}

func TestUpdateStatus_SameStatusIsNoop(t *testing.T) {
	repo := &fakeApptRepo{appointment: testAppointment(domain.StatusCompleted)}
	ledger := &fakeLoyalty{}
	notifier := &fakeNotifier{}
	cache := &fakeCache{}
	svc := newTestService(repo, ledger, notifier, cache)

	resp, err := svc.UpdateStatus(context.Background(), 7, &models.UpdateStatusRequest{Status: "completed"})
	require.NoError(t, err)

	// Повторное сохранение completed не трогает лояльность, кеш и уведомления
	assert.Equal(t, 0, ledger.accrueCalls)
	assert.Equal(t, 0, ledger.deductCalls)
	assert.Empty(t, notifier.events)
	assert.Empty(t, cache.invalidated)
	assert.Nil(t, resp.RewardGranted)
}

func TestUpdateStatus_RevertFromCompletedDeducts(t *testing.T) {
	repo := &fakeApptRepo{appointment: testAppointment(domain.StatusCompleted)}
	ledger := &fakeLoyalty{}
	notifier := &fakeNotifier{}
	cache := &fakeCache{}
	svc := newTestService(repo, ledger, notifier, cache)

	resp, err := svc.UpdateStatus(context.Background(), 7, &models.UpdateStatusRequest{Status: "confirmed"})
	require.NoError(t, err)

	assert.Equal(t, 0, ledger.accrueCalls)
	assert.Equal(t, 1, ledger.deductCalls)
	assert.Nil(t, resp.RewardGranted)
	// Переход не в completed не рассылает событие завершения
	assert.Empty(t, notifier.events)
}

func TestUpdateStatus_ConfirmedToCancelledTouchesNoLoyalty(t *testing.T) {
	repo := &fakeApptRepo{appointment: testAppointment(domain.StatusConfirmed)}
	ledger := &fakeLoyalty{}
	notifier := &fakeNotifier{}
	cache := &fakeCache{}
	svc := newTestService(repo, ledger, notifier, cache)

	_, err := svc.UpdateStatus(context.Background(), 7, &models.UpdateStatusRequest{Status: "cancelled"})
	require.NoError(t, err)

	assert.Equal(t, 0, ledger.accrueCalls)
	assert.Equal(t, 0, ledger.deductCalls)
	// Отмена освобождает слот - кеш инвалидирован
	assert.NotEmpty(t, cache.invalidated)
}

func TestUpdateStatus_LoyaltyErrorDoesNotFailSave(t *testing.T) {
	repo := &fakeApptRepo{appointment: testAppointment(domain.StatusConfirmed)}
	ledger := &fakeLoyalty{accrueErr: assert.AnError}
	notifier := &fakeNotifier{}
	cache := &fakeCache{}
	svc := newTestService(repo, ledger, notifier, cache)

	resp, err := svc.UpdateStatus(context.Background(), 7, &models.UpdateStatusRequest{Status: "completed"})
	require.NoError(t, err, "ошибка лояльности глотается, сохранение статуса не падает")

	assert.Equal(t, domain.StatusCompleted, repo.updatedTo)
	assert.Nil(t, resp.RewardGranted)
}

func TestUpdateStatus_RewardGrantedPropagatesToEvent(t *testing.T) {
	repo := &fakeApptRepo{appointment: testAppointment(domain.StatusConfirmed)}
	ledger := &fakeLoyalty{reward: true}
	notifier := &fakeNotifier{}
	cache := &fakeCache{}
	svc := newTestService(repo, ledger, notifier, cache)

	resp, err := svc.UpdateStatus(context.Background(), 7, &models.UpdateStatusRequest{Status: "completed"})
	require.NoError(t, err)

	require.NotNil(t, resp.RewardGranted)
	assert.True(t, *resp.RewardGranted)
	require.Len(t, notifier.events, 1)
	assert.True(t, notifier.events[0].RewardGranted)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	repo := &fakeApptRepo{appointment: testAppointment(domain.StatusConfirmed)}
	svc := newTestService(repo, &fakeLoyalty{}, &fakeNotifier{}, &fakeCache{})

	_, err := svc.UpdateStatus(context.Background(), 7, &models.UpdateStatusRequest{Status: "archived"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	repo := &fakeApptRepo{appointment: testAppointment(domain.StatusConfirmed), getErr: apptRepo.ErrAppointmentNotFound}
	svc := newTestService(repo, &fakeLoyalty{}, &fakeNotifier{}, &fakeCache{})

	_, err := svc.UpdateStatus(context.Background(), 7, &models.UpdateStatusRequest{Status: "completed"})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestUpdateStatus_InvalidatesCacheForLocalDate(t *testing.T) {
	repo := &fakeApptRepo{appointment: testAppointment(domain.StatusConfirmed)}
	cache := &fakeCache{}
	svc := newTestService(repo, &fakeLoyalty{}, &fakeNotifier{}, cache)

	_, err := svc.UpdateStatus(context.Background(), 7, &models.UpdateStatusRequest{Status: "cancelled"})
	require.NoError(t, err)

	// 12:00 UTC = 09:00 в Сан-Паулу, местная дата 16 марта
	require.Len(t, cache.invalidated, 1)
	assert.Equal(t, "2026-03-16", cache.invalidated[0])
}

func TestCancelByToken_Success(t *testing.T) {
	repo := &fakeApptRepo{appointment: testAppointment(domain.StatusConfirmed)}
	notifier := &fakeNotifier{}
	cache := &fakeCache{}
	svc := newTestService(repo, &fakeLoyalty{}, notifier, cache)

	resp, err := svc.CancelByToken(context.Background(), 7, "tok-123")
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	assert.NotEmpty(t, cache.invalidated)
	require.Len(t, notifier.events, 1)
	assert.Equal(t, notify.EventAppointmentCancelled, notifier.events[0].Type)
}

func TestCancelByToken_WrongToken(t *testing.T) {
	repo := &fakeApptRepo{appointment: testAppointment(domain.StatusConfirmed)}
	svc := newTestService(repo, &fakeLoyalty{}, &fakeNotifier{}, &fakeCache{})

	_, err := svc.CancelByToken(context.Background(), 7, "wrong")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestCancelByToken_AlreadyCancelled(t *testing.T) {
	repo := &fakeApptRepo{appointment: testAppointment(domain.StatusCancelled)}
	svc := newTestService(repo, &fakeLoyalty{}, &fakeNotifier{}, &fakeCache{})

	_, err := svc.CancelByToken(context.Background(), 7, "tok-123")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestCancelByToken_EmptyToken(t *testing.T) {
	repo := &fakeApptRepo{appointment: testAppointment(domain.StatusConfirmed)}
	svc := newTestService(repo, &fakeLoyalty{}, &fakeNotifier{}, &fakeCache{})

	_, err := svc.CancelByToken(context.Background(), 7, "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
