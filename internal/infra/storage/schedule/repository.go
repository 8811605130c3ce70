package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/toyesterday/agenda/internal/domain"
	"github.com/toyesterday/agenda/pkg/dbmetrics"
	"github.com/toyesterday/agenda/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий недельного расписания мастеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByProfessionalAndWeekday получает запись расписания мастера
// на день недели (0=воскресенье .. 6=суббота)
func (r *Repository) GetByProfessionalAndWeekday(ctx context.Context, professionalID int64, dayOfWeek int) (*domain.WeeklySchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"professional_id",
		"day_of_week",
		"is_available",
		"start_time",
		"end_time",
	).
		From("professional_schedules").
		Where(squirrel.Eq{
			"professional_id": professionalID,
			"day_of_week":     dayOfWeek,
		}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByProfessionalAndWeekday - build select query: %v", ErrBuildQuery, err)
	}

	var entry domain.WeeklySchedule
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&entry.ID,
		&entry.ProfessionalID,
		&entry.DayOfWeek,
		&entry.IsAvailable,
		&entry.StartTime,
		&entry.EndTime,
	)

	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProfessionalAndWeekday - scan schedule: %v", ErrScanRow, err)
	}

	return &entry, nil
}

// ReplaceWeek заменяет всё недельное расписание мастера.
// Выполняется внутри транзакции (delete + insert), транзакция приходит
// через контекст от transaction manager.
func (r *Repository) ReplaceWeek(ctx context.Context, professionalID int64, entries []domain.WeeklySchedule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("professional_schedules").
		Where(squirrel.Eq{"professional_id": professionalID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceWeek - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceWeek - execute delete: %v", ErrExecQuery, err)
	}

	if len(entries) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("professional_schedules").
		Columns("professional_id", "day_of_week", "is_available", "start_time", "end_time")

	for _, entry := range entries {
		insertBuilder = insertBuilder.Values(
			professionalID,
			entry.DayOfWeek,
			entry.IsAvailable,
			entry.StartTime,
			entry.EndTime,
		)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceWeek - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceWeek - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
