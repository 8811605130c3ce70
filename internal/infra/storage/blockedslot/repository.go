package blockedslot

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/toyesterday/agenda/internal/domain"
	"github.com/toyesterday/agenda/pkg/dbmetrics"
	"github.com/toyesterday/agenda/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий заблокированных интервалов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория блокировок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает блокировку времени
func (r *Repository) Create(ctx context.Context, slot *domain.BlockedSlot) (*domain.BlockedSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blocked_slots").
		Columns("business_id", "professional_id", "start_time", "end_time", "reason").
		Values(slot.BusinessID, slot.ProfessionalID, slot.StartTime, slot.EndTime, slot.Reason).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&slot.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	slot.CreatedAt = createdAt.Time
	return slot, nil
}

// GetOverlappingWindow получает блокировки, пересекающие окно дня:
// персональные блокировки мастера и общие для всего бизнеса
// (professional_id IS NULL). Пересечение по правилу
// blocked.start < windowEnd AND blocked.end > windowStart.
func (r *Repository) GetOverlappingWindow(ctx context.Context, businessID, professionalID int64, windowStart, windowEnd time.Time) ([]*domain.BlockedSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"business_id",
		"professional_id",
		"start_time",
		"end_time",
		"reason",
		"created_at",
	).
		From("blocked_slots").
		Where(squirrel.Eq{"business_id": businessID}).
		Where(squirrel.Or{
			squirrel.Eq{"professional_id": professionalID},
			squirrel.Eq{"professional_id": nil},
		}).
		Where(squirrel.Lt{"start_time": windowEnd}).
		Where(squirrel.Gt{"end_time": windowStart}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetOverlappingWindow - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverlappingWindow - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.BlockedSlot, 0)
	for rows.Next() {
		var slot domain.BlockedSlot
		var createdAt sql.NullTime

		if err := rows.Scan(
			&slot.ID,
			&slot.BusinessID,
			&slot.ProfessionalID,
			&slot.StartTime,
			&slot.EndTime,
			&slot.Reason,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("%w: GetOverlappingWindow - scan row: %v", ErrScanRow, err)
		}

		slot.CreatedAt = createdAt.Time
		slots = append(slots, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetOverlappingWindow - rows iteration: %v", ErrScanRow, err)
	}

	return slots, nil
}
