package client

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

// Repository репозиторий клиентов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает клиента по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByPhone получает клиента бизнеса по номеру телефона.
// Телефон не уникален глобально - только внутри бизнеса.
func (r *Repository) GetByPhone(ctx context.Context, businessID int64, phone string) (*domain.Client, error) {
	return r.getOne(ctx, squirrel.Eq{"business_id": businessID, "phone": phone})
}

// Create создает клиента
func (r *Repository) Create(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("clients").
		Columns("business_id", "full_name", "phone", "email", "telegram_chat_id").
		Values(c.BusinessID, c.FullName, c.Phone, c.Email, c.TelegramChatID).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&c.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	c.CreatedAt = createdAt.Time
	return c, nil
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq) (*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"business_id",
		"full_name",
		"phone",
		"email",
		"telegram_chat_id",
		"created_at",
	).
		From("clients").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	var c domain.Client
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&c.ID,
		&c.BusinessID,
		&c.FullName,
		&c.Phone,
		&c.Email,
		&c.TelegramChatID,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - scan client: %v", ErrScanRow, err)
	}

	c.CreatedAt = createdAt.Time
	return &c, nil
}
