package loyalty

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/toyesterday/agenda/internal/domain"
	"github.com/toyesterday/agenda/pkg/dbmetrics"
	"github.com/toyesterday/agenda/pkg/psqlbuilder"
)

// Код ошибки PostgreSQL: нарушение foreign key
const pgForeignKeyViolation = "23503"

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository хранилище счётчиков лояльности.
// Счётчик хранится строкой (client_id, service_key) -> points, points в [0, 10).
// Инкремент и декремент выполняются одним атомарным SQL-запросом:
// read-modify-write на стороне приложения создавал бы гонку, при которой два
// одновременных завершения записи могли бы выдать награду дважды.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория лояльности
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Accrue атомарно увеличивает счётчик по ключу и возвращает новое значение.
// При достижении порога счётчик обнуляется тем же запросом:
// points = (points + 1) % threshold, то есть возврат 0 означает выдачу награды.
// Если клиента не существует - ErrClientNotFound.
func (r *Repository) Accrue(ctx context.Context, clientID int64, key domain.ServiceKey) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("loyalty_points").
		Columns("client_id", "service_key", "points").
		Values(clientID, key, 1).
		Suffix(`ON CONFLICT (client_id, service_key)
			DO UPDATE SET points = (loyalty_points.points + 1) % ?, updated_at = NOW()
			RETURNING points`, domain.LoyaltyRewardThreshold).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: Accrue - build upsert query: %v", ErrBuildQuery, err)
	}

	var points int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&points)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgForeignKeyViolation {
			return 0, ErrClientNotFound
		}
		return 0, fmt.Errorf("%w: Accrue - execute upsert: %v", ErrExecQuery, err)
	}

	return points, nil
}

// Deduct атомарно уменьшает счётчик на 1, не опускаясь ниже нуля.
// Отсутствующая строка или нулевой счётчик - no-op.
func (r *Repository) Deduct(ctx context.Context, clientID int64, key domain.ServiceKey) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("loyalty_points").
		Set("points", squirrel.Expr("points - 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"client_id": clientID, "service_key": key}).
		Where(squirrel.Gt{"points": 0}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Deduct - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Deduct - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByClient возвращает все счётчики клиента (для портала клиента).
// Отсутствующий ключ означает ноль - карта разреженная.
func (r *Repository) GetByClient(ctx context.Context, clientID int64) (map[domain.ServiceKey]int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("service_key", "points").
		From("loyalty_points").
		Where(squirrel.Eq{"client_id": clientID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByClient - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByClient - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	points := make(map[domain.ServiceKey]int)
	for rows.Next() {
		var key domain.ServiceKey
		var count int
		if err := rows.Scan(&key, &count); err != nil {
			return nil, fmt.Errorf("%w: GetByClient - scan row: %v", ErrScanRow, err)
		}
		points[key] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByClient - rows iteration: %v", ErrScanRow, err)
	}

	return points, nil
}
