package availability

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Cache кеш ответов расчёта доступности в Redis.
// Ключ - пара (мастер, дата), поля hash - длительность услуги в минутах.
// Кеш короткоживущий и инвалидируется целиком по (мастер, дата) при любой
// мутации записей этого дня. Ошибки Redis не влияют на расчёт: промах кеша -
// нормальный путь.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	log    Logger
}

// New создает кеш и проверяет соединение с Redis
func New(addr, password string, db int, ttl time.Duration, log Logger) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("availability cache: ping redis: %w", err)
	}

	return &Cache{client: client, ttl: ttl, log: log}, nil
}

func cacheKey(professionalID int64, date string) string {
	return fmt.Sprintf("availability:%d:%s", professionalID, date)
}

// Get возвращает закешированный список слотов, если он есть
func (c *Cache) Get(ctx context.Context, professionalID int64, date string, durationMinutes int) ([]time.Time, bool) {
	raw, err := c.client.HGet(ctx, cacheKey(professionalID, date), fmt.Sprintf("%d", durationMinutes)).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.log.Warn("availability cache: get failed: %v", err)
		return nil, false
	}

	var times []time.Time
	if err := json.Unmarshal([]byte(raw), &times); err != nil {
		c.log.Warn("availability cache: corrupted entry for professional=%d date=%s: %v", professionalID, date, err)
		return nil, false
	}

	return times, true
}

// Set сохраняет список слотов с TTL
func (c *Cache) Set(ctx context.Context, professionalID int64, date string, durationMinutes int, times []time.Time) {
	raw, err := json.Marshal(times)
	if err != nil {
		c.log.Warn("availability cache: marshal failed: %v", err)
		return
	}

	key := cacheKey(professionalID, date)
	pipe := c.client.TxPipeline()
	pipe.HSet(ctx, key, fmt.Sprintf("%d", durationMinutes), raw)
	pipe.Expire(ctx, key, c.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		c.log.Warn("availability cache: set failed: %v", err)
	}
}

// Invalidate удаляет кеш для (мастер, дата) после мутации записей
func (c *Cache) Invalidate(ctx context.Context, professionalID int64, date string) {
	if err := c.client.Del(ctx, cacheKey(professionalID, date)).Err(); err != nil {
		c.log.Warn("availability cache: invalidate failed: %v", err)
	}
}

// Close закрывает соединение с Redis
func (c *Cache) Close() error {
	return c.client.Close()
}
