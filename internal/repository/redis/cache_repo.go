package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	apperrors "github.com/yourusername/trivia-questions-api/internal/pkg/errors"
)

// CacheRepo реализует repository.CacheRepository
type CacheRepo struct {
	client redis.UniversalClient
	prefix string
}

// NewCacheRepo создает новый репозиторий кеша и возвращает ошибку при проблемах
func NewCacheRepo(client redis.UniversalClient, prefix string) (*CacheRepo, error) {
	if client == nil {
		return nil, fmt.Errorf("Redis client cannot be nil for CacheRepo")
	}
	return &CacheRepo{
		client: client,
		prefix: prefix,
	}, nil
}

func (r *CacheRepo) key(k string) string {
	if r.prefix == "" {
		return k
	}
	return r.prefix + ":" + k
}

// SetJSON сохраняет структуру JSON в кеше
func (r *CacheRepo) SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.key(key), data, expiration).Err()
}

// GetJSON получает структуру JSON из кеша
func (r *CacheRepo) GetJSON(ctx context.Context, key string, dest interface{}) error {
	data, err := r.client.Get(ctx, r.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return apperrors.ErrNotFound
		}
		return err
	}
	return json.Unmarshal(data, dest)
}

// Delete удаляет значение из кеша
func (r *CacheRepo) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.key(key)).Err()
}

// Increment увеличивает счётчик на 1. Первое увеличение задаёт TTL окна.
func (r *CacheRepo) Increment(ctx context.Context, key string, window time.Duration) (int64, error) {
	fullKey := r.key(key)
	count, err := r.client.Incr(ctx, fullKey).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		if err := r.client.Expire(ctx, fullKey, window).Err(); err != nil {
			return count, fmt.Errorf("failed to set TTL for %s: %w", fullKey, err)
		}
	}
	return count, nil
}

// TTL возвращает оставшееся время жизни ключа
func (r *CacheRepo) TTL(ctx context.Context, key string) (time.Duration, error) {
	return r.client.TTL(ctx, r.key(key)).Result()
}

// NoOpCache используется, когда Redis отключён: всегда промах, запись игнорируется
type NoOpCache struct{}

func (NoOpCache) SetJSON(context.Context, string, interface{}, time.Duration) error { return nil }

func (NoOpCache) GetJSON(context.Context, string, interface{}) error { return apperrors.ErrNotFound }

func (NoOpCache) Delete(context.Context, string) error { return nil }

func (NoOpCache) Increment(context.Context, string, time.Duration) (int64, error) { return 0, nil }

func (NoOpCache) TTL(context.Context, string) (time.Duration, error) { return 0, nil }
