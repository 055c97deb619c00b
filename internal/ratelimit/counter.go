package ratelimit

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCounter реализует Counter поверх go-redis.
type RedisCounter struct {
	Client *redis.Client
}

func NewRedisCounter(client *redis.Client) *RedisCounter {
	return &RedisCounter{Client: client}
}

// IncrWithWindow выполняет INCR и EXPIRE NX одним пайплайном.
// NX критичен: окно выставляется только первым запросом,
// остальные не сдвигают его дедлайн.
func (c *RedisCounter) IncrWithWindow(ctx context.Context, key string, window time.Duration) (int64, error) {
	pipe := c.Client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

// TTL возвращает оставшееся время жизни ключа.
func (c *RedisCounter) TTL(ctx context.Context, key string) (time.Duration, error) {
	return c.Client.TTL(ctx, key).Result()
}
