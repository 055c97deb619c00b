// Package ratelimit реализует pер-клиентный лимит с фиксированным окном
// на базе общего счётчика в быстром хранилище.
package ratelimit

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const keyPrefix = "rl:create:"

// State — исход проверки лимита.
type State int

const (
	// Allowed — запрос в пределах лимита.
	Allowed State = iota
	// Denied — лимит исчерпан, клиенту нужно подождать RetryAfter.
	Denied
	// Degraded — счётчик недоступен, запрос пропущен (fail open).
	// Доступность редиректа важнее защиты от злоупотреблений.
	Degraded
)

// Decision — результат Allow вместе с причиной деградации,
// чтобы fail-open был виден тестам и логам, а не проглочен.
type Decision struct {
	State      State
	RetryAfter time.Duration
	Err        error
}

// Counter — узкий интерфейс атомарного счётчика с окном.
type Counter interface {
	// IncrWithWindow атомарно инкрементирует ключ и выставляет окно,
	// только если срок жизни ещё не задан. Возвращает значение после инкремента.
	IncrWithWindow(ctx context.Context, key string, window time.Duration) (int64, error)
	// TTL возвращает оставшееся время жизни ключа.
	TTL(ctx context.Context, key string) (time.Duration, error)
}

// Limiter допускает не более limit запросов на клиента за window.
type Limiter struct {
	counter Counter
	logger  *zap.Logger
	limit   int64
	window  time.Duration
}

func NewLimiter(counter Counter, logger *zap.Logger, limit int64, window time.Duration) *Limiter {
	if limit <= 0 {
		limit = 30
	}
	if window <= 0 {
		window = 10 * time.Minute
	}
	return &Limiter{counter: counter, logger: logger, limit: limit, window: window}
}

// Allow проверяет, укладывается ли клиент в лимит окна.
// Инкремент и установка окна должны быть атомарны: конкурентные первые
// запросы одного окна не должны сдвигать его дедлайн.
func (l *Limiter) Allow(ctx context.Context, clientKey string) Decision {
	key := keyPrefix + clientKey

	count, err := l.counter.IncrWithWindow(ctx, key, l.window)
	if err != nil {
		l.logger.Error("Счётчик лимита недоступен, запрос пропущен",
			zap.String("client", clientKey), zap.Error(err))
		return Decision{State: Degraded, Err: err}
	}

	if count > l.limit {
		retryAfter := l.window
		if ttl, ttlErr := l.counter.TTL(ctx, key); ttlErr == nil && ttl > 0 {
			retryAfter = ttl
		}
		l.logger.Warn("Превышен лимит запросов",
			zap.String("client", clientKey),
			zap.Int64("count", count),
			zap.Int64("limit", l.limit))
		return Decision{State: Denied, RetryAfter: retryAfter}
	}

	return Decision{State: Allowed}
}
