package ratelimit

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// fakeCounter — in-memory счётчик с фиксированным окном.
type fakeCounter struct {
	mu       sync.Mutex
	counts   map[string]int64
	ttls     map[string]time.Duration
	failIncr error
}

func newFakeCounter() *fakeCounter {
	return &fakeCounter{counts: make(map[string]int64), ttls: make(map[string]time.Duration)}
}

func (f *fakeCounter) IncrWithWindow(_ context.Context, key string, window time.Duration) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failIncr != nil {
		return 0, f.failIncr
	}
	f.counts[key]++
	if _, ok := f.ttls[key]; !ok {
		f.ttls[key] = window
	}
	return f.counts[key], nil
}

func (f *fakeCounter) TTL(_ context.Context, key string) (time.Duration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ttl, ok := f.ttls[key]
	if !ok {
		return -2 * time.Second, nil
	}
	return ttl, nil
}

// 30 запросов проходят, 31-й получает отказ с Retry-After в пределах окна
func TestLimiter_WindowBoundary(t *testing.T) {
	counter := newFakeCounter()
	l := NewLimiter(counter, zap.NewNop(), 30, 600*time.Second)

	for i := 0; i < 30; i++ {
		d := l.Allow(context.Background(), "192.0.2.1")
		assert.Equal(t, Allowed, d.State, "request %d should be admitted", i+1)
	}

	d := l.Allow(context.Background(), "192.0.2.1")
	assert.Equal(t, Denied, d.State)
	assert.Greater(t, d.RetryAfter, time.Duration(0))
	assert.LessOrEqual(t, d.RetryAfter, 600*time.Second)
}

// Разные клиенты считаются независимо
func TestLimiter_PerClientKeys(t *testing.T) {
	counter := newFakeCounter()
	l := NewLimiter(counter, zap.NewNop(), 1, 600*time.Second)

	assert.Equal(t, Allowed, l.Allow(context.Background(), "192.0.2.1").State)
	assert.Equal(t, Denied, l.Allow(context.Background(), "192.0.2.1").State)
	assert.Equal(t, Allowed, l.Allow(context.Background(), "192.0.2.2").State)
}

// Недоступный счётчик — fail open с видимой причиной
func TestLimiter_FailOpen(t *testing.T) {
	counter := newFakeCounter()
	counter.failIncr = errors.New("connection refused")
	l := NewLimiter(counter, zap.NewNop(), 30, 600*time.Second)

	d := l.Allow(context.Background(), "192.0.2.1")
	assert.Equal(t, Degraded, d.State)
	assert.Error(t, d.Err)
}

// Окно не сдвигается повторными запросами
func TestLimiter_WindowNotReset(t *testing.T) {
	counter := newFakeCounter()
	counter.ttls["rl:create:192.0.2.1"] = 42 * time.Second
	counter.counts["rl:create:192.0.2.1"] = 30

	l := NewLimiter(counter, zap.NewNop(), 30, 600*time.Second)
	d := l.Allow(context.Background(), "192.0.2.1")
	assert.Equal(t, Denied, d.State)
	assert.Equal(t, 42*time.Second, d.RetryAfter)
}
