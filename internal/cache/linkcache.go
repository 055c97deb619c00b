// Package cache реализует read-through кеш ссылок поверх быстрого KV-хранилища.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"time"

	"github.com/Totarae/ShortLink/internal/model"
	"go.uber.org/zap"
)

const keyPrefix = "s:"

// LinkCache хранит компактные проекции ссылок с джиттером TTL.
// Кеш не авторитетен: промах означает "неизвестно", а не "не существует".
type LinkCache struct {
	store     Store
	logger    *zap.Logger
	baseTTL   time.Duration
	jitterMax time.Duration
}

// NewLinkCache создаёт кеш ссылок.
// Джиттер размазывает массовое протухание популярных слагов,
// записанных в кеш в одно и то же время.
func NewLinkCache(store Store, logger *zap.Logger, baseTTL, jitterMax time.Duration) *LinkCache {
	if baseTTL <= 0 {
		baseTTL = 24 * time.Hour
	}
	return &LinkCache{
		store:     store,
		logger:    logger,
		baseTTL:   baseTTL,
		jitterMax: jitterMax,
	}
}

func (c *LinkCache) key(slug string) string {
	return keyPrefix + slug
}

func (c *LinkCache) ttl() time.Duration {
	if c.jitterMax <= 0 {
		return c.baseTTL
	}
	return c.baseTTL + time.Duration(rand.Int63n(int64(c.jitterMax)))
}

// Get возвращает запись кеша по слагу.
// Любой сбой — недоступность, битый payload — трактуется как промах.
// Битую запись лучше сразу удалить, чтобы не парсить её на каждом запросе.
func (c *LinkCache) Get(ctx context.Context, slug string) (*model.CacheEntry, bool) {
	raw, err := c.store.Get(ctx, c.key(slug))
	if err != nil {
		if !errors.Is(err, ErrMiss) {
			c.logger.Error("Ошибка чтения из кеша", zap.String("slug", slug), zap.Error(err))
		}
		return nil, false
	}

	entry := &model.CacheEntry{}
	if err := json.Unmarshal([]byte(raw), entry); err != nil {
		c.logger.Warn("Битая запись в кеше", zap.String("slug", slug), zap.Error(err))
		if delErr := c.store.Del(ctx, c.key(slug)); delErr != nil {
			c.logger.Error("Не удалось удалить битую запись", zap.String("slug", slug), zap.Error(delErr))
		}
		return nil, false
	}

	return entry, true
}

// Set записывает проекцию ссылки с TTL baseTTL + rand(0, jitterMax).
func (c *LinkCache) Set(ctx context.Context, slug string, entry *model.CacheEntry) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return c.store.SetEX(ctx, c.key(slug), string(raw), c.ttl())
}

// Invalidate удаляет запись кеша. Удаление отсутствующего ключа — не ошибка.
func (c *LinkCache) Invalidate(ctx context.Context, slug string) error {
	return c.store.Del(ctx, c.key(slug))
}
