package service

import (
	"context"
	"time"

	"github.com/Totarae/ShortLink/internal/model"
	"go.uber.org/zap"
)

// Resolver отвечает на вопрос "куда ведёт слаг X" по схеме cache-aside.
type Resolver struct {
	Repo   Repository
	Cache  Cache
	Logger *zap.Logger
}

func NewResolver(repo Repository, cache Cache, logger *zap.Logger) *Resolver {
	return &Resolver{Repo: repo, Cache: cache, Logger: logger}
}

// Resolve возвращает компактную проекцию записи или repositories.ErrNotFound.
// Попадание в кеш не перепроверяется по БД: запись попадала в кеш только
// пригодной на момент записи, а актуальность expires_at/is_active вызывающий
// проверяет сам через EvaluateLink — одинаково для кеша и БД.
func (r *Resolver) Resolve(ctx context.Context, slugValue string) (*model.CacheEntry, error) {
	if entry, ok := r.Cache.Get(ctx, slugValue); ok {
		r.Logger.Debug("Попадание в кеш", zap.String("slug", slugValue))
		return entry, nil
	}

	// Запрос без фильтра по is_active/expires_at: "нет записи" и
	// "запись есть, но непригодна" — разные исходы для вызывающего.
	link, err := r.Repo.FindBySlug(ctx, slugValue)
	if err != nil {
		return nil, err
	}

	entry := &model.CacheEntry{
		TargetURL: link.TargetURL,
		ExpiresAt: link.ExpiresAt,
		IsActive:  link.IsActive,
	}

	// Кешируем только пригодные записи: просроченная или выключенная ссылка
	// не станет валидной сама по себе, держать её в кеше сутки незачем.
	if shouldCache(link, time.Now()) {
		if err := r.Cache.Set(ctx, slugValue, entry); err != nil {
			// Кеш не авторитетен, ошибка записи не ломает резолв
			r.Logger.Error("Не удалось записать в кеш", zap.String("slug", slugValue), zap.Error(err))
		}
	} else if err := r.Cache.Invalidate(ctx, slugValue); err != nil {
		r.Logger.Error("Не удалось удалить непригодную запись из кеша", zap.String("slug", slugValue), zap.Error(err))
	}

	return entry, nil
}

func shouldCache(link *model.Link, now time.Time) bool {
	if !link.IsActive {
		return false
	}
	return link.ExpiresAt == nil || link.ExpiresAt.After(now)
}
