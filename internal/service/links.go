package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Totarae/ShortLink/internal/model"
	"github.com/Totarae/ShortLink/internal/repositories"
	"github.com/Totarae/ShortLink/internal/slug"
	"go.uber.org/zap"
)

// maxSlugAttempts ограничивает выдачу слага. Исчерпание попыток означает
// насыщение алфавита или аномальную конкуренцию — решает вызывающий, не мы.
const maxSlugAttempts = 3

// ErrSlugExhausted возвращается, когда не удалось выдать уникальный слаг
// за maxSlugAttempts попыток.
var ErrSlugExhausted = errors.New("failed to issue unique slug after retries")

type Repository interface {
	FindBySlug(ctx context.Context, slug string) (*model.Link, error)
	InsertIfSlugAbsent(ctx context.Context, link *model.Link) error
	UpdateBySlug(ctx context.Context, slug string, patch model.LinkPatch) (*model.Link, error)
	DeleteBySlug(ctx context.Context, slug string) (bool, error)
	ListLinks(ctx context.Context) ([]*model.Link, error)
	Ping(ctx context.Context) error
}

type Cache interface {
	Get(ctx context.Context, slug string) (*model.CacheEntry, bool)
	Set(ctx context.Context, slug string, entry *model.CacheEntry) error
	Invalidate(ctx context.Context, slug string) error
}

// LinkService отвечает за создание и мутации ссылок.
type LinkService struct {
	Repo       Repository
	Cache      Cache
	Logger     *zap.Logger
	SlugLength int
}

func NewLinkService(repo Repository, cache Cache, logger *zap.Logger) *LinkService {
	return &LinkService{
		Repo:       repo,
		Cache:      cache,
		Logger:     logger,
		SlugLength: slug.DefaultLength,
	}
}

// Create выдаёт слаг и сохраняет ссылку.
// Проверка занятости перед вставкой — только оптимизация: между проверкой и
// вставкой может вклиниться конкурент. Последнее слово за уникальным индексом,
// его конфликт считается той же коллизией и расходует ту же попытку.
func (s *LinkService) Create(ctx context.Context, req *model.CreateLinkRequest) (*model.Link, error) {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	for attempt := 1; attempt <= maxSlugAttempts; attempt++ {
		candidate, err := slug.Generate(s.SlugLength)
		if err != nil {
			return nil, fmt.Errorf("generate slug: %w", err)
		}

		_, err = s.Repo.FindBySlug(ctx, candidate)
		if err == nil {
			s.Logger.Warn("Коллизия слага", zap.String("slug", candidate), zap.Int("attempt", attempt))
			continue
		}
		if !errors.Is(err, repositories.ErrNotFound) {
			return nil, err
		}

		link := &model.Link{
			Slug:          candidate,
			TargetURL:     req.TargetURL,
			ExpiresAt:     req.ExpiresAt,
			IsActive:      isActive,
			CreatedIPHash: req.CreatedIPHash,
		}

		err = s.Repo.InsertIfSlugAbsent(ctx, link)
		if errors.Is(err, repositories.ErrSlugTaken) {
			s.Logger.Warn("Конфликт индекса при вставке", zap.String("slug", candidate), zap.Int("attempt", attempt))
			continue
		}
		if err != nil {
			return nil, err
		}

		s.Logger.Info("Ссылка создана",
			zap.String("slug", link.Slug),
			zap.String("target_url", link.TargetURL))
		return link, nil
	}

	return nil, ErrSlugExhausted
}

// Get возвращает полную запись по слагу, минуя кеш.
func (s *LinkService) Get(ctx context.Context, slugValue string) (*model.Link, error) {
	return s.Repo.FindBySlug(ctx, slugValue)
}

// List возвращает все ссылки, новые сверху.
func (s *LinkService) List(ctx context.Context) ([]*model.Link, error) {
	return s.Repo.ListLinks(ctx)
}

// Update применяет частичное обновление и синхронно инвалидирует кеш.
// Именно удаление, а не перезапись: перезапись под конкурентными читателями
// может оставить в кеше полуприменённую мутацию.
func (s *LinkService) Update(ctx context.Context, slugValue string, patch model.LinkPatch) (*model.Link, error) {
	link, err := s.Repo.UpdateBySlug(ctx, slugValue, patch)
	if err != nil {
		return nil, err
	}

	if err := s.Cache.Invalidate(ctx, slugValue); err != nil {
		// Запись в БД уже обновлена, оставлять stale-кеш на сутки нельзя
		return nil, fmt.Errorf("invalidate cache after update: %w", err)
	}

	return link, nil
}

// Delete удаляет ссылку и её запись в кеше.
func (s *LinkService) Delete(ctx context.Context, slugValue string) (bool, error) {
	deleted, err := s.Repo.DeleteBySlug(ctx, slugValue)
	if err != nil {
		return false, err
	}
	if !deleted {
		return false, nil
	}

	if err := s.Cache.Invalidate(ctx, slugValue); err != nil {
		return false, fmt.Errorf("invalidate cache after delete: %w", err)
	}

	return true, nil
}

// Ping проверяет доступность базы данных.
func (s *LinkService) Ping(ctx context.Context) error {
	return s.Repo.Ping(ctx)
}
