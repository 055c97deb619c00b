package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Totarae/ShortLink/internal/mocks"
	"github.com/Totarae/ShortLink/internal/model"
	"github.com/Totarae/ShortLink/internal/repositories"
	"github.com/Totarae/ShortLink/internal/slug"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

// fakeCache — in-memory реализация Cache для тестов сервисов.
type fakeCache struct {
	mu      sync.Mutex
	entries map[string]*model.CacheEntry
	sets    int
	invalid []string
	setErr  error
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string]*model.CacheEntry)}
}

func (f *fakeCache) Get(_ context.Context, slug string) (*model.CacheEntry, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	entry, ok := f.entries[slug]
	return entry, ok
}

func (f *fakeCache) Set(_ context.Context, slug string, entry *model.CacheEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setErr != nil {
		return f.setErr
	}
	f.entries[slug] = entry
	f.sets++
	return nil
}

func (f *fakeCache) Invalidate(_ context.Context, slug string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.entries, slug)
	f.invalid = append(f.invalid, slug)
	return nil
}

func TestLinkService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockLinkRepositoryInterface(ctrl)
	cache := newFakeCache()
	svc := NewLinkService(repo, cache, zap.NewNop())

	repo.EXPECT().FindBySlug(gomock.Any(), gomock.Any()).Return(nil, repositories.ErrNotFound)
	repo.EXPECT().InsertIfSlugAbsent(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, link *model.Link) error {
			link.Created = time.Now()
			return nil
		})

	link, err := svc.Create(context.Background(), &model.CreateLinkRequest{TargetURL: "https://example.com"})
	require.NoError(t, err)
	assert.Len(t, link.Slug, slug.DefaultLength)
	assert.Equal(t, "https://example.com", link.TargetURL)
	assert.True(t, link.IsActive)
	// Создание оставляет кеш холодным
	assert.Zero(t, cache.sets)
}

// Занятый слаг на предпроверке расходует попытку, вставка не выполняется
func TestLinkService_CreateRetriesOnPrecheckCollision(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockLinkRepositoryInterface(ctrl)
	svc := NewLinkService(repo, newFakeCache(), zap.NewNop())

	taken := &model.Link{Slug: "taken12"}
	gomock.InOrder(
		repo.EXPECT().FindBySlug(gomock.Any(), gomock.Any()).Return(taken, nil),
		repo.EXPECT().FindBySlug(gomock.Any(), gomock.Any()).Return(nil, repositories.ErrNotFound),
	)
	repo.EXPECT().InsertIfSlugAbsent(gomock.Any(), gomock.Any()).Return(nil)

	_, err := svc.Create(context.Background(), &model.CreateLinkRequest{TargetURL: "https://example.com"})
	assert.NoError(t, err)
}

// Конфликт индекса при вставке — та же коллизия, попытка расходуется
func TestLinkService_CreateRetriesOnInsertConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockLinkRepositoryInterface(ctrl)
	svc := NewLinkService(repo, newFakeCache(), zap.NewNop())

	repo.EXPECT().FindBySlug(gomock.Any(), gomock.Any()).Return(nil, repositories.ErrNotFound).Times(2)
	gomock.InOrder(
		repo.EXPECT().InsertIfSlugAbsent(gomock.Any(), gomock.Any()).Return(repositories.ErrSlugTaken),
		repo.EXPECT().InsertIfSlugAbsent(gomock.Any(), gomock.Any()).Return(nil),
	)

	_, err := svc.Create(context.Background(), &model.CreateLinkRequest{TargetURL: "https://example.com"})
	assert.NoError(t, err)
}

// После трёх коллизий — ErrSlugExhausted, вставок не было
func TestLinkService_CreateExhausted(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockLinkRepositoryInterface(ctrl)
	svc := NewLinkService(repo, newFakeCache(), zap.NewNop())

	taken := &model.Link{Slug: "taken12"}
	repo.EXPECT().FindBySlug(gomock.Any(), gomock.Any()).Return(taken, nil).Times(3)

	_, err := svc.Create(context.Background(), &model.CreateLinkRequest{TargetURL: "https://example.com"})
	assert.ErrorIs(t, err, ErrSlugExhausted)
}

// Ошибка БД не маскируется под коллизию
func TestLinkService_CreateStoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockLinkRepositoryInterface(ctrl)
	svc := NewLinkService(repo, newFakeCache(), zap.NewNop())

	storeErr := errors.New("connection refused")
	repo.EXPECT().FindBySlug(gomock.Any(), gomock.Any()).Return(nil, storeErr)

	_, err := svc.Create(context.Background(), &model.CreateLinkRequest{TargetURL: "https://example.com"})
	assert.ErrorIs(t, err, storeErr)
}

// Обновление инвалидирует кеш до возврата успеха
func TestLinkService_UpdateInvalidatesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockLinkRepositoryInterface(ctrl)
	cache := newFakeCache()
	cache.entries["abc1234"] = &model.CacheEntry{TargetURL: "https://old.example.com", IsActive: true}
	svc := NewLinkService(repo, cache, zap.NewNop())

	newURL := "https://new.example.com"
	updated := &model.Link{Slug: "abc1234", TargetURL: newURL, IsActive: true}
	repo.EXPECT().UpdateBySlug(gomock.Any(), "abc1234", gomock.Any()).Return(updated, nil)

	link, err := svc.Update(context.Background(), "abc1234", model.LinkPatch{TargetURL: &newURL})
	require.NoError(t, err)
	assert.Equal(t, newURL, link.TargetURL)
	assert.Contains(t, cache.invalid, "abc1234")
	assert.NotContains(t, cache.entries, "abc1234")
}

func TestLinkService_UpdateNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockLinkRepositoryInterface(ctrl)
	cache := newFakeCache()
	svc := NewLinkService(repo, cache, zap.NewNop())

	repo.EXPECT().UpdateBySlug(gomock.Any(), "absent1", gomock.Any()).Return(nil, repositories.ErrNotFound)

	_, err := svc.Update(context.Background(), "absent1", model.LinkPatch{})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	// Нечего инвалидировать, если обновление не прошло
	assert.Empty(t, cache.invalid)
}

func TestLinkService_DeleteInvalidatesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockLinkRepositoryInterface(ctrl)
	cache := newFakeCache()
	cache.entries["abc1234"] = &model.CacheEntry{TargetURL: "https://example.com", IsActive: true}
	svc := NewLinkService(repo, cache, zap.NewNop())

	repo.EXPECT().DeleteBySlug(gomock.Any(), "abc1234").Return(true, nil)

	deleted, err := svc.Delete(context.Background(), "abc1234")
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Contains(t, cache.invalid, "abc1234")
}

func TestLinkService_DeleteAbsent(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockLinkRepositoryInterface(ctrl)
	cache := newFakeCache()
	svc := NewLinkService(repo, cache, zap.NewNop())

	repo.EXPECT().DeleteBySlug(gomock.Any(), "absent1").Return(false, nil)

	deleted, err := svc.Delete(context.Background(), "absent1")
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Empty(t, cache.invalid)
}
