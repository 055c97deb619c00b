package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Totarae/ShortLink/internal/database"
	"github.com/Totarae/ShortLink/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ErrNotFound возвращается, когда ссылка с таким слагом отсутствует.
var ErrNotFound = errors.New("link not found")

// ErrSlugTaken возвращается, когда вставка упёрлась в уникальный индекс по slug.
// Это штатная коллизия, вызывающий повторяет выдачу слага.
var ErrSlugTaken = errors.New("slug already taken")

// LinkRepositoryInterface определяет методы репозитория ссылок.
// Уникальность slug гарантирует индекс в БД, а не вызывающий код.
type LinkRepositoryInterface interface {
	FindBySlug(ctx context.Context, slug string) (*model.Link, error)
	InsertIfSlugAbsent(ctx context.Context, link *model.Link) error
	UpdateBySlug(ctx context.Context, slug string, patch model.LinkPatch) (*model.Link, error)
	DeleteBySlug(ctx context.Context, slug string) (bool, error)
	ListLinks(ctx context.Context) ([]*model.Link, error)
	CountLinks(ctx context.Context) (int, error)
	Ping(ctx context.Context) error
}

// LinkRepository реализует LinkRepositoryInterface с использованием PostgreSQL.
type LinkRepository struct {
	DB      database.DBInterface
	Timeout time.Duration
}

// NewLinkRepository создаёт новый экземпляр LinkRepository.
// timeout ограничивает каждый запрос к БД, чтобы медленная база не вешала вызывающего.
func NewLinkRepository(db database.DBInterface, timeout time.Duration) *LinkRepository {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &LinkRepository{DB: db, Timeout: timeout}
}

func (r *LinkRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.Timeout)
}

// FindBySlug извлекает запись по точному совпадению slug.
// Не фильтрует по is_active/expires_at: вызывающий сам различает
// "нет записи" и "запись есть, но непригодна".
func (r *LinkRepository) FindBySlug(ctx context.Context, slug string) (*model.Link, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `SELECT id, slug, target_url, created_at, expires_at, is_active, created_ip_hash
              FROM links WHERE slug = $1`
	link := &model.Link{}
	err := r.DB.(*database.DB).Pool.QueryRow(ctx, query, slug).Scan(
		&link.ID, &link.Slug, &link.TargetURL, &link.Created, &link.ExpiresAt, &link.IsActive, &link.CreatedIPHash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return link, nil
}

// InsertIfSlugAbsent сохраняет ссылку, если slug ещё не занят.
// Конфликт по индексу возвращается как ErrSlugTaken и не является фатальным.
func (r *LinkRepository) InsertIfSlugAbsent(ctx context.Context, link *model.Link) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if link.ID == uuid.Nil {
		link.ID = uuid.New()
	}

	query := `INSERT INTO links (id, slug, target_url, expires_at, is_active, created_ip_hash)
              VALUES ($1, $2, $3, $4, $5, $6)
              ON CONFLICT (slug) DO NOTHING
              RETURNING created_at`

	err := r.DB.(*database.DB).Pool.QueryRow(ctx, query,
		link.ID, link.Slug, link.TargetURL, link.ExpiresAt, link.IsActive, link.CreatedIPHash,
	).Scan(&link.Created)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// DO NOTHING сработал: slug уже существует
			return ErrSlugTaken
		}
		return fmt.Errorf("database insert error: %w", err)
	}
	return nil
}

// UpdateBySlug применяет частичное обновление и возвращает свежую запись.
func (r *LinkRepository) UpdateBySlug(ctx context.Context, slug string, patch model.LinkPatch) (*model.Link, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `UPDATE links
              SET target_url = COALESCE($2, target_url),
                  expires_at = COALESCE($3, expires_at),
                  is_active  = COALESCE($4, is_active)
              WHERE slug = $1
              RETURNING id, slug, target_url, created_at, expires_at, is_active, created_ip_hash`

	link := &model.Link{}
	err := r.DB.(*database.DB).Pool.QueryRow(ctx, query, slug, patch.TargetURL, patch.ExpiresAt, patch.IsActive).Scan(
		&link.ID, &link.Slug, &link.TargetURL, &link.Created, &link.ExpiresAt, &link.IsActive, &link.CreatedIPHash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database update error: %w", err)
	}
	return link, nil
}

// DeleteBySlug удаляет запись, возвращает true если запись существовала.
func (r *LinkRepository) DeleteBySlug(ctx context.Context, slug string) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	tag, err := r.DB.(*database.DB).Pool.Exec(ctx, `DELETE FROM links WHERE slug = $1`, slug)
	if err != nil {
		return false, fmt.Errorf("database delete error: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// ListLinks возвращает все ссылки, новые сверху.
func (r *LinkRepository) ListLinks(ctx context.Context) ([]*model.Link, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `SELECT id, slug, target_url, created_at, expires_at, is_active, created_ip_hash
              FROM links ORDER BY created_at DESC`
	rows, err := r.DB.(*database.DB).Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("database query error: %w", err)
	}
	defer rows.Close()

	var results []*model.Link
	for rows.Next() {
		link := &model.Link{}
		err := rows.Scan(&link.ID, &link.Slug, &link.TargetURL, &link.Created, &link.ExpiresAt, &link.IsActive, &link.CreatedIPHash)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		results = append(results, link)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("database rows error: %w", err)
	}

	return results, nil
}

// CountLinks количество сохранённых ссылок
func (r *LinkRepository) CountLinks(ctx context.Context) (int, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var count int
	err := r.DB.(*database.DB).Pool.QueryRow(ctx, `SELECT COUNT(*) FROM links`).Scan(&count)
	return count, err
}

// Ping проверяет доступность базы данных.
func (r *LinkRepository) Ping(ctx context.Context) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	_, err := r.DB.(*database.DB).Pool.Exec(ctx, "SELECT 1")
	return err
}
