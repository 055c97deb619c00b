package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/Totarae/ShortLink/internal/middleware"
	"github.com/Totarae/ShortLink/internal/model"
	"github.com/Totarae/ShortLink/internal/repositories"
	"github.com/Totarae/ShortLink/internal/service"
	"github.com/Totarae/ShortLink/internal/util"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Слаг валиден синтаксически: 1–16 символов из базового алфавита плюс -_
var slugPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,16}$`)

// Handler связывает HTTP-слой с сервисами ссылок.
type Handler struct {
	Links     *service.LinkService
	Resolver  *service.Resolver
	Validator *util.TargetURLValidator
	Logger    *zap.Logger
	BaseURL   string
}

func NewHandler(links *service.LinkService, resolver *service.Resolver, validator *util.TargetURLValidator, logger *zap.Logger, baseURL string) *Handler {
	return &Handler{
		Links:     links,
		Resolver:  resolver,
		Validator: validator,
		Logger:    logger,
		BaseURL:   strings.TrimSuffix(baseURL, "/"),
	}
}

func (h *Handler) toResponse(link *model.Link) model.LinkResponse {
	return model.LinkResponse{
		ID:        link.ID.String(),
		Slug:      link.Slug,
		ShortURL:  h.BaseURL + "/" + link.Slug,
		TargetURL: link.TargetURL,
		CreatedAt: link.Created,
		ExpiresAt: link.ExpiresAt,
		IsActive:  link.IsActive,
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// CreateLink обрабатывает POST /api/links.
func (h *Handler) CreateLink(w http.ResponseWriter, r *http.Request) {
	var req model.CreateLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	if err := h.Validator.Validate(req.TargetURL); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.ExpiresAt != nil && !req.ExpiresAt.After(time.Now()) {
		http.Error(w, "expiration must be in the future", http.StatusBadRequest)
		return
	}

	// Адрес клиента не храним, только его хеш
	if req.CreatedIPHash == nil {
		if ip := middleware.ClientIP(r); ip != "" {
			hash := util.HashIP(ip)
			req.CreatedIPHash = &hash
		}
	}

	link, err := h.Links.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrSlugExhausted) {
			h.Logger.Error("Выдача слага исчерпала попытки", zap.Error(err))
			http.Error(w, "slug already exists", http.StatusConflict)
			return
		}
		h.Logger.Error("Не удалось создать ссылку", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, h.toResponse(link))
}

// ListLinks обрабатывает GET /api/links.
func (h *Handler) ListLinks(w http.ResponseWriter, r *http.Request) {
	links, err := h.Links.List(r.Context())
	if err != nil {
		h.Logger.Error("Не удалось получить список ссылок", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	responses := make([]model.LinkResponse, 0, len(links))
	for _, link := range links {
		responses = append(responses, h.toResponse(link))
	}
	writeJSON(w, http.StatusOK, responses)
}

// GetLink обрабатывает GET /api/links/{slug}.
func (h *Handler) GetLink(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if !slugPattern.MatchString(slug) {
		http.Error(w, "invalid slug", http.StatusBadRequest)
		return
	}

	link, err := h.Links.Get(r.Context(), slug)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		h.Logger.Error("Не удалось получить ссылку", zap.String("slug", slug), zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, h.toResponse(link))
}

// UpdateLink обрабатывает PATCH /api/links/{slug}.
func (h *Handler) UpdateLink(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if !slugPattern.MatchString(slug) {
		http.Error(w, "invalid slug", http.StatusBadRequest)
		return
	}

	var req model.UpdateLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if req.TargetURL != nil {
		if err := h.Validator.Validate(*req.TargetURL); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	patch := model.LinkPatch{
		TargetURL: req.TargetURL,
		ExpiresAt: req.ExpiresAt,
		IsActive:  req.IsActive,
	}
	link, err := h.Links.Update(r.Context(), slug, patch)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		h.Logger.Error("Не удалось обновить ссылку", zap.String("slug", slug), zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, h.toResponse(link))
}

// DeleteLink обрабатывает DELETE /api/links/{slug}.
func (h *Handler) DeleteLink(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if !slugPattern.MatchString(slug) {
		http.Error(w, "invalid slug", http.StatusBadRequest)
		return
	}

	deleted, err := h.Links.Delete(r.Context(), slug)
	if err != nil {
		h.Logger.Error("Не удалось удалить ссылку", zap.String("slug", slug), zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if !deleted {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Redirect обрабатывает GET /{slug} — собственно редирект.
// Четыре различимых исхода: 302, 404, 410 для истёкших, 403 для выключенных.
func (h *Handler) Redirect(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if !slugPattern.MatchString(slug) {
		http.Error(w, "invalid slug", http.StatusBadRequest)
		return
	}

	entry, err := h.Resolver.Resolve(r.Context(), slug)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		h.Logger.Error("Резолв не удался", zap.String("slug", slug), zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	// Пригодность проверяется здесь, одинаково для кеша и БД:
	// закешированный expires_at абсолютный, сравнивается с текущим временем.
	switch service.EvaluateLink(entry, time.Now()) {
	case service.OutcomeUsable:
		w.Header().Set("Cache-Control", "private, max-age=0, no-cache")
		http.Redirect(w, r, entry.TargetURL, http.StatusFound)
	case service.OutcomeExpired:
		http.Error(w, "link expired", http.StatusGone)
	case service.OutcomeInactive:
		http.Error(w, "link inactive", http.StatusForbidden)
	default:
		http.Error(w, "not found", http.StatusNotFound)
	}
}

// Ping обрабатывает GET /ping — проверка доступности БД.
func (h *Handler) Ping(w http.ResponseWriter, r *http.Request) {
	if err := h.Links.Ping(r.Context()); err != nil {
		h.Logger.Error("БД недоступна", zap.Error(err))
		http.Error(w, "database unavailable", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}
