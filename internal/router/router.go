package router

import (
	"github.com/Totarae/ShortLink/internal/handlers"
	"github.com/Totarae/ShortLink/internal/middleware"
	"github.com/Totarae/ShortLink/internal/ratelimit"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// NewRouter создаёт и настраивает маршрутизатор
func NewRouter(handler *handlers.Handler, limiter *ratelimit.Limiter, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.LoggingMiddleware(logger)) // Подключаем логирование
	r.Use(middleware.GzipMiddleware)            // Gzip-сжатие

	r.Route("/api/links", func(r chi.Router) {
		// Лимит только на создание: путь редиректа должен оставаться дешёвым
		r.With(middleware.RateLimitMiddleware(limiter, logger)).Post("/", handler.CreateLink)
		r.Get("/", handler.ListLinks)
		r.Get("/{slug}", handler.GetLink)
		r.Patch("/{slug}", handler.UpdateLink)
		r.Delete("/{slug}", handler.DeleteLink)
	})

	r.Get("/ping", handler.Ping)
	r.Get("/{slug}", handler.Redirect)
	return r
}
