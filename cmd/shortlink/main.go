package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Totarae/ShortLink/internal/cache"
	"github.com/Totarae/ShortLink/internal/config"
	"github.com/Totarae/ShortLink/internal/database"
	"github.com/Totarae/ShortLink/internal/handlers"
	"github.com/Totarae/ShortLink/internal/ratelimit"
	"github.com/Totarae/ShortLink/internal/repositories"
	"github.com/Totarae/ShortLink/internal/router"
	"github.com/Totarae/ShortLink/internal/service"
	"github.com/Totarae/ShortLink/internal/util"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Инициализация конфигурации
	cfg := config.NewConfig()
	if err := cfg.Validate(); err != nil {
		logger.Fatal("Некорректная конфигурация", zap.Error(err))
	}

	ctx := context.Background()

	db, err := database.NewDB(ctx, cfg.DatabaseDSN, logger)
	if err != nil {
		logger.Fatal("Не удалось подключиться к БД", zap.Error(err))
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		logger.Fatal("Не удалось применить миграции", zap.Error(err))
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	defer rdb.Close()

	if err := rdb.Ping(ctx).Err(); err != nil {
		// Redis не критичен для старта: кеш деградирует в промахи,
		// лимит — в fail open
		logger.Warn("Redis недоступен на старте", zap.Error(err))
	}

	repo := repositories.NewLinkRepository(db, cfg.StoreTimeout())
	linkCache := cache.NewLinkCache(cache.NewRedisStore(rdb), logger, cfg.CacheTTL(), cfg.CacheJitterMax())
	limiter := ratelimit.NewLimiter(ratelimit.NewRedisCounter(rdb), logger, cfg.RateLimitCreateLimit, cfg.RateLimitWindow())
	validator := util.NewTargetURLValidator(cfg.BlockedHosts())

	links := service.NewLinkService(repo, linkCache, logger)
	resolver := service.NewResolver(repo, linkCache, logger)

	handler := handlers.NewHandler(links, resolver, validator, logger, cfg.BaseURL)
	r := router.NewRouter(handler, limiter, logger)

	srv := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: r,
	}

	go func() {
		logger.Info("Сервер запущен", zap.String("address", cfg.ServerAddress))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Ошибка при запуске сервера", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Останавливаем сервер")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Ошибка при остановке сервера", zap.Error(err))
	}
}
