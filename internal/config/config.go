package config

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config хранит конфигурацию сервера
type Config struct {
	ServerAddress string `json:"server_address"`
	BaseURL       string `json:"base_url"`
	DatabaseDSN   string `json:"database_dsn"`
	RedisAddr     string `json:"redis_addr"`
	RedisPassword string `json:"redis_password"`

	RateLimitCreateLimit         int64 `json:"rate_limit_create_limit"`
	RateLimitCreateWindowSeconds int   `json:"rate_limit_create_window_seconds"`

	CacheTTLSeconds       int `json:"cache_ttl_seconds"`
	CacheJitterMaxSeconds int `json:"cache_jitter_max_seconds"`
	StoreTimeoutSeconds   int `json:"store_timeout_seconds"`

	URLBlocklist string `json:"url_blocklist"`
}

// NewConfig инициализирует конфигурацию на основе окружения и аргументов командной строки
func NewConfig() *Config {

	viper.SetDefault("SERVER_ADDRESS", "localhost:8080") // Значения по умолчанию
	viper.SetDefault("BASE_URL", "http://localhost:8080")
	viper.SetDefault("DATABASE_DSN", "")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("RATE_LIMIT_CREATE_LIMIT", 30)
	viper.SetDefault("RATE_LIMIT_CREATE_WINDOW_SECONDS", 600)
	viper.SetDefault("CACHE_TTL_SECONDS", 86400)
	viper.SetDefault("CACHE_JITTER_MAX_SECONDS", 300)
	viper.SetDefault("STORE_TIMEOUT_SECONDS", 2)
	viper.SetDefault("URL_BLOCKLIST", "")

	viper.AutomaticEnv()

	// Читаем .env, если есть (не переопределяет переменные окружения!)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // Ошибку игнорируем, если файла нет

	// Определяем флаги, но НЕ задаем в них значения по умолчанию
	serverAddress := flag.String("a", "", "server address")
	baseURL := flag.String("b", "", "base URL")
	databaseDSN := flag.String("d", "", "PostgreSQL DSN")
	redisAddr := flag.String("r", "", "Redis address")
	configPath := flag.String("c", "", "path to JSON config file")
	flag.StringVar(configPath, "config", "", "path to JSON config file")

	flag.Parse()

	// Загружаем JSON-конфигурацию (если указана)
	if *configPath == "" {
		*configPath = os.Getenv("CONFIG")
	}

	cfg := &Config{
		ServerAddress:                viper.GetString("SERVER_ADDRESS"),
		BaseURL:                      viper.GetString("BASE_URL"),
		DatabaseDSN:                  viper.GetString("DATABASE_DSN"),
		RedisAddr:                    viper.GetString("REDIS_ADDR"),
		RedisPassword:                viper.GetString("REDIS_PASSWORD"),
		RateLimitCreateLimit:         viper.GetInt64("RATE_LIMIT_CREATE_LIMIT"),
		RateLimitCreateWindowSeconds: viper.GetInt("RATE_LIMIT_CREATE_WINDOW_SECONDS"),
		CacheTTLSeconds:              viper.GetInt("CACHE_TTL_SECONDS"),
		CacheJitterMaxSeconds:        viper.GetInt("CACHE_JITTER_MAX_SECONDS"),
		StoreTimeoutSeconds:          viper.GetInt("STORE_TIMEOUT_SECONDS"),
		URLBlocklist:                 viper.GetString("URL_BLOCKLIST"),
	}

	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			log.Printf("Не удалось прочитать JSON-файл конфигурации %q: %v", *configPath, err)
		} else if err := json.Unmarshal(data, cfg); err != nil {
			log.Printf("Ошибка разбора JSON-файла конфигурации: %v", err)
		}
	}

	// Если флаг передан — он имеет высший приоритет
	if *serverAddress != "" {
		cfg.ServerAddress = *serverAddress
	}
	if *baseURL != "" {
		cfg.BaseURL = *baseURL
	}
	if *databaseDSN != "" {
		cfg.DatabaseDSN = *databaseDSN
	}
	if *redisAddr != "" {
		cfg.RedisAddr = *redisAddr
	}

	log.Printf("Инициализация конфигурации: ServerAddress=%s", cfg.ServerAddress)
	log.Printf("Инициализация конфигурации: BaseURL=%s", cfg.BaseURL)
	log.Printf("Инициализация конфигурации: RedisAddr=%s", cfg.RedisAddr)

	// Проверка корректности конфигурации
	if err := cfg.Validate(); err != nil {
		fmt.Printf("Ошибка конфигурации: %v\n", err)
	}

	return cfg
}

// RateLimitWindow возвращает окно лимита как Duration.
func (cfg *Config) RateLimitWindow() time.Duration {
	return time.Duration(cfg.RateLimitCreateWindowSeconds) * time.Second
}

// CacheTTL возвращает базовый TTL кеша как Duration.
func (cfg *Config) CacheTTL() time.Duration {
	return time.Duration(cfg.CacheTTLSeconds) * time.Second
}

// CacheJitterMax возвращает верхнюю границу джиттера как Duration.
func (cfg *Config) CacheJitterMax() time.Duration {
	return time.Duration(cfg.CacheJitterMaxSeconds) * time.Second
}

// StoreTimeout возвращает таймаут обращений к внешним хранилищам.
func (cfg *Config) StoreTimeout() time.Duration {
	return time.Duration(cfg.StoreTimeoutSeconds) * time.Second
}

// BlockedHosts разбирает блок-лист хостов из конфига.
func (cfg *Config) BlockedHosts() []string {
	if cfg.URLBlocklist == "" {
		return nil
	}
	return strings.Split(cfg.URLBlocklist, ",")
}

// Validate проверяет корректность конфигурации
func (cfg *Config) Validate() error {
	if cfg.ServerAddress == "" {
		return fmt.Errorf("адрес сервера не может быть пустым")
	}
	if cfg.BaseURL == "" {
		return fmt.Errorf("базовый URL не может быть пустым")
	}
	if cfg.DatabaseDSN == "" {
		return fmt.Errorf("адрес подключения к БД не может быть пустым")
	}
	if cfg.RateLimitCreateLimit <= 0 || cfg.RateLimitCreateWindowSeconds <= 0 {
		return fmt.Errorf("параметры лимита должны быть положительными")
	}
	return nil
}
