package middleware

import (
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/Totarae/ShortLink/internal/ratelimit"
	"go.uber.org/zap"
)

// ClientIP извлекает адрес клиента: X-Real-IP, затем первый адрес из
// X-Forwarded-For, затем адрес транспортного соединения. Заголовкам
// доверять нельзя, но для лимита хватает best-effort ключа.
func ClientIP(r *http.Request) string {
	if ip := normalizeIP(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if ip := normalizeIP(first); ip != "" {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return normalizeIP(r.RemoteAddr)
	}
	return normalizeIP(host)
}

// normalizeIP приводит loopback-литералы к одному виду и убирает
// IPv4-mapped-IPv6 префикс, чтобы ::ffff:1.2.3.4 и 1.2.3.4 считались одним клиентом.
func normalizeIP(raw string) string {
	ip := strings.TrimSpace(raw)
	if ip == "" {
		return ""
	}
	if ip == "::1" {
		return "127.0.0.1"
	}
	return strings.TrimPrefix(ip, "::ffff:")
}

// RateLimitMiddleware ограничивает создание ссылок по адресу клиента.
// Недоступность счётчика пропускает запрос: доступность пути создания
// важнее защиты от злоупотреблений.
func RateLimitMiddleware(limiter *ratelimit.Limiter, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := ClientIP(r)
			if ip == "" {
				logger.Warn("Не удалось определить адрес клиента, лимит пропущен")
				next.ServeHTTP(w, r)
				return
			}

			decision := limiter.Allow(r.Context(), ip)
			if decision.State == ratelimit.Denied {
				seconds := int(decision.RetryAfter.Seconds())
				if seconds > 0 {
					w.Header().Set("Retry-After", strconv.Itoa(seconds))
				}
				http.Error(w, "Rate limit exceeded. Please try again later.", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
