// Package util содержит проверку целевых URL и хеширование адресов клиентов.
package util

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
)

var (
	// ErrInvalidURL — строка не парсится как абсолютный URL.
	ErrInvalidURL = errors.New("invalid URL")
	// ErrBadScheme — схема не http/https.
	ErrBadScheme = errors.New("protocol must be http or https")
	// ErrBlockedHost — хост в блок-листе или указывает на приватную сеть.
	ErrBlockedHost = errors.New("target host is not allowed")
)

var defaultBlockedHosts = []string{
	"localhost",
	"127.0.0.1",
	"0.0.0.0",
	"::1",
}

var blockedSuffixes = []string{".localhost", ".local", ".internal", ".test"}

// TargetURLValidator отбраковывает URL, на которые нельзя редиректить:
// не-HTTP схемы, loopback, приватные и link-local адреса, блок-лист из конфига.
type TargetURLValidator struct {
	blocked map[string]bool
}

// NewTargetURLValidator создаёт валидатор; extra — дополнительные хосты из конфига.
func NewTargetURLValidator(extra []string) *TargetURLValidator {
	blocked := make(map[string]bool, len(defaultBlockedHosts)+len(extra))
	for _, host := range defaultBlockedHosts {
		blocked[host] = true
	}
	for _, host := range extra {
		host = strings.ToLower(strings.TrimSpace(host))
		if host != "" {
			blocked[host] = true
		}
	}
	return &TargetURLValidator{blocked: blocked}
}

// Validate проверяет целевой URL. nil означает, что по URL можно редиректить.
func (v *TargetURLValidator) Validate(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" {
		return ErrInvalidURL
	}

	scheme := strings.ToLower(parsed.Scheme)
	if scheme != "http" && scheme != "https" {
		return ErrBadScheme
	}

	host := strings.ToLower(parsed.Hostname())
	if v.blocked[host] {
		return ErrBlockedHost
	}
	for _, suffix := range blockedSuffixes {
		if strings.HasSuffix(host, suffix) {
			return ErrBlockedHost
		}
	}

	if ip := net.ParseIP(host); ip != nil && isPrivateAddress(ip) {
		return fmt.Errorf("%w: private address %s", ErrBlockedHost, host)
	}

	return nil
}

func isPrivateAddress(ip net.IP) bool {
	if ip.IsLoopback() || ip.IsPrivate() || ip.IsLinkLocalUnicast() || ip.IsUnspecified() {
		return true
	}
	if ip4 := ip.To4(); ip4 != nil {
		// 0.0.0.0/8 целиком
		return ip4[0] == 0
	}
	// fec0::/10 — устаревший site-local, IsPrivate его не знает
	return len(ip) == net.IPv6len && ip[0] == 0xfe && ip[1]&0xc0 == 0xc0
}

// HashIP возвращает sha256-хеш адреса клиента в hex.
// В БД хранится только хеш, сам адрес не сохраняется.
func HashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip))
	return hex.EncodeToString(sum[:])
}
