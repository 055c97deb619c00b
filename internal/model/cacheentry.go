package model

import "time"

// CacheEntry — компактная проекция Link для кеша.
// Ключи JSON намеренно односимвольные: записей много, payload должен быть маленьким.
// ID, Created и CreatedIPHash в кеш не попадают.
type CacheEntry struct {
	TargetURL string     `json:"u"`
	ExpiresAt *time.Time `json:"x,omitempty"`
	IsActive  bool       `json:"a"`
}
