package model

import (
	"time"

	"github.com/google/uuid"
)

// Link представляет запись ссылки в таблице links.
type Link struct {
	tableName     struct{}   `pg:"links"`
	ID            uuid.UUID  `pg:"id,notnull,pk"`
	Slug          string     `pg:"slug,notnull,unique"`
	TargetURL     string     `pg:"target_url,notnull"`
	Created       time.Time  `pg:"created_at,default:now()"`
	ExpiresAt     *time.Time `pg:"expires_at"`
	IsActive      bool       `pg:"is_active,default:true"`
	CreatedIPHash *string    `pg:"created_ip_hash"`
}

// LinkPatch описывает частичное обновление записи.
// nil-поле означает "оставить как есть".
type LinkPatch struct {
	TargetURL *string
	ExpiresAt *time.Time
	IsActive  *bool
}
