package model

import "time"

// CreateLinkRequest представляет тело запроса на создание ссылки.
type CreateLinkRequest struct {
	TargetURL     string     `json:"target_url"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
	IsActive      *bool      `json:"is_active,omitempty"`
	CreatedIPHash *string    `json:"created_ip_hash,omitempty"`
}

// UpdateLinkRequest представляет тело запроса на частичное обновление ссылки.
type UpdateLinkRequest struct {
	TargetURL *string    `json:"target_url,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	IsActive  *bool      `json:"is_active,omitempty"`
}

// LinkResponse представляет структуру ответа с записью ссылки.
type LinkResponse struct {
	ID        string     `json:"id"`
	Slug      string     `json:"slug"`
	ShortURL  string     `json:"short_url"`
	TargetURL string     `json:"target_url"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt *time.Time `json:"expires_at"`
	IsActive  bool       `json:"is_active"`
}
