package service

import (
	"testing"
	"time"

	"github.com/Totarae/ShortLink/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestEvaluateLink(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Second)
	future := now.Add(time.Hour)

	tests := []struct {
		name  string
		entry *model.CacheEntry
		want  Outcome
	}{
		{
			name:  "absent record",
			entry: nil,
			want:  OutcomeNotFound,
		},
		{
			name:  "active without expiry",
			entry: &model.CacheEntry{TargetURL: "https://example.com", IsActive: true},
			want:  OutcomeUsable,
		},
		{
			name:  "active with future expiry",
			entry: &model.CacheEntry{TargetURL: "https://example.com", ExpiresAt: &future, IsActive: true},
			want:  OutcomeUsable,
		},
		{
			// Просроченная, но всё ещё активная — expired, не usable
			name:  "expired takes precedence over active flag",
			entry: &model.CacheEntry{TargetURL: "https://example.com", ExpiresAt: &past, IsActive: true},
			want:  OutcomeExpired,
		},
		{
			name:  "expired and inactive reports expired",
			entry: &model.CacheEntry{TargetURL: "https://example.com", ExpiresAt: &past, IsActive: false},
			want:  OutcomeExpired,
		},
		{
			name:  "inactive without expiry",
			entry: &model.CacheEntry{TargetURL: "https://example.com", IsActive: false},
			want:  OutcomeInactive,
		},
		{
			name:  "expiry exactly now counts as expired",
			entry: &model.CacheEntry{TargetURL: "https://example.com", ExpiresAt: &now, IsActive: true},
			want:  OutcomeExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EvaluateLink(tt.entry, now))
		})
	}
}
