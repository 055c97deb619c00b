package service

import (
	"fmt"
	"time"

	"github.com/Totarae/ShortLink/internal/model"
)

// ExampleEvaluateLink демонстрирует порядок проверки пригодности ссылки.
func ExampleEvaluateLink() {
	now := time.Now()
	past := now.Add(-time.Hour)

	usable := &model.CacheEntry{TargetURL: "https://example.com", IsActive: true}
	expiredButActive := &model.CacheEntry{TargetURL: "https://example.com", ExpiresAt: &past, IsActive: true}
	inactive := &model.CacheEntry{TargetURL: "https://example.com", IsActive: false}

	fmt.Println(EvaluateLink(usable, now))
	fmt.Println(EvaluateLink(expiredButActive, now))
	fmt.Println(EvaluateLink(inactive, now))
	fmt.Println(EvaluateLink(nil, now))

	// Output:
	// usable
	// expired
	// inactive
	// not_found
}
