package service

import (
	"time"

	"github.com/Totarae/ShortLink/internal/model"
)

// Outcome — итог проверки пригодности ссылки.
type Outcome int

const (
	// OutcomeNotFound — записи не существует.
	OutcomeNotFound Outcome = iota
	// OutcomeExpired — запись существует, но срок истёк.
	OutcomeExpired
	// OutcomeInactive — запись приостановлена флагом is_active.
	OutcomeInactive
	// OutcomeUsable — по ссылке можно редиректить.
	OutcomeUsable
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNotFound:
		return "not_found"
	case OutcomeExpired:
		return "expired"
	case OutcomeInactive:
		return "inactive"
	case OutcomeUsable:
		return "usable"
	}
	return "unknown"
}

// EvaluateLink вычисляет пригодность записи на момент now.
// Чистая функция от полей записи, состояние нигде не хранится.
// Порядок проверок фиксирован: истёкшая, но активная запись — expired, не usable.
func EvaluateLink(entry *model.CacheEntry, now time.Time) Outcome {
	if entry == nil {
		return OutcomeNotFound
	}
	if entry.ExpiresAt != nil && !entry.ExpiresAt.After(now) {
		return OutcomeExpired
	}
	if !entry.IsActive {
		return OutcomeInactive
	}
	return OutcomeUsable
}
