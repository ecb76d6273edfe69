package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// MatchCache is the slice of the cache layer the matching flow needs.
// Implementations must degrade to misses when the backing store is down.
type MatchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

func MatchShortlistCacheKey(applicantID uuid.UUID) string {
	return "matches:shortlist:" + applicantID.String()
}
