package usecase

import (
	"context"
	"time"
)

// RankingCache is the slice of the cache layer the ranking usecase needs.
type RankingCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	InvalidateRankingsForCV(ctx context.Context, cvID string) error
}
