package ratelimiter

import (
	"context"
	"time"
)

// Store keeps bucket state.
type Store interface {
	// ConsumeTokens refills the bucket for key and takes tokens from it if
	// enough are available. remaining is what is left, or the shortfall as a
	// negative number when the bucket held too few.
	ConsumeTokens(ctx context.Context, key string, tokens int, cfg Config) (remaining int, resetAt time.Time, err error)
	Reset(ctx context.Context, key string) error
}

// refill adds the tokens earned since last and advances last by whole
// intervals.
func refill(current int, last, now time.Time, cfg Config) (int, time.Time) {
	intervals := int(min(int64(now.Sub(last)/cfg.RefillInterval), int64(cfg.Capacity/cfg.RefillRate+1)))
	if intervals > 0 {
		current = min(current+intervals*cfg.RefillRate, cfg.Capacity)
		last = last.Add(time.Duration(intervals) * cfg.RefillInterval)
	}
	return current, last
}
