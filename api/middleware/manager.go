package middleware

import (
	"context"
	"salesledger_server/structs"
	"time"

	"github.com/MonkyMars/gecho"
)

// RateLimitCounter is the slice of the cache service the rate limiter
// needs.
type RateLimitCounter interface {
	IncrementRateLimit(ctx context.Context, ip, endpoint string, ttl time.Duration) (int, error)
}

type Middleware struct {
	cfg          *structs.Config
	logger       *gecho.Logger
	cacheService RateLimitCounter
}

func NewMiddleware(cfg *structs.Config, logger *gecho.Logger, cacheService RateLimitCounter) *Middleware {
	return &Middleware{
		cfg:          cfg,
		logger:       logger,
		cacheService: cacheService,
	}
}
