package services

import (
	"context"
	"fmt"
	"salesledger_server/structs"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/redis/go-redis/v9"
)

// CacheService holds the Redis connection used for rate-limit
// counters. Catalog prices are deliberately never cached: every sale
// write re-reads the current unit price.
type CacheService struct {
	logger *gecho.Logger
	client *redis.Client
}

func NewCacheService(logger *gecho.Logger, cfg *structs.Config) *CacheService {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Cache.Address,
		Username: cfg.Cache.Username,
		Password: cfg.Cache.Password,
		DB:       cfg.Cache.DB,

		PoolSize:     cfg.Cache.PoolSize,
		MinIdleConns: cfg.Cache.MinIdleConns,

		DialTimeout:  cfg.Cache.DialTimeout,
		ReadTimeout:  cfg.Cache.ReadTimeout,
		WriteTimeout: cfg.Cache.WriteTimeout,
	})

	return &CacheService{
		logger: logger,
		client: client,
	}
}

// IncrementRateLimit atomically increments a rate limit counter and
// starts its expiry window on the first hit.
func (cs *CacheService) IncrementRateLimit(ctx context.Context, ip, endpoint string, ttl time.Duration) (int, error) {
	key := fmt.Sprintf("ratelimit:%s:%s", ip, endpoint)

	val, err := cs.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}

	if val == 1 {
		if err := cs.client.Expire(ctx, key, ttl).Err(); err != nil {
			return int(val), err
		}
	}

	return int(val), nil
}

// Ping tests the Redis connection
func (cs *CacheService) Ping(ctx context.Context) error {
	return cs.client.Ping(ctx).Err()
}

// Close closes the Redis connection pool.
func (cs *CacheService) Close() error {
	return cs.client.Close()
}
