package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"github.com/rolodex-app/rolodex/internal/apperr"
)

// RateLimitStore counts requests per key inside a fixed window. The window
// resets wholesale once its start is older than the window duration; it
// does not slide.
type RateLimitStore interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RateLimit short-circuits with 429 once a client address exceeds max
// requests within the window, before any downstream middleware runs.
// Store errors fail open so a degraded backend never blocks traffic.
func RateLimit(store RateLimitStore, max int, window time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		count, err := store.Incr(c.UserContext(), c.IP(), window)
		if err != nil {
			return c.Next()
		}
		if count > int64(max) {
			return apperr.New(http.StatusTooManyRequests, apperr.CodeRateLimitExceeded,
				"Too many requests, please try again later.")
		}
		return c.Next()
	}
}

type bucket struct {
	count       int64
	windowStart time.Time
}

// MemoryRateLimitStore is a process-local fixed-window counter. Key
// cardinality is unbounded (no eviction of stale client buckets), which is
// acceptable only for a single-process deployment.
type MemoryRateLimitStore struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	now     func() time.Time
}

// NewMemoryRateLimitStore builds an in-process rate limit store.
func NewMemoryRateLimitStore() *MemoryRateLimitStore {
	return &MemoryRateLimitStore{
		buckets: make(map[string]*bucket),
		now:     time.Now,
	}
}

// Incr counts one request for the key, resetting the window when stale.
func (s *MemoryRateLimitStore) Incr(_ context.Context, key string, window time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	b, ok := s.buckets[key]
	if !ok {
		b = &bucket{windowStart: now}
		s.buckets[key] = b
	}
	if now.Sub(b.windowStart) > window {
		b.count = 0
		b.windowStart = now
	}
	b.count++
	return b.count, nil
}

const redisRateLimitPrefix = "rl:ip:"

// RedisRateLimitStore shares the fixed window across processes via Redis.
type RedisRateLimitStore struct {
	client *redis.Client
}

// NewRedisRateLimitStore builds a Redis-backed rate limit store.
func NewRedisRateLimitStore(client *redis.Client) *RedisRateLimitStore {
	return &RedisRateLimitStore{client: client}
}

// Incr counts one request for the key; the key expires with the window so
// a fresh window starts after expiry.
func (s *RedisRateLimitStore) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	redisKey := redisRateLimitPrefix + key
	count, err := s.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		s.client.Expire(ctx, redisKey, window)
	}
	return count, nil
}
