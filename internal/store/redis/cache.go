// Package redis caches rendered query responses with a short TTL so
// repeated tool calls for the same window don't hammer the upstream.
// All access goes through a circuit breaker: when Redis is down the
// cache degrades to a no-op and requests fall through to the fetch
// path.
package redis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	goredis "github.com/go-redis/redis/v8"
)

// Config configures the response cache.
type Config struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// Cache is a TTL'd response cache. The zero value is not usable; use New.
type Cache struct {
	client *goredis.Client
	ttl    time.Duration
	cb     *CircuitBreaker
	log    *slog.Logger
}

// ErrMiss is returned by Get when the key is absent or Redis is
// unavailable — both mean "recompute".
var ErrMiss = goredis.Nil

// New connects to Redis and verifies the connection with a ping.
func New(cfg Config, log *slog.Logger) (*Cache, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	cb := NewCircuitBreaker(5, 10*time.Second)
	cb.OnStateChange = func(from, to State) {
		log.Warn("response cache circuit state change",
			slog.String("from", from.String()), slog.String("to", to.String()))
	}

	return &Cache{client: client, ttl: cfg.TTL, cb: cb, log: log}, nil
}

// Get returns the cached payload for key, or ErrMiss.
func (c *Cache) Get(ctx context.Context, key string) (string, error) {
	var val string
	err := c.cb.Execute(func() error {
		v, err := c.client.Get(ctx, key).Result()
		if err == goredis.Nil {
			return nil // absent key is not a Redis failure
		}
		val = v
		return err
	})
	if err != nil {
		return "", ErrMiss
	}
	if val == "" {
		return "", ErrMiss
	}
	return val, nil
}

// Set stores the payload under key for the configured TTL. Failures are
// logged, not returned — a cache write must never fail a request.
func (c *Cache) Set(ctx context.Context, key, payload string) {
	err := c.cb.Execute(func() error {
		return c.client.Set(ctx, key, payload, c.ttl).Err()
	})
	if err != nil && err != ErrCircuitOpen {
		c.log.Warn("response cache set failed", slog.String("key", key), slog.Any("err", err))
	}
}

// Close releases the underlying client.
func (c *Cache) Close() error { return c.client.Close() }
