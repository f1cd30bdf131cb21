package config

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient builds a Redis client from the environment.
// Recognized variables:
//
//	REDIS_ADDR     – host:port (default localhost:6379)
//	REDIS_PASSWORD – optional password
//	REDIS_DB       – database number (default 0)
//
// The server only uses Redis for rate limiting, so a failed ping
// returns nil and the caller runs without limiting instead of failing
// startup.
func NewRedisClient() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	dbNum := 0
	if s := os.Getenv("REDIS_DB"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			dbNum = n
		}
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       dbNum,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("redis unreachable at %s, rate limiting disabled: %v", addr, err)
		return nil
	}
	return client
}

// RateLimitConfig controls the fixed-window request limiter.
type RateLimitConfig struct {
	Enabled bool
	Limit   int           // requests allowed per window
	Window  time.Duration // window length
	Prefix  string        // Redis key prefix
}

// LoadRateLimitConfig reads the limiter settings with safe defaults.
func LoadRateLimitConfig() RateLimitConfig {
	cfg := RateLimitConfig{
		Enabled: true,
		Limit:   envInt("RATE_LIMIT_PER_WINDOW", 60),
		Window:  time.Minute,
		Prefix:  "rl",
	}
	if v := os.Getenv("RATE_LIMIT_ENABLED"); v == "0" || v == "false" {
		cfg.Enabled = false
	}
	if v := os.Getenv("RATE_LIMIT_WINDOW"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.Window = d
		}
	}
	if p := os.Getenv("RATE_LIMIT_PREFIX"); p != "" {
		cfg.Prefix = p
	}
	if cfg.Limit < 1 {
		cfg.Limit = 1
	}
	return cfg
}
