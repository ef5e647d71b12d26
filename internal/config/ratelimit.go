package config

import "time"

// RateLimitConfig tunes the Redis token-bucket limiter applied to the
// whole API. Capacity is the burst size; RefillTokens are added every
// RefillInterval. TTL controls how long idle buckets live in Redis.
type RateLimitConfig struct {
	Enabled        bool
	Capacity       int
	RefillTokens   int
	RefillInterval time.Duration
	TTL            time.Duration
	Prefix         string
}

// LoadRateLimitConfig reads limiter settings from the environment and
// clamps them to sane minimums.
func LoadRateLimitConfig() RateLimitConfig {
	cfg := RateLimitConfig{
		Enabled:        getenv("RATE_LIMIT_ENABLED", "true") == "true",
		Capacity:       getenvInt("RATE_LIMIT_CAPACITY", 60),
		RefillTokens:   getenvInt("RATE_LIMIT_REFILL_TOKENS", 1),
		RefillInterval: getenvDur("RATE_LIMIT_REFILL_INTERVAL", time.Second),
		TTL:            getenvDur("RATE_LIMIT_TTL", 10*time.Minute),
		Prefix:         getenv("RATE_LIMIT_PREFIX", "rl"),
	}
	if cfg.Capacity < 1 {
		cfg.Capacity = 1
	}
	if cfg.RefillTokens < 1 {
		cfg.RefillTokens = 1
	}
	if cfg.RefillInterval <= 0 {
		cfg.RefillInterval = time.Second
	}
	if min := 5 * cfg.RefillInterval; cfg.TTL < min {
		cfg.TTL = min
	}
	return cfg
}
