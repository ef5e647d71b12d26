package config

import (
	"time"
)

// CacheConfig controls the Redis response cache applied to public kost
// reads. When Enabled is false or no Redis client exists the middleware is
// a no-op. TTL bounds staleness of the unauthenticated listing endpoints.
type CacheConfig struct {
	Enabled      bool
	TTL          time.Duration
	Prefix       string
	MaxBodyBytes int
}

// LoadCacheConfig reads cache settings from the environment with defaults
// suited to the small payloads this API serves.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled:      getenv("CACHE_ENABLED", "true") == "true",
		TTL:          getenvDur("CACHE_TTL", 30*time.Second),
		Prefix:       getenv("CACHE_PREFIX", "cache"),
		MaxBodyBytes: getenvInt("CACHE_MAX_BODY_BYTES", 1<<20),
	}
}

func getenvDur(key string, def time.Duration) time.Duration {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
