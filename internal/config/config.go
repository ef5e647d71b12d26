package config

import (
	"os"
	"strconv"

	"github.com/labstack/gommon/log"
)

// Config holds all runtime configuration. Each field maps to one
// environment variable; required variables are enforced by must() so a
// misconfigured deployment fails at startup rather than at first request.
type Config struct {
	Env            string // application environment (dev/prod)
	Port           string // HTTP port to listen on
	DBUser         string // database username
	DBPass         string // database password (optional)
	DBHost         string // database host
	DBPort         string // database port
	DBName         string // database name
	JWTSecret      string // secret used to sign access tokens
	AccessTTLMin   int    // access token lifetime in minutes
	RefreshTTLDays int    // refresh token lifetime in days
	BcryptCost     int    // bcrypt cost for password hashing
	AMQPURL        string // RabbitMQ URL (empty disables the event queue)
}

// Load reads configuration from the environment.
func Load() Config {
	return Config{
		Env:            getenv("APP_ENV", "dev"),
		Port:           getenv("APP_PORT", "3000"),
		DBUser:         must("DB_USER"),
		DBPass:         os.Getenv("DB_PASS"),
		DBHost:         must("DB_HOST"),
		DBPort:         getenv("DB_PORT", "3306"),
		DBName:         must("DB_NAME"),
		JWTSecret:      must("JWT_SECRET"),
		AccessTTLMin:   getenvInt("ACCESS_TOKEN_TTL_MIN", 15),
		RefreshTTLDays: getenvInt("REFRESH_TOKEN_TTL_DAYS", 30),
		BcryptCost:     getenvInt("BCRYPT_COST", 10),
		AMQPURL:        os.Getenv("RABBITMQ_URL"),
	}
}

// must retrieves a required environment variable or exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, v)
	}
	return n
}
