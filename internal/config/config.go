package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL   string
	ServerPort   string
	DBUrl        string
	RedisURL     string
	Timezone     string
	SessionTTL   time.Duration
	CookieName   string
	CookieSecure bool

	OTelEnabled  bool
	OTelEndpoint string
	OTelSample   float64
}

func Load() *Config {
	// .env é opcional
	_ = godotenv.Load()

	return &Config{
		APIBaseURL:   strings.TrimRight(getEnv("SALON_API_URL", "http://localhost:3000"), "/"),
		ServerPort:   getEnv("SERVER_PORT", "8080"),
		DBUrl:        getEnv("DATABASE_URL", ""),
		RedisURL:     getEnv("REDIS_URL", ""),
		Timezone:     getEnv("SALON_TIMEZONE", "America/Sao_Paulo"),
		SessionTTL:   getDuration("SESSION_TTL", 12*time.Hour),
		CookieName:   getEnv("SESSION_COOKIE", "salon_session"),
		CookieSecure: getBool("SESSION_COOKIE_SECURE", false),

		OTelEnabled:  getBool("OTEL_ENABLED", false),
		OTelEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
		OTelSample:   getFloat("OTEL_SAMPLING_RATIO", 1),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		// aceita segundos sem sufixo
		if secs, convErr := strconv.Atoi(v); convErr == nil {
			return time.Duration(secs) * time.Second
		}
		return def
	}
	return d
}

func getBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func getFloat(key string, def float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 || f > 1 {
		return def
	}
	return f
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) AuditEnabled() bool {
	return c.DBUrl != ""
}
