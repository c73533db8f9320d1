package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration loaded from environment
// variables.
type Config struct {
	// HTTP
	ListenAddr  string
	MetricsAddr string

	// Upstream
	EastmoneyKlineURL  string // empty uses the production endpoint
	EastmoneySearchURL string
	EastmoneyUserAgent string // empty uses the client default
	FetchTimeout       time.Duration

	// Real-time quotes (empty cookie disables; the quote endpoint
	// requires a session cookie)
	XueqiuQuoteURL string
	XueqiuCookie   string

	// Local bar store (empty disables)
	SQLitePath string

	// Response cache (empty addr disables)
	RedisAddr        string
	RedisPassword    string
	ResponseCacheTTL time.Duration

	// Websocket stream poll interval
	StreamInterval time.Duration
}

// Load reads configuration from environment variables with sensible
// defaults. Nothing is mandatory: every upstream this service talks to
// is public and unauthenticated.
func Load() *Config {
	return &Config{
		ListenAddr:  getEnv("LISTEN_ADDR", ":8080"),
		MetricsAddr: getEnv("METRICS_ADDR", ":9090"),

		EastmoneyKlineURL:  getEnv("EASTMONEY_KLINE_URL", ""),
		EastmoneySearchURL: getEnv("EASTMONEY_SEARCH_URL", ""),
		EastmoneyUserAgent: getEnv("EASTMONEY_USER_AGENT", ""),
		FetchTimeout:       getEnvSeconds("FETCH_TIMEOUT_S", 20),

		XueqiuQuoteURL: getEnv("XUEQIU_QUOTE_URL", ""),
		XueqiuCookie:   getEnv("XUEQIU_COOKIE", ""),

		SQLitePath: getEnv("SQLITE_PATH", "data/klines.db"),

		RedisAddr:        getEnv("REDIS_ADDR", ""),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		ResponseCacheTTL: getEnvSeconds("RESPONSE_CACHE_TTL_S", 300),

		StreamInterval: getEnvSeconds("STREAM_INTERVAL_S", 15),
	}
}

func getEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func getEnvSeconds(key string, fallback int) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return time.Duration(fallback) * time.Second
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return time.Duration(fallback) * time.Second
	}
	return time.Duration(n) * time.Second
}
