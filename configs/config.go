package configs

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	GinMode string

	JWTSecret string
	JWTTTL    time.Duration

	// UpstreamURL empty means mock mode: every data source is served from
	// the built-in seed dataset instead of the platform API.
	UpstreamURL   string
	UpstreamToken string
	MockDelay     time.Duration

	CORSOrigins []string
}

func LoadConfig() *Config {
	// .env is a dev convenience; env vars win either way
	_ = godotenv.Load()

	return &Config{
		Port:          getEnv("PORT", "8000"),
		GinMode:       getEnv("GIN_MODE", "debug"),
		JWTSecret:     getEnv("JWT_SECRET", "changeme"),
		JWTTTL:        getDuration("JWT_TTL", 24*time.Hour),
		UpstreamURL:   os.Getenv("UPSTREAM_API_URL"),
		UpstreamToken: os.Getenv("UPSTREAM_TOKEN"),
		MockDelay:     getDuration("MOCK_DELAY", 0),
		CORSOrigins:   getList("CORS_ORIGINS", []string{"*"}),
	}
}

func (c *Config) MockMode() bool {
	return c.UpstreamURL == ""
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func getList(key string, fallback []string) []string {
	v, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
