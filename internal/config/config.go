package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr               string
	DBDriver           string
	DBDSN              string
	SQLitePath         string
	SQLiteFallbackPath string
	AllowedOrigins     []string
	SeedSampleData     bool
}

func Load() Config {
	_ = godotenv.Load()

	return Config{
		Addr:               getenv("ADDR", ":3001"),
		DBDriver:           getenv("DB_DRIVER", "sqlite"),
		DBDSN:              getenv("DB_DSN", ""),
		SQLitePath:         getenv("SQLITE_PATH", "assets.db"),
		SQLiteFallbackPath: getenv("SQLITE_FALLBACK_PATH", filepath.Join(os.TempDir(), "assets.db")),
		AllowedOrigins:     splitList(getenv("ALLOWED_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000")),
		SeedSampleData:     getenvBool("SEED_SAMPLE_DATA", true),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
