// Package pagination provides a reusable offset-based pagination framework:
// query-parameter parsing, offset/total-page calculation and response
// metadata shared by all paginated endpoints.
package pagination

import (
	"os"
	"strconv"
)

// Config holds pagination configuration settings.
type Config struct {
	DefaultPage  int // Default page number (typically 1)
	DefaultLimit int // Default items per page (typically 20)
	MaxLimit     int // Maximum allowed items per page (typically 100)
}

// DefaultConfig returns the default pagination configuration:
// page=1, limit=20, max=100.
func DefaultConfig() Config {
	return Config{
		DefaultPage:  1,
		DefaultLimit: 20,
		MaxLimit:     100,
	}
}

// LoadFromEnv loads pagination config from environment variables
// (PAGINATION_DEFAULT_PAGE, PAGINATION_DEFAULT_LIMIT, PAGINATION_MAX_LIMIT),
// falling back to DefaultConfig values for anything unset or unparseable.
func LoadFromEnv() Config {
	def := DefaultConfig()
	return Config{
		DefaultPage:  getEnvAsInt("PAGINATION_DEFAULT_PAGE", def.DefaultPage),
		DefaultLimit: getEnvAsInt("PAGINATION_DEFAULT_LIMIT", def.DefaultLimit),
		MaxLimit:     getEnvAsInt("PAGINATION_MAX_LIMIT", def.MaxLimit),
	}
}

func getEnvAsInt(key string, defaultValue int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultValue
	}
	return val
}
