// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Server      ServerConfig
	Redis       RedisConfig
	Session     SessionConfig
	Catalog     CatalogConfig
	Cart        CartConfig
	Frontend    FrontendConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	ReadTimeout  int
	WriteTimeout int
	IdleTimeout  int
}

type RedisConfig struct {
	Host        string
	Port        string
	Password    string
	DB          int
	SnapshotTTL int // in hours; 0 keeps snapshots forever
}

type SessionConfig struct {
	SecretKey string
	TTLHours  int
}

type CatalogConfig struct {
	Seed      int64
	Size      int
	LatencyMs int // simulated mock-service latency; 0 disables it
}

type CartConfig struct {
	// MaxQuantity caps a single line's quantity when > 0. The default of 0
	// matches the storefront, which declares a ceiling but never enforces it.
	MaxQuantity int
}

type FrontendConfig struct {
	AllowedOrigins []string
}

func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			ReadTimeout:  getEnvAsInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("SERVER_WRITE_TIMEOUT", 15),
			IdleTimeout:  getEnvAsInt("SERVER_IDLE_TIMEOUT", 60),
		},
		Redis: RedisConfig{
			Host:        getEnv("REDIS_HOST", "localhost"),
			Port:        getEnv("REDIS_PORT", "6379"),
			Password:    getEnv("REDIS_PASSWORD", ""),
			DB:          getEnvAsInt("REDIS_DB", 0),
			SnapshotTTL: getEnvAsInt("REDIS_SNAPSHOT_TTL", 0),
		},
		Session: SessionConfig{
			SecretKey: getEnv("SESSION_SECRET", "your-secret-key-change-in-production"),
			TTLHours:  getEnvAsInt("SESSION_TTL", 720), // 30 days
		},
		Catalog: CatalogConfig{
			Seed:      int64(getEnvAsInt("CATALOG_SEED", 42)),
			Size:      getEnvAsInt("CATALOG_SIZE", 100),
			LatencyMs: getEnvAsInt("CATALOG_LATENCY_MS", 0),
		},
		Cart: CartConfig{
			MaxQuantity: getEnvAsInt("CART_MAX_QUANTITY", 0),
		},
		Frontend: FrontendConfig{
			AllowedOrigins: getEnvAsSlice("FRONTEND_ORIGINS", []string{"http://localhost:3000"}),
		},
	}

	return config, config.Validate()
}

func (c *Config) Validate() error {
	if c.Session.SecretKey == "your-secret-key-change-in-production" && c.Environment == "production" {
		return fmt.Errorf("session secret key must be changed in production")
	}

	if c.Catalog.Size < 1 {
		return fmt.Errorf("catalog size must be at least 1")
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(strings.ToLower(value)); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return defaultValue
}
