// internal/infrastructure/config/config.go
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Offset table sources
const (
	OffsetSourceBuiltin  = "builtin"
	OffsetSourcePostgres = "postgres"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion       string
	MetricsNamespace string

	// Server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// Overlay
	Enabled               bool
	DebugLogging          bool
	TargetLabel           string
	RenderEquivalentLabel bool
	EquivalentMarker      string

	// Offset table
	OffsetSource string
	SeedOffsets  bool
	PostgresURI  string

	// MongoDB, optional audit trail
	MongoURI      string
	MongoDB       string
	MongoUser     string
	MongoPassword string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		AppVersion:       getEnv("APP_VERSION", "1.0.0"),
		MetricsNamespace: getEnv("METRICS_NAMESPACE", "flight_time_overlay"),
		Port:             getEnv("PORT", "8080"),
		ReadTimeout:      time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout:     time.Duration(getEnvAsInt("WRITE_TIMEOUT", 30)) * time.Second,

		Enabled:               getEnvAsBool("OVERLAY_ENABLED", true),
		DebugLogging:          getEnvAsBool("DEBUG_LOGGING", false),
		TargetLabel:           getEnv("TARGET_LABEL", "JST"),
		RenderEquivalentLabel: getEnvAsBool("RENDER_EQUIVALENT_LABEL", false),
		EquivalentMarker:      getEnv("EQUIVALENT_MARKER", "="),

		OffsetSource: strings.ToLower(getEnv("OFFSET_SOURCE", OffsetSourceBuiltin)),
		SeedOffsets:  getEnvAsBool("SEED_OFFSETS", false),
		PostgresURI:  getEnv("POSTGRES_URI", ""),

		MongoURI:      getEnv("MONGODB_DSN", ""),
		MongoDB:       getEnv("MONGO_DB", "flight_overlay"),
		MongoUser:     getEnv("MONGO_USER", ""),
		MongoPassword: getEnv("MONGO_PASSWORD", ""),
	}

	return config, nil
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}
