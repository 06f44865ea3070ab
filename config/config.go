// Package config loads the cargo pack service configuration from the environment.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the complete application configuration.
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	Cache     CacheConfig
	Optimizer OptimizerConfig
	Advisor   AdvisorConfig
	Catalog   CatalogConfig
	Database  DatabaseConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port         string
	CORSOrigins  []string
	SwaggerUser  string
	SwaggerPass  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// LogConfig holds logger configuration.
type LogConfig struct {
	Level  string
	Pretty bool
}

// CacheConfig holds result cache configuration.
type CacheConfig struct {
	Size   int
	TTL    time.Duration
	Shards int
}

// OptimizerConfig holds the packing defaults applied when a request leaves a
// parameter unset.
type OptimizerConfig struct {
	DefaultAlgorithm   string
	GridStep           int
	Generations        int
	PopulationSize     int
	MutationRate       float64
	EliteCount         int
	CompareGenerations int
	MaxInstances       int
	CompareTimeout     time.Duration
}

// AdvisorConfig holds the algorithm advisory client configuration.
type AdvisorConfig struct {
	Enabled       bool
	URL           string
	Timeout       time.Duration
	MinConfidence float64
}

// CatalogConfig points at an optional YAML container catalogue.
type CatalogConfig struct {
	Path string
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	RunsTTL      time.Duration
	Enabled      bool
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			CORSOrigins:  parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser:  getEnv("SWAGGER_USER", ""),
			SwaggerPass:  getEnv("SWAGGER_PASS", ""),
			ReadTimeout:  getEnvDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvDuration("SERVER_WRITE_TIMEOUT", 5*time.Minute),
		},
		Log: LogConfig{
			Level:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
			Pretty: getEnvBool("LOG_PRETTY", false),
		},
		Cache: CacheConfig{
			Size:   getEnvInt("CACHE_SIZE", 500),
			TTL:    getEnvDuration("CACHE_TTL", 10*time.Minute),
			Shards: getEnvInt("CACHE_SHARDS", 16),
		},
		Optimizer: OptimizerConfig{
			DefaultAlgorithm:   strings.ToLower(getEnv("DEFAULT_ALGORITHM", "genetic")),
			GridStep:           getEnvInt("GRID_STEP", 50),
			Generations:        getEnvInt("GENETIC_GENERATIONS", 50),
			PopulationSize:     getEnvInt("GENETIC_POPULATION", 20),
			MutationRate:       getEnvFloat("GENETIC_MUTATION_RATE", 0.15),
			EliteCount:         getEnvInt("GENETIC_ELITE_COUNT", 2),
			CompareGenerations: getEnvInt("COMPARE_GENERATIONS", 30),
			MaxInstances:       getEnvInt("MAX_INSTANCES", 2000),
			CompareTimeout:     getEnvDuration("COMPARE_TIMEOUT", time.Minute),
		},
		Advisor: AdvisorConfig{
			Enabled:       getEnvBool("ADVISOR_ENABLED", false),
			URL:           strings.TrimRight(getEnv("ADVISOR_URL", "http://localhost:5000"), "/"),
			Timeout:       getEnvDuration("ADVISOR_TIMEOUT", 2*time.Second),
			MinConfidence: getEnvFloat("ADVISOR_MIN_CONFIDENCE", 0.6),
		},
		Catalog: CatalogConfig{
			Path: getEnv("CONTAINER_CATALOG_PATH", ""),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "cargo_pack_service"),
			RunsTTL:                        getEnvDuration("RUNS_TTL", 30*24*time.Hour),
			Enabled:                        getEnvBool("MONGODB_ENABLED", false),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i > 0 {
			return i
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			return f
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
