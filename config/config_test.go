package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("loads default values", func(t *testing.T) {
		os.Clearenv()

		cfg := Load()

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.False(t, cfg.Log.Pretty)
		assert.Equal(t, 500, cfg.Cache.Size)
		assert.Equal(t, 10*time.Minute, cfg.Cache.TTL)
		assert.Equal(t, 16, cfg.Cache.Shards)
		assert.Equal(t, "genetic", cfg.Optimizer.DefaultAlgorithm)
		assert.Equal(t, 50, cfg.Optimizer.GridStep)
		assert.Equal(t, 50, cfg.Optimizer.Generations)
		assert.Equal(t, 20, cfg.Optimizer.PopulationSize)
		assert.Equal(t, 0.15, cfg.Optimizer.MutationRate)
		assert.Equal(t, 2, cfg.Optimizer.EliteCount)
		assert.Equal(t, 30, cfg.Optimizer.CompareGenerations)
		assert.Equal(t, 2000, cfg.Optimizer.MaxInstances)
		assert.Equal(t, time.Minute, cfg.Optimizer.CompareTimeout)
		assert.False(t, cfg.Advisor.Enabled)
		assert.Equal(t, 0.6, cfg.Advisor.MinConfidence)
		assert.Empty(t, cfg.Catalog.Path)
		assert.False(t, cfg.Database.Enabled)
		assert.Equal(t, 30*24*time.Hour, cfg.Database.RunsTTL)
	})

	t.Run("loads values from environment", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("PORT", "9090")
		_ = os.Setenv("LOG_LEVEL", "DEBUG")
		_ = os.Setenv("LOG_PRETTY", "true")
		_ = os.Setenv("CACHE_SIZE", "50")
		_ = os.Setenv("CACHE_TTL", "1m")
		_ = os.Setenv("DEFAULT_ALGORITHM", "Extreme-Points")
		_ = os.Setenv("GENETIC_GENERATIONS", "80")
		_ = os.Setenv("GENETIC_MUTATION_RATE", "0.3")
		_ = os.Setenv("ADVISOR_ENABLED", "true")
		_ = os.Setenv("ADVISOR_URL", "http://advisor:5000/")
		_ = os.Setenv("ADVISOR_TIMEOUT", "500ms")
		_ = os.Setenv("CONTAINER_CATALOG_PATH", "/etc/cargo/containers.yaml")
		_ = os.Setenv("RUNS_TTL", "24h")
		_ = os.Setenv("COMPARE_TIMEOUT", "90s")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.True(t, cfg.Log.Pretty)
		assert.Equal(t, 50, cfg.Cache.Size)
		assert.Equal(t, time.Minute, cfg.Cache.TTL)
		assert.Equal(t, "extreme-points", cfg.Optimizer.DefaultAlgorithm)
		assert.Equal(t, 80, cfg.Optimizer.Generations)
		assert.Equal(t, 0.3, cfg.Optimizer.MutationRate)
		assert.True(t, cfg.Advisor.Enabled)
		assert.Equal(t, "http://advisor:5000", cfg.Advisor.URL)
		assert.Equal(t, 500*time.Millisecond, cfg.Advisor.Timeout)
		assert.Equal(t, "/etc/cargo/containers.yaml", cfg.Catalog.Path)
		assert.Equal(t, 24*time.Hour, cfg.Database.RunsTTL)
		assert.Equal(t, 90*time.Second, cfg.Optimizer.CompareTimeout)
	})

	t.Run("handles invalid values gracefully", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("GRID_STEP", "invalid")
		_ = os.Setenv("GENETIC_POPULATION", "-4")
		_ = os.Setenv("GENETIC_MUTATION_RATE", "-0.5")
		_ = os.Setenv("ADVISOR_ENABLED", "maybe")
		_ = os.Setenv("CACHE_TTL", "invalid")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, 50, cfg.Optimizer.GridStep)
		assert.Equal(t, 20, cfg.Optimizer.PopulationSize)
		assert.Equal(t, 0.15, cfg.Optimizer.MutationRate)
		assert.False(t, cfg.Advisor.Enabled)
		assert.Equal(t, 10*time.Minute, cfg.Cache.TTL)
	})

	t.Run("appends CORS origins to the local defaults", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("CORS_ORIGINS", " https://cargo.example.com , ,https://ops.example.com")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
			"https://cargo.example.com",
			"https://ops.example.com",
		}, cfg.Server.CORSOrigins)
	})
}
