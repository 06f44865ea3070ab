// Package app provides service initialization.
package app

import (
	"fmt"

	"github.com/guttosm/cargo-pack-service/config"
	"github.com/guttosm/cargo-pack-service/internal/advisor"
	"github.com/guttosm/cargo-pack-service/internal/service"
	"github.com/rs/zerolog/log"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Optimizer *service.OptimizerService
	// Advisor is nil when the advisory service is disabled.
	Advisor *advisor.Client
}

// InitializeServices builds the optimizer from configuration. Run history is
// recorded when db is non-nil. A catalogue path that cannot be loaded is an
// error; the service must not start with a catalogue other than the one
// configured.
func InitializeServices(cfg config.Config, db *DatabaseComponents) (*ServiceComponents, error) {
	opts := []service.Option{
		service.WithDefaults(optimizerDefaults(cfg.Optimizer)),
	}

	if cfg.Cache.Size > 0 {
		opts = append(opts, service.WithCache(cfg.Cache.Size, cfg.Cache.TTL, cfg.Cache.Shards))
	}

	if cfg.Catalog.Path != "" {
		catalog, err := service.LoadCatalog(cfg.Catalog.Path)
		if err != nil {
			return nil, fmt.Errorf("load container catalogue %q: %w", cfg.Catalog.Path, err)
		}
		log.Info().Str("path", cfg.Catalog.Path).Int("presets", len(catalog.List())).Msg("Loaded container catalogue")
		opts = append(opts, service.WithCatalog(catalog))
	}

	var advisorClient *advisor.Client
	if cfg.Advisor.Enabled {
		advisorClient = advisor.New(cfg.Advisor.URL, cfg.Advisor.Timeout)
		opts = append(opts, service.WithAdvisor(advisorClient, cfg.Advisor.MinConfidence))
		log.Info().Str("url", cfg.Advisor.URL).Msg("Algorithm advisor enabled")
	}

	if db != nil && db.Recorder != nil {
		opts = append(opts, service.WithRunRecorder(db.Recorder))
	}

	return &ServiceComponents{
		Optimizer: service.NewOptimizerService(opts...),
		Advisor:   advisorClient,
	}, nil
}

func optimizerDefaults(cfg config.OptimizerConfig) service.Defaults {
	return service.Defaults{
		Algorithm:          cfg.DefaultAlgorithm,
		GridStep:           cfg.GridStep,
		Generations:        cfg.Generations,
		PopulationSize:     cfg.PopulationSize,
		MutationRate:       cfg.MutationRate,
		EliteCount:         cfg.EliteCount,
		CompareGenerations: cfg.CompareGenerations,
		MaxInstances:       cfg.MaxInstances,
	}
}
