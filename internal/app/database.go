// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/guttosm/cargo-pack-service/config"
	"github.com/guttosm/cargo-pack-service/internal/circuitbreaker"
	"github.com/guttosm/cargo-pack-service/internal/repository"
	"github.com/guttosm/cargo-pack-service/internal/service"
	"github.com/rs/zerolog/log"
)

// DatabaseComponents holds the run history stack.
type DatabaseComponents struct {
	DB             *repository.MongoDB
	History        service.RunHistory
	Recorder       *service.AsyncRunRecorder
	CircuitBreaker *circuitbreaker.CircuitBreaker
}

// InitializeDatabase connects to MongoDB and builds the run history stack.
// Returns nil if the database is disabled or the connection fails; the
// service then runs without history.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without run history")
		return nil
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.SetRunsTTL(ctx, cfg.RunsTTL); err != nil {
		log.Warn().Err(err).Msg("Failed to set runs TTL index")
	}

	cb := newRunsCircuitBreaker(cfg)
	repo := repository.NewRunsRepositoryWithCircuitBreaker(repository.NewRunsRepository(db), cb)
	history := service.NewRunHistoryService(repo)

	return &DatabaseComponents{
		DB:             db,
		History:        history,
		Recorder:       service.NewAsyncRunRecorder(history, service.DefaultRecorderConfig()),
		CircuitBreaker: cb,
	}
}

func newRunsCircuitBreaker(cfg config.DatabaseConfig) *circuitbreaker.CircuitBreaker {
	return circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-runs",
	})
}

// Close drains the recorder and disconnects. Safe on a nil receiver.
func (d *DatabaseComponents) Close(ctx context.Context) {
	if d == nil {
		return
	}
	if d.Recorder != nil {
		d.Recorder.Stop()
		stats := d.Recorder.Stats()
		log.Info().
			Int64("written", stats.Written).
			Int64("dropped", stats.Dropped).
			Int64("errors", stats.Errors).
			Msg("Run recorder stopped")
	}
	if err := d.DB.Close(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to disconnect from MongoDB")
	}
}
