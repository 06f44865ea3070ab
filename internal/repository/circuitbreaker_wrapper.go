package repository

import (
	"context"
	"errors"

	"github.com/guttosm/cargo-pack-service/internal/circuitbreaker"
	"github.com/guttosm/cargo-pack-service/internal/domain/model"
)

// RunsRepositoryWithCircuitBreaker guards a runs repository with a circuit
// breaker. Writes are dropped while the circuit is open; reads fail with
// circuitbreaker.ErrCircuitOpen.
type RunsRepositoryWithCircuitBreaker struct {
	repo           RunsRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewRunsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewRunsRepositoryWithCircuitBreaker(repo RunsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *RunsRepositoryWithCircuitBreaker {
	return &RunsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores one run record. Run history is best effort.
func (r *RunsRepositoryWithCircuitBreaker) Create(ctx context.Context, run *model.RunRecord) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, run)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// CreateMany stores a batch of run records. Run history is best effort.
func (r *RunsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, runs []*model.RunRecord) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, runs)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// Query retrieves run records with circuit breaker protection.
func (r *RunsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts model.RunQueryOptions) ([]*model.RunRecord, error) {
	return circuitbreaker.Do(ctx, r.circuitBreaker, func() ([]*model.RunRecord, error) {
		return r.repo.Query(ctx, opts)
	})
}

// Count returns the number of matching runs with circuit breaker protection.
func (r *RunsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts model.RunQueryOptions) (int64, error) {
	return circuitbreaker.Do(ctx, r.circuitBreaker, func() (int64, error) {
		return r.repo.Count(ctx, opts)
	})
}

// Summary aggregates runs per algorithm with circuit breaker protection.
func (r *RunsRepositoryWithCircuitBreaker) Summary(ctx context.Context, opts model.RunQueryOptions) ([]model.AlgorithmUsage, error) {
	return circuitbreaker.Do(ctx, r.circuitBreaker, func() ([]model.AlgorithmUsage, error) {
		return r.repo.Summary(ctx, opts)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *RunsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
