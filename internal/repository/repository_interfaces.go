package repository

import (
	"context"

	"github.com/guttosm/cargo-pack-service/internal/domain/model"
)

// RunsRepositoryInterface defines the run history operations.
type RunsRepositoryInterface interface {
	Create(ctx context.Context, run *model.RunRecord) error
	CreateMany(ctx context.Context, runs []*model.RunRecord) error
	Query(ctx context.Context, opts model.RunQueryOptions) ([]*model.RunRecord, error)
	Count(ctx context.Context, opts model.RunQueryOptions) (int64, error)
	Summary(ctx context.Context, opts model.RunQueryOptions) ([]model.AlgorithmUsage, error)
}
