package service

import (
	"context"
	"time"

	"github.com/guttosm/cargo-pack-service/internal/domain/model"
	"github.com/guttosm/cargo-pack-service/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaxRunsLimit caps the page size of run history queries.
const MaxRunsLimit = 200

// RunHistory stores and reads optimization run summaries.
type RunHistory interface {
	// Record stores a single run.
	Record(ctx context.Context, run *model.RunRecord) error

	// Recent returns matching runs, newest first, and the total match count.
	Recent(ctx context.Context, opts model.RunQueryOptions) ([]*model.RunRecord, int64, error)

	// Summary aggregates successful runs per algorithm.
	Summary(ctx context.Context, opts model.RunQueryOptions) ([]model.AlgorithmUsage, error)
}

// RunHistoryService implements RunHistory on top of a runs repository.
type RunHistoryService struct {
	repo repository.RunsRepositoryInterface
}

// NewRunHistoryService creates a run history service.
func NewRunHistoryService(repo repository.RunsRepositoryInterface) *RunHistoryService {
	return &RunHistoryService{repo: repo}
}

// Record assigns an id and timestamp when missing and stores the run.
func (s *RunHistoryService) Record(ctx context.Context, run *model.RunRecord) error {
	if run.ID.IsZero() {
		run.ID = primitive.NewObjectID()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}
	return s.repo.Create(ctx, run)
}

func (s *RunHistoryService) Recent(ctx context.Context, opts model.RunQueryOptions) ([]*model.RunRecord, int64, error) {
	opts = ClampRunQuery(opts)

	runs, err := s.repo.Query(ctx, opts)
	if err != nil {
		return nil, 0, err
	}

	count := opts
	count.Limit, count.Skip = 0, 0
	total, err := s.repo.Count(ctx, count)
	if err != nil {
		return nil, 0, err
	}
	return runs, total, nil
}

func (s *RunHistoryService) Summary(ctx context.Context, opts model.RunQueryOptions) ([]model.AlgorithmUsage, error) {
	opts.Limit, opts.Skip = 0, 0
	return s.repo.Summary(ctx, opts)
}

// ClampRunQuery applies the default and maximum page size used by Recent.
func ClampRunQuery(opts model.RunQueryOptions) model.RunQueryOptions {
	if opts.Limit <= 0 {
		opts.Limit = repository.DefaultRunsLimit
	}
	if opts.Limit > MaxRunsLimit {
		opts.Limit = MaxRunsLimit
	}
	if opts.Skip < 0 {
		opts.Skip = 0
	}
	return opts
}
