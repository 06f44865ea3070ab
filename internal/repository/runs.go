package repository

import (
	"context"
	"time"

	"github.com/guttosm/cargo-pack-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DefaultRunsLimit caps Query when no limit is given.
const DefaultRunsLimit = 50

// RunsRepository stores optimization run summaries.
type RunsRepository struct {
	collection *mongo.Collection
}

// NewRunsRepository creates a new runs repository.
func NewRunsRepository(db *MongoDB) *RunsRepository {
	return &RunsRepository{
		collection: db.Runs,
	}
}

func prepare(run *model.RunRecord) {
	if run.ID.IsZero() {
		run.ID = primitive.NewObjectID()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}
}

// Create inserts one run record.
func (r *RunsRepository) Create(ctx context.Context, run *model.RunRecord) error {
	prepare(run)
	_, err := r.collection.InsertOne(ctx, run)
	return err
}

// CreateMany inserts run records in one unordered bulk write.
func (r *RunsRepository) CreateMany(ctx context.Context, runs []*model.RunRecord) error {
	if len(runs) == 0 {
		return nil
	}

	docs := make([]interface{}, len(runs))
	for i, run := range runs {
		prepare(run)
		docs[i] = run
	}

	_, err := r.collection.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	return err
}

func runFilter(opts model.RunQueryOptions) bson.M {
	filter := bson.M{}
	if opts.RequestID != "" {
		filter["request_id"] = opts.RequestID
	}
	if opts.Algorithm != "" {
		filter["algorithm"] = opts.Algorithm
	}
	if opts.StartTime != nil || opts.EndTime != nil {
		timeFilter := bson.M{}
		if opts.StartTime != nil {
			timeFilter["$gte"] = *opts.StartTime
		}
		if opts.EndTime != nil {
			timeFilter["$lte"] = *opts.EndTime
		}
		filter["created_at"] = timeFilter
	}
	return filter
}

// Query returns the newest matching runs first.
func (r *RunsRepository) Query(ctx context.Context, opts model.RunQueryOptions) ([]*model.RunRecord, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultRunsLimit
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))
	if opts.Skip > 0 {
		findOptions.SetSkip(int64(opts.Skip))
	}

	cursor, err := r.collection.Find(ctx, runFilter(opts), findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	runs := make([]*model.RunRecord, 0)
	if err := cursor.All(ctx, &runs); err != nil {
		return nil, err
	}
	return runs, nil
}

// Count returns the number of runs matching the filter. Limit and Skip are ignored.
func (r *RunsRepository) Count(ctx context.Context, opts model.RunQueryOptions) (int64, error) {
	return r.collection.CountDocuments(ctx, runFilter(opts))
}

// Summary aggregates successful runs per algorithm, most used first.
func (r *RunsRepository) Summary(ctx context.Context, opts model.RunQueryOptions) ([]model.AlgorithmUsage, error) {
	match := runFilter(opts)
	match["error"] = bson.M{"$exists": false}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$algorithm"},
			{Key: "runs", Value: bson.M{"$sum": 1}},
			{Key: "avg_utilization", Value: bson.M{"$avg": "$stats.utilization"}},
			{Key: "avg_duration_ms", Value: bson.M{"$avg": "$duration_ms"}},
			{Key: "unplaced", Value: bson.M{"$sum": "$stats.unplaced_count"}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "runs", Value: -1}, {Key: "_id", Value: 1}}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	usage := make([]model.AlgorithmUsage, 0)
	if err := cursor.All(ctx, &usage); err != nil {
		return nil, err
	}
	return usage, nil
}
