package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RunRecord is the summary of one optimization run kept in run history.
// Placements are not stored, only the statistics needed to audit a run.
type RunRecord struct {
	ID          primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	CreatedAt   time.Time              `bson:"created_at" json:"created_at"`
	RequestID   string                 `bson:"request_id,omitempty" json:"request_id,omitempty"`
	Requested   string                 `bson:"requested" json:"requested"`
	Algorithm   string                 `bson:"algorithm" json:"algorithm"`
	Source      string                 `bson:"source,omitempty" json:"source,omitempty"` // "direct", "advisor", "best", "cache"
	ItemLines   int                    `bson:"item_lines" json:"item_lines"`
	Container   Container              `bson:"container" json:"container"`
	Stats       Stats                  `bson:"stats" json:"stats"`
	Generations int                    `bson:"generations,omitempty" json:"generations,omitempty"`
	DurationMs  int64                  `bson:"duration_ms" json:"duration_ms"`
	Error       string                 `bson:"error,omitempty" json:"error,omitempty"`
	Fields      map[string]interface{} `bson:"fields,omitempty" json:"fields,omitempty"`
}

// WithField adds a field to the record's Fields map, initialising it if needed.
func (r *RunRecord) WithField(key string, value interface{}) *RunRecord {
	if r.Fields == nil {
		r.Fields = make(map[string]interface{})
	}
	r.Fields[key] = value
	return r
}

// Failed reports whether the run ended with an error.
func (r *RunRecord) Failed() bool {
	return r.Error != ""
}

// RunQueryOptions filters run history queries.
type RunQueryOptions struct {
	RequestID string
	Algorithm string
	StartTime *time.Time
	EndTime   *time.Time
	Limit     int
	Skip      int
}

// AlgorithmUsage aggregates run history per algorithm.
type AlgorithmUsage struct {
	Algorithm      string  `bson:"_id" json:"algorithm"`
	Runs           int64   `bson:"runs" json:"runs"`
	AvgUtilization float64 `bson:"avg_utilization" json:"avg_utilization"`
	AvgDurationMs  float64 `bson:"avg_duration_ms" json:"avg_duration_ms"`
	Unplaced       int64   `bson:"unplaced" json:"unplaced"`
}
