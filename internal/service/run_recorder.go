package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/cargo-pack-service/internal/domain/model"
	"github.com/guttosm/cargo-pack-service/internal/logger"
)

// RunRecorder accepts run summaries without blocking the request path.
type RunRecorder interface {
	// Record enqueues run and reports whether it was accepted.
	Record(run *model.RunRecord) bool
}

// RecorderConfig configures an AsyncRunRecorder.
type RecorderConfig struct {
	// BufferSize is the number of runs that may wait for a worker.
	BufferSize int
	// NumWorkers is the number of goroutines writing runs.
	NumWorkers int
	// WriteTimeout bounds a single write.
	WriteTimeout time.Duration
}

// DefaultRecorderConfig returns the recorder defaults.
func DefaultRecorderConfig() RecorderConfig {
	return RecorderConfig{
		BufferSize:   1000,
		NumWorkers:   2,
		WriteTimeout: 5 * time.Second,
	}
}

// RecorderStats counts what happened to recorded runs.
type RecorderStats struct {
	Enqueued int64 `json:"enqueued"`
	Dropped  int64 `json:"dropped"`
	Written  int64 `json:"written"`
	Errors   int64 `json:"errors"`
}

// AsyncRunRecorder writes runs to a RunHistory from a fixed worker pool.
// When the buffer is full new runs are dropped.
type AsyncRunRecorder struct {
	history      RunHistory
	runCh        chan *model.RunRecord
	stopCh       chan struct{}
	stopOnce     sync.Once
	wg           sync.WaitGroup
	writeTimeout time.Duration

	enqueued int64
	dropped  int64
	written  int64
	errors   int64
}

// NewAsyncRunRecorder starts the worker pool. A nil history returns nil.
func NewAsyncRunRecorder(history RunHistory, cfg RecorderConfig) *AsyncRunRecorder {
	if history == nil {
		return nil
	}
	def := DefaultRecorderConfig()
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = def.BufferSize
	}
	if cfg.NumWorkers <= 0 {
		cfg.NumWorkers = def.NumWorkers
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = def.WriteTimeout
	}

	r := &AsyncRunRecorder{
		history:      history,
		runCh:        make(chan *model.RunRecord, cfg.BufferSize),
		stopCh:       make(chan struct{}),
		writeTimeout: cfg.WriteTimeout,
	}
	for i := 0; i < cfg.NumWorkers; i++ {
		r.wg.Add(1)
		go r.worker()
	}
	return r
}

func (r *AsyncRunRecorder) worker() {
	defer r.wg.Done()

	for {
		select {
		case run := <-r.runCh:
			r.write(run)
		case <-r.stopCh:
			for {
				select {
				case run := <-r.runCh:
					r.write(run)
				default:
					return
				}
			}
		}
	}
}

func (r *AsyncRunRecorder) write(run *model.RunRecord) {
	ctx, cancel := context.WithTimeout(context.Background(), r.writeTimeout)
	defer cancel()

	if err := r.history.Record(ctx, run); err != nil {
		atomic.AddInt64(&r.errors, 1)
		log := logger.Logger()
		log.Warn().Err(err).Str("request_id", run.RequestID).Msg("Failed to record optimization run")
		return
	}
	atomic.AddInt64(&r.written, 1)
}

// Record enqueues run. It returns false when the recorder is stopped or the
// buffer is full.
func (r *AsyncRunRecorder) Record(run *model.RunRecord) bool {
	select {
	case <-r.stopCh:
		atomic.AddInt64(&r.dropped, 1)
		return false
	default:
	}

	select {
	case r.runCh <- run:
		atomic.AddInt64(&r.enqueued, 1)
		return true
	default:
		atomic.AddInt64(&r.dropped, 1)
		return false
	}
}

// Stop drains queued runs and waits for the workers to exit.
func (r *AsyncRunRecorder) Stop() {
	r.stopOnce.Do(func() {
		close(r.stopCh)
		r.wg.Wait()
	})
}

// Stats returns the recorder counters.
func (r *AsyncRunRecorder) Stats() RecorderStats {
	return RecorderStats{
		Enqueued: atomic.LoadInt64(&r.enqueued),
		Dropped:  atomic.LoadInt64(&r.dropped),
		Written:  atomic.LoadInt64(&r.written),
		Errors:   atomic.LoadInt64(&r.errors),
	}
}
