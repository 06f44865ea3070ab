package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/guttosm/cargo-pack-service/internal/advisor"
	"github.com/guttosm/cargo-pack-service/internal/domain/model"
	"github.com/guttosm/cargo-pack-service/internal/logger"
	"github.com/guttosm/cargo-pack-service/internal/metrics"
	"github.com/guttosm/cargo-pack-service/internal/packing"
	"github.com/guttosm/cargo-pack-service/internal/service/cache"
)

// Run sources recorded with each optimization.
const (
	SourceDirect  = "direct"
	SourceAdvisor = "advisor"
	SourceBest    = "best"
	SourceCache   = "cache"
)

// Advisor outcomes reported once a recommendation has been judged.
const (
	advisorAccepted         = "accepted"
	advisorLowConfidence    = "low_confidence"
	advisorUnknownAlgorithm = "unknown_algorithm"
)

var ErrNoContainer = errors.New("container or container code is required")

// Optimizer runs packing requests and compares strategies.
type Optimizer interface {
	Optimize(ctx context.Context, req OptimizeRequest) (Outcome, error)
	Compare(ctx context.Context, req OptimizeRequest) (model.Comparison, error)
	Containers() []model.ContainerPreset
	RecommendContainer(items []model.Item) model.ContainerRecommendation
}

// OptimizeRequest is one packing job. When ContainerCode is set the catalogue
// preset replaces Container. Zero-valued option fields take the service defaults.
type OptimizeRequest struct {
	RequestID     string
	Items         []model.Item
	Container     model.Container
	ContainerCode string
	Options       packing.Options
}

// Outcome is a packing result with the context it was produced in.
type Outcome struct {
	Result    model.PackResult
	Container model.Container
	Requested string
	Source    string
	Advice    *advisor.Recommendation
	Duration  time.Duration
	Cached    bool
}

// Defaults are applied to request options left at their zero value.
type Defaults struct {
	Algorithm          string
	GridStep           int
	Generations        int
	PopulationSize     int
	MutationRate       float64
	EliteCount         int
	CompareGenerations int
	MaxInstances       int
}

// DefaultDefaults mirrors packing.DefaultOptions.
func DefaultDefaults() Defaults {
	opts := packing.DefaultOptions()
	return Defaults{
		Algorithm:          opts.Algorithm,
		GridStep:           opts.GridStep,
		Generations:        opts.Generations,
		PopulationSize:     opts.PopulationSize,
		MutationRate:       opts.MutationRate,
		EliteCount:         opts.EliteCount,
		CompareGenerations: packing.BestOfGenerations,
	}
}

// Option configures an OptimizerService.
type Option func(*OptimizerService)

// WithCache enables result caching with the specified capacity and TTL.
func WithCache(capacity int, ttl time.Duration, shards int) Option {
	return func(s *OptimizerService) {
		if capacity > 0 {
			s.cache = NewShardedCache(capacity, ttl, shards)
		}
	}
}

// WithCacheInterface allows injecting a custom cache implementation.
func WithCacheInterface(c cache.Cache) Option {
	return func(s *OptimizerService) {
		s.cache = c
	}
}

// WithAdvisor consults a for "auto" requests. Recommendations below
// minConfidence are ignored.
func WithAdvisor(a advisor.Advisor, minConfidence float64) Option {
	return func(s *OptimizerService) {
		s.advisor = a
		s.minConfidence = minConfidence
	}
}

// WithRunRecorder records a summary of every run.
func WithRunRecorder(r RunRecorder) Option {
	return func(s *OptimizerService) {
		if r != nil {
			s.recorder = r
		}
	}
}

// WithDefaults overrides the option defaults.
func WithDefaults(d Defaults) Option {
	return func(s *OptimizerService) {
		s.defaults = d
	}
}

// WithCatalog replaces the built-in container catalogue.
func WithCatalog(c *Catalog) Option {
	return func(s *OptimizerService) {
		if c != nil {
			s.catalog = c
		}
	}
}

// OptimizerService implements Optimizer.
type OptimizerService struct {
	defaults      Defaults
	catalog       *Catalog
	cache         cache.Cache
	advisor       advisor.Advisor
	minConfidence float64
	recorder      RunRecorder
}

// NewOptimizerService creates a new OptimizerService with the given options.
func NewOptimizerService(opts ...Option) *OptimizerService {
	s := &OptimizerService{defaults: DefaultDefaults()}
	for _, opt := range opts {
		opt(s)
	}
	if s.catalog == nil {
		s.catalog = DefaultCatalog()
	}
	return s
}

// Containers lists the catalogue presets, smallest first.
func (s *OptimizerService) Containers() []model.ContainerPreset {
	return s.catalog.List()
}

// RecommendContainer suggests a catalogue container for items.
func (s *OptimizerService) RecommendContainer(items []model.Item) model.ContainerRecommendation {
	return s.catalog.Recommend(items)
}

// Stop releases the cache cleanup goroutines.
func (s *OptimizerService) Stop() {
	if s.cache != nil {
		s.cache.Stop()
	}
}

// Cache returns the result cache, or nil when caching is disabled.
func (s *OptimizerService) Cache() cache.Cache {
	return s.cache
}

// Optimize resolves the container and options, consults the advisor for
// "auto", and packs. Deterministic runs are served from the cache when possible.
func (s *OptimizerService) Optimize(ctx context.Context, req OptimizeRequest) (Outcome, error) {
	opts := s.resolve(req.Options)
	out := Outcome{Requested: opts.Algorithm, Source: SourceDirect}
	log := logger.ForRun(req.RequestID, opts.Algorithm)

	container, err := s.container(req)
	if err != nil {
		s.fail(req, out, err)
		return out, err
	}
	out.Container = container

	if !packing.IsKnown(opts.Algorithm) {
		err := fmt.Errorf("%w: %q", packing.ErrUnknownAlgorithm, opts.Algorithm)
		s.fail(req, out, err)
		return out, err
	}
	if err := packing.Validate(req.Items, container, opts.MaxInstances); err != nil {
		s.fail(req, out, err)
		return out, err
	}

	if opts.Algorithm == packing.AlgorithmAuto {
		out.Advice = s.consultAdvisor(ctx, req.Items, container)
		if out.Advice != nil {
			opts.Algorithm = out.Advice.Algorithm
			out.Source = SourceAdvisor
		} else {
			out.Source = SourceBest
		}
	}

	var key cache.Key
	cacheable := s.cache != nil && Cacheable(opts)
	if cacheable {
		key = Fingerprint(req.Items, container, opts)
	}
	// A caller watching progress gets a live run; its result still refreshes
	// the cache.
	if cacheable && opts.OnProgress == nil {
		if cached, ok := s.cache.Get(key); ok {
			out.Result = cloneResult(cached)
			out.Cached = true
			s.record(req, out, container, SourceCache)
			log.Debug().Str("used", out.Result.Algorithm).Msg("Optimization served from cache")
			return out, nil
		}
	}

	userProgress := opts.OnProgress
	opts.OnProgress = func(p packing.Progress) {
		metrics.RecordGeneration()
		if userProgress != nil {
			userProgress(p)
		}
	}

	start := time.Now()
	result, err := packing.Pack(req.Items, container, opts)
	out.Duration = time.Since(start)
	if err != nil {
		s.fail(req, out, err)
		return out, err
	}
	out.Result = result

	metrics.RecordOptimization(result.Algorithm, out.Duration, result.Stats.Utilization, result.Stats.UnplacedCount)
	if cacheable {
		s.cache.Set(key, cloneResult(result))
	}
	s.record(req, out, container, out.Source)

	log.Info().
		Str("used", result.Algorithm).
		Str("source", out.Source).
		Int("instances", result.Stats.TotalItems).
		Int("unplaced", result.Stats.UnplacedCount).
		Float64("utilization", result.Stats.Utilization).
		Dur("duration", out.Duration).
		Msg("Optimization completed")

	return out, nil
}

// Compare runs every strategy on the same input. Results are ordered by
// utilization, ties keeping evaluation order; the first is recommended.
func (s *OptimizerService) Compare(ctx context.Context, req OptimizeRequest) (model.Comparison, error) {
	opts := s.resolve(req.Options)
	opts.Generations = s.defaults.CompareGenerations
	opts.OnProgress = nil

	container, err := s.container(req)
	if err != nil {
		return model.Comparison{}, err
	}
	if err := packing.Validate(req.Items, container, opts.MaxInstances); err != nil {
		return model.Comparison{}, err
	}

	cmp := model.Comparison{
		ItemCount:       packing.TotalInstances(req.Items),
		ContainerVolume: container.Volume() / model.CubicMillimetresPerCubicMetre,
		Results:         make([]model.AlgorithmSummary, 0, len(packing.Algorithms())),
	}

	for _, name := range packing.Algorithms() {
		if err := ctx.Err(); err != nil {
			return model.Comparison{}, err
		}
		opts.Algorithm = name

		start := time.Now()
		result, err := packing.Pack(req.Items, container, opts)
		elapsed := time.Since(start)
		if err != nil {
			return model.Comparison{}, err
		}
		metrics.RecordOptimization(name, elapsed, result.Stats.Utilization, result.Stats.UnplacedCount)

		cmp.Results = append(cmp.Results, model.AlgorithmSummary{
			Algorithm:     name,
			Utilization:   result.Stats.Utilization,
			PlacedCount:   result.Stats.PlacedCount,
			UnplacedCount: result.Stats.UnplacedCount,
			ElapsedMs:     elapsed.Milliseconds(),
		})
	}

	sort.SliceStable(cmp.Results, func(i, j int) bool {
		return cmp.Results[i].Utilization > cmp.Results[j].Utilization
	})
	cmp.Recommended = cmp.Results[0].Algorithm

	log := logger.ForRun(req.RequestID, "compare")
	log.Info().
		Str("recommended", cmp.Recommended).
		Int("instances", cmp.ItemCount).
		Msg("Algorithm comparison completed")

	return cmp, nil
}

// resolve fills zero-valued options from the defaults.
func (s *OptimizerService) resolve(opts packing.Options) packing.Options {
	d := s.defaults
	if opts.Algorithm == "" {
		opts.Algorithm = d.Algorithm
	}
	if opts.GridStep <= 0 {
		opts.GridStep = d.GridStep
	}
	if opts.Generations <= 0 {
		opts.Generations = d.Generations
	}
	if opts.PopulationSize <= 0 {
		opts.PopulationSize = d.PopulationSize
	}
	if opts.MutationRate <= 0 {
		opts.MutationRate = d.MutationRate
	}
	if opts.EliteCount <= 0 {
		opts.EliteCount = d.EliteCount
	}
	if opts.MaxInstances <= 0 {
		opts.MaxInstances = d.MaxInstances
	}
	return opts
}

func (s *OptimizerService) container(req OptimizeRequest) (model.Container, error) {
	if req.ContainerCode != "" {
		preset, err := s.catalog.Get(req.ContainerCode)
		if err != nil {
			return model.Container{}, err
		}
		return preset.Container, nil
	}
	if req.Container == (model.Container{}) {
		return model.Container{}, fmt.Errorf("%w: %v", packing.ErrInvalidInput, ErrNoContainer)
	}
	return req.Container, nil
}

// consultAdvisor returns the advisor's recommendation when it is confident
// and names a concrete strategy, and nil otherwise.
func (s *OptimizerService) consultAdvisor(ctx context.Context, items []model.Item, container model.Container) *advisor.Recommendation {
	if s.advisor == nil {
		return nil
	}

	rec, err := s.advisor.Recommend(ctx, items, container)
	if err != nil {
		log := logger.Logger()
		log.Debug().Err(err).Msg("Advisor unavailable, running every strategy")
		return nil
	}

	switch {
	case rec.Algorithm == packing.AlgorithmAuto || !packing.IsKnown(rec.Algorithm):
		metrics.RecordAdvisorRequest(advisorUnknownAlgorithm)
		return nil
	case rec.Confidence < s.minConfidence:
		metrics.RecordAdvisorRequest(advisorLowConfidence)
		return nil
	}

	metrics.RecordAdvisorRequest(advisorAccepted)
	return &rec
}

func (s *OptimizerService) record(req OptimizeRequest, out Outcome, container model.Container, source string) {
	if s.recorder == nil {
		return
	}
	s.recorder.Record(&model.RunRecord{
		CreatedAt:   time.Now().UTC(),
		RequestID:   req.RequestID,
		Requested:   out.Requested,
		Algorithm:   out.Result.Algorithm,
		Source:      source,
		ItemLines:   len(req.Items),
		Container:   container,
		Stats:       out.Result.Stats,
		Generations: out.Result.Generations,
		DurationMs:  out.Duration.Milliseconds(),
	})
}

func (s *OptimizerService) fail(req OptimizeRequest, out Outcome, err error) {
	label := out.Requested
	if !packing.IsKnown(label) {
		label = "unknown"
	}
	metrics.RecordOptimizationError(label)

	log := logger.ForRun(req.RequestID, out.Requested)
	log.Warn().Err(err).Msg("Optimization rejected")

	if s.recorder == nil {
		return
	}
	s.recorder.Record(&model.RunRecord{
		CreatedAt: time.Now().UTC(),
		RequestID: req.RequestID,
		Requested: out.Requested,
		Algorithm: out.Requested,
		Source:    out.Source,
		ItemLines: len(req.Items),
		Container: out.Container,
		Error:     err.Error(),
	})
}
