package packing

import (
	"errors"
	"fmt"
	"math"

	"github.com/guttosm/cargo-pack-service/internal/domain/model"
)

// Algorithm names accepted by Pack.
const (
	AlgorithmFFD           = "ffd"
	AlgorithmExtremePoints = "extreme-points"
	AlgorithmGenetic       = "genetic"
	AlgorithmAuto          = "auto"
)

// BestOfGenerations is the generation count of the genetic pass run by PackBest.
const BestOfGenerations = 30

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
	// ErrTooManyInstances is wrapped together with ErrInvalidInput.
	ErrTooManyInstances = errors.New("too many instances")
)

// Options tunes a Pack call. Fields that do not apply to the selected
// algorithm are ignored.
type Options struct {
	Algorithm      string
	AllowRotation  bool
	GridStep       int
	Generations    int
	PopulationSize int
	MutationRate   float64
	EliteCount     int
	TournamentSize int
	Seed           int64
	OnProgress     ProgressFunc
	// MaxInstances caps the expanded instance count. Zero disables the cap.
	MaxInstances int
}

// DefaultOptions returns options for a genetic run with rotation enabled.
func DefaultOptions() Options {
	g := DefaultGeneticConfig()
	return Options{
		Algorithm:      AlgorithmGenetic,
		AllowRotation:  true,
		GridStep:       DefaultGridStep,
		Generations:    g.Generations,
		PopulationSize: g.PopulationSize,
		MutationRate:   g.MutationRate,
		EliteCount:     g.EliteCount,
		TournamentSize: g.TournamentSize,
	}
}

func (o Options) geneticConfig() GeneticConfig {
	return GeneticConfig{
		PopulationSize: o.PopulationSize,
		Generations:    o.Generations,
		MutationRate:   o.MutationRate,
		TournamentSize: o.TournamentSize,
		EliteCount:     o.EliteCount,
		Seed:           o.Seed,
		OnProgress:     o.OnProgress,
	}
}

// Algorithms lists the concrete placement strategies in evaluation order.
func Algorithms() []string {
	return []string{AlgorithmFFD, AlgorithmExtremePoints, AlgorithmGenetic}
}

// IsKnown reports whether name is accepted by Pack.
func IsKnown(name string) bool {
	switch name {
	case AlgorithmFFD, AlgorithmExtremePoints, AlgorithmGenetic, AlgorithmAuto:
		return true
	}
	return false
}

// Validate checks that every item and the container are well formed.
// An empty item list is valid.
func Validate(items []model.Item, container model.Container, maxInstances int) error {
	if !positive(container.Length) || !positive(container.Width) || !positive(container.Height) {
		return fmt.Errorf("%w: container dimensions must be positive", ErrInvalidInput)
	}
	if math.IsNaN(container.MaxWeight) || math.IsInf(container.MaxWeight, 0) || container.MaxWeight < 0 {
		return fmt.Errorf("%w: container max weight must be zero or positive", ErrInvalidInput)
	}

	for i, item := range items {
		if !positive(item.Length) || !positive(item.Width) || !positive(item.Height) {
			return fmt.Errorf("%w: item %d (%q) dimensions must be positive", ErrInvalidInput, i, item.ID)
		}
		if !positive(item.Weight) {
			return fmt.Errorf("%w: item %d (%q) weight must be positive", ErrInvalidInput, i, item.ID)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: item %d (%q) quantity must be positive", ErrInvalidInput, i, item.ID)
		}
	}

	if maxInstances > 0 {
		if total := TotalInstances(items); total > maxInstances {
			return fmt.Errorf("%w: %w: %d exceed the limit of %d", ErrInvalidInput, ErrTooManyInstances, total, maxInstances)
		}
	}
	return nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

// Pack validates the input and runs the algorithm named in opts.
// "auto" runs every strategy and returns the best result.
func Pack(items []model.Item, container model.Container, opts Options) (model.PackResult, error) {
	if !IsKnown(opts.Algorithm) {
		return model.PackResult{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, opts.Algorithm)
	}
	if err := Validate(items, container, opts.MaxInstances); err != nil {
		return model.PackResult{}, err
	}

	switch opts.Algorithm {
	case AlgorithmFFD:
		return PackFFD(items, container, opts.AllowRotation, opts.GridStep), nil
	case AlgorithmExtremePoints:
		return PackExtremePoints(items, container, opts.AllowRotation), nil
	case AlgorithmGenetic:
		return PackGenetic(items, container, opts.AllowRotation, opts.geneticConfig()), nil
	default:
		return packBest(items, container, opts), nil
	}
}

// PackBest runs FFD, extreme points and a shortened genetic pass and returns
// the result with the highest utilization. Ties go to the earlier strategy.
func PackBest(items []model.Item, container model.Container, allowRotation bool) model.PackResult {
	opts := DefaultOptions()
	opts.AllowRotation = allowRotation
	return packBest(items, container, opts)
}

func packBest(items []model.Item, container model.Container, opts Options) model.PackResult {
	genetic := opts.geneticConfig()
	genetic.Generations = BestOfGenerations

	candidates := []model.PackResult{
		PackFFD(items, container, opts.AllowRotation, opts.GridStep),
		PackExtremePoints(items, container, opts.AllowRotation),
		PackGenetic(items, container, opts.AllowRotation, genetic),
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Stats.Utilization > best.Stats.Utilization {
			best = c
		}
	}
	return best
}
