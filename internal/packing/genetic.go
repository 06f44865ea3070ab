package packing

import (
	"math/rand"
	"runtime"
	"sort"
	"time"

	"github.com/guttosm/cargo-pack-service/internal/domain/model"
)

// completionBonus is added to the fitness of orders that place every instance.
const completionBonus = 0.1

// GeneticConfig holds parameters for the genetic order optimizer.
type GeneticConfig struct {
	PopulationSize int
	Generations    int
	MutationRate   float64
	TournamentSize int
	EliteCount     int
	// Seed fixes the random source. Zero seeds from the clock.
	Seed int64
	// OnProgress, when set, is called once per generation.
	OnProgress ProgressFunc
}

// DefaultGeneticConfig returns the default genetic parameters.
func DefaultGeneticConfig() GeneticConfig {
	return GeneticConfig{
		PopulationSize: 20,
		Generations:    50,
		MutationRate:   0.15,
		TournamentSize: 3,
		EliteCount:     2,
	}
}

// normalized fills non-positive fields with defaults.
func (c GeneticConfig) normalized() GeneticConfig {
	def := DefaultGeneticConfig()
	if c.PopulationSize <= 0 {
		c.PopulationSize = def.PopulationSize
	}
	if c.Generations <= 0 {
		c.Generations = def.Generations
	}
	if c.MutationRate <= 0 {
		c.MutationRate = def.MutationRate
	}
	if c.TournamentSize <= 0 {
		c.TournamentSize = def.TournamentSize
	}
	if c.EliteCount <= 0 {
		c.EliteCount = def.EliteCount
	}
	if c.EliteCount > c.PopulationSize {
		c.EliteCount = c.PopulationSize
	}
	return c
}

// Progress is reported after each generation has been evaluated.
// Percent and the fitness values are percentages with one decimal.
type Progress struct {
	Generation       int     `json:"generation"`
	TotalGenerations int     `json:"total_generations"`
	Percent          float64 `json:"percent"`
	BestFitness      float64 `json:"best_fitness"`
	CurrentFitness   float64 `json:"current_fitness"`
}

// ProgressFunc receives genetic progress updates.
type ProgressFunc func(Progress)

// individual is a placement order expressed as instance ordinals.
type individual struct {
	order     []int
	fitness   float64
	evaluated bool
}

// geneticOptimizer evolves placement orders for one run.
type geneticOptimizer struct {
	instances     []Instance
	container     model.Container
	allowRotation bool
	config        GeneticConfig
	rng           *rand.Rand
}

func newGeneticOptimizer(instances []Instance, container model.Container, allowRotation bool, config GeneticConfig) *geneticOptimizer {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &geneticOptimizer{
		instances:     instances,
		container:     container,
		allowRotation: allowRotation,
		config:        config,
		rng:           rand.New(rand.NewSource(seed)),
	}
}

// PackGenetic searches over placement orders with a genetic algorithm and
// returns the decode of the best order found.
func PackGenetic(items []model.Item, container model.Container, allowRotation bool, config GeneticConfig) model.PackResult {
	config = config.normalized()
	instances := Expand(items)
	if len(instances) == 0 {
		return newResult(nil, container, AlgorithmGenetic)
	}

	g := newGeneticOptimizer(instances, container, allowRotation, config)
	best := g.optimize()

	result := newResult(g.decode(best.order), container, AlgorithmGenetic)
	result.Generations = config.Generations
	return result
}

// optimize runs the evolution loop and returns the best individual ever seen.
func (g *geneticOptimizer) optimize() individual {
	population := g.initPopulation()
	var best individual
	bestFitness := -1.0

	for gen := 0; gen < g.config.Generations; gen++ {
		current := -1.0
		currentIdx := 0
		for i := range population {
			if !population[i].evaluated {
				population[i].fitness = g.evaluate(population[i].order)
				population[i].evaluated = true
			}
			if population[i].fitness > current {
				current = population[i].fitness
				currentIdx = i
			}
		}

		if current > bestFitness {
			bestFitness = current
			best = copyIndividual(population[currentIdx])
		}

		if g.config.OnProgress != nil {
			g.config.OnProgress(Progress{
				Generation:       gen + 1,
				TotalGenerations: g.config.Generations,
				Percent:          round1(float64(gen+1) / float64(g.config.Generations) * 100),
				BestFitness:      round1(bestFitness * 100),
				CurrentFitness:   round1(current * 100),
			})
		}
		runtime.Gosched()

		if gen+1 < g.config.Generations {
			population = g.nextGeneration(population)
		}
	}

	return best
}

// nextGeneration keeps the elites and fills the rest with offspring.
func (g *geneticOptimizer) nextGeneration(population []individual) []individual {
	ranked := make([]int, len(population))
	for i := range ranked {
		ranked[i] = i
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return population[ranked[a]].fitness > population[ranked[b]].fitness
	})

	next := make([]individual, 0, g.config.PopulationSize)
	for i := 0; i < g.config.EliteCount && i < len(ranked); i++ {
		next = append(next, copyIndividual(population[ranked[i]]))
	}

	for len(next) < g.config.PopulationSize {
		parent1 := g.tournamentSelect(population)
		parent2 := g.tournamentSelect(population)
		child := g.crossover(parent1, parent2)
		g.mutate(&child)
		next = append(next, child)
	}
	return next
}

// initPopulation seeds four heuristic orders and fills the rest with shuffles.
func (g *geneticOptimizer) initPopulation() []individual {
	seeds := []func(in Instance) float64{
		func(in Instance) float64 { return in.Volume() },
		func(in Instance) float64 { return in.Item.Height },
		func(in Instance) float64 { return in.Item.Length * in.Item.Width },
		func(in Instance) float64 { return longestEdge(in.Item) },
	}

	population := make([]individual, 0, g.config.PopulationSize)
	for _, key := range seeds {
		if len(population) == g.config.PopulationSize {
			break
		}
		population = append(population, individual{order: g.sortedOrder(key)})
	}

	for len(population) < g.config.PopulationSize {
		order := g.identityOrder()
		g.rng.Shuffle(len(order), func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})
		population = append(population, individual{order: order})
	}
	return population
}

func (g *geneticOptimizer) identityOrder() []int {
	order := make([]int, len(g.instances))
	for i := range order {
		order[i] = i
	}
	return order
}

// sortedOrder returns the instances ordered by descending key, ties in input order.
func (g *geneticOptimizer) sortedOrder(key func(Instance) float64) []int {
	order := g.identityOrder()
	sort.SliceStable(order, func(a, b int) bool {
		return key(g.instances[order[a]]) > key(g.instances[order[b]])
	})
	return order
}

// decode turns an order into placements using the extreme-points procedure.
func (g *geneticOptimizer) decode(order []int) []model.Placement {
	sequence := make([]Instance, len(order))
	for i, seq := range order {
		sequence[i] = g.instances[seq]
	}
	return placeInOrder(sequence, g.container, g.allowRotation)
}

// evaluate scores an order by the fraction of container volume it fills.
func (g *geneticOptimizer) evaluate(order []int) float64 {
	return fitness(g.decode(order), g.container)
}

func fitness(placements []model.Placement, container model.Container) float64 {
	var placedVolume float64
	placedCount := 0
	for _, p := range placements {
		if p.Placed {
			placedVolume += p.Volume()
			placedCount++
		}
	}

	score := placedVolume / container.Volume()
	if placedCount == len(placements) {
		score += completionBonus
	}
	return score
}

// tournamentSelect returns the fittest of TournamentSize random picks.
func (g *geneticOptimizer) tournamentSelect(population []individual) individual {
	best := population[g.rng.Intn(len(population))]
	for i := 1; i < g.config.TournamentSize; i++ {
		candidate := population[g.rng.Intn(len(population))]
		if candidate.fitness > best.fitness {
			best = candidate
		}
	}
	return best
}

// crossover copies a random slice of parent1 in place and fills the remaining
// slots, starting after the slice and wrapping, with parent2's instances in
// parent2 order, skipping those already present.
func (g *geneticOptimizer) crossover(parent1, parent2 individual) individual {
	n := len(parent1.order)
	start := g.rng.Intn(n)
	end := start + g.rng.Intn(n-start)

	child := make([]int, n)
	present := make([]bool, len(g.instances))
	for i := start; i <= end; i++ {
		child[i] = parent1.order[i]
		present[child[i]] = true
	}

	slot := (end + 1) % n
	for i := 0; i < n; i++ {
		seq := parent2.order[(end+1+i)%n]
		if present[seq] {
			continue
		}
		child[slot] = seq
		present[seq] = true
		slot = (slot + 1) % n
	}
	return individual{order: child}
}

// mutate swaps two random positions with probability MutationRate.
func (g *geneticOptimizer) mutate(c *individual) {
	if g.rng.Float64() >= g.config.MutationRate {
		return
	}
	n := len(c.order)
	i, j := g.rng.Intn(n), g.rng.Intn(n)
	c.order[i], c.order[j] = c.order[j], c.order[i]
}

func copyIndividual(c individual) individual {
	order := make([]int, len(c.order))
	copy(order, c.order)
	return individual{order: order, fitness: c.fitness, evaluated: c.evaluated}
}

func longestEdge(item model.Item) float64 {
	longest := item.Length
	if item.Width > longest {
		longest = item.Width
	}
	if item.Height > longest {
		longest = item.Height
	}
	return longest
}
