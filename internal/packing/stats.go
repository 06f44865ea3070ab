package packing

import (
	"math"

	"github.com/guttosm/cargo-pack-service/internal/domain/model"
)

// CalculateStats recomputes the statistics of a placement set. Volumes are
// reported in cubic metres and utilization in percent with one decimal.
func CalculateStats(placements []model.Placement, container model.Container) model.Stats {
	var (
		placedCount  int
		placedVolume float64
		placedWeight float64
	)
	for _, p := range placements {
		if !p.Placed {
			continue
		}
		placedCount++
		placedVolume += p.Volume()
		placedWeight += p.Weight
	}

	containerVolume := container.Volume()
	utilization := 0.0
	if containerVolume > 0 {
		utilization = placedVolume / containerVolume * 100
	}

	return model.Stats{
		TotalItems:      len(placements),
		PlacedCount:     placedCount,
		UnplacedCount:   len(placements) - placedCount,
		PlacedVolume:    placedVolume / model.CubicMillimetresPerCubicMetre,
		ContainerVolume: containerVolume / model.CubicMillimetresPerCubicMetre,
		PlacedWeight:    placedWeight,
		Utilization:     round1(utilization),
	}
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// newResult assembles a result with freshly computed statistics.
func newResult(placements []model.Placement, container model.Container, algorithm string) model.PackResult {
	if placements == nil {
		placements = []model.Placement{}
	}
	return model.PackResult{
		Placements: placements,
		Stats:      CalculateStats(placements, container),
		Algorithm:  algorithm,
	}
}
