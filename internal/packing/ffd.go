package packing

import "github.com/guttosm/cargo-pack-service/internal/domain/model"

// DefaultGridStep is the FFD scan step in millimetres.
const DefaultGridStep = 50

// PackFFD places instances largest first by scanning a fixed-step grid
// height-major, then width, then length, accepting the first free position.
// Each orientation is scanned in turn; with rotation disabled only the
// original orientation is tried.
func PackFFD(items []model.Item, container model.Container, allowRotation bool, step int) model.PackResult {
	if step <= 0 {
		step = DefaultGridStep
	}

	instances := Expand(items)
	sortByVolumeDesc(instances)

	placed := make([]Box, 0, len(instances))
	placements := make([]model.Placement, 0, len(instances))
	budget := newWeightBudget(container)

	for _, in := range instances {
		if !budget.fits(in.Item.Weight) {
			placements = append(placements, unplacedRecord(in))
			continue
		}

		box, ok := scanGrid(in.Dims(), container, placed, allowRotation, float64(step))
		if !ok {
			placements = append(placements, unplacedRecord(in))
			continue
		}

		placed = append(placed, box)
		budget.add(in.Item.Weight)
		placements = append(placements, placedRecord(in, box))
	}

	return newResult(placements, container, AlgorithmFFD)
}

// scanGrid returns the first grid position that accepts any orientation of d.
func scanGrid(d Dims, container model.Container, placed []Box, allowRotation bool, step float64) (Box, bool) {
	for _, o := range orientations(d, allowRotation) {
		for z := 0.0; z <= container.Height-o.Height; z += step {
			for y := 0.0; y <= container.Width-o.Width; y += step {
				for x := 0.0; x <= container.Length-o.Length; x += step {
					if CanPlace(o, x, y, z, container, placed) {
						return Box{Point: Point{X: x, Y: y, Z: z}, Dims: o}, true
					}
				}
			}
		}
	}
	return Box{}, false
}
