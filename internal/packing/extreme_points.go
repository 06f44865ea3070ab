package packing

import "github.com/guttosm/cargo-pack-service/internal/domain/model"

// extremePointPlacer holds the mutable state of one extreme-points decode:
// the placed boxes, the current anchor set and the weight used so far.
type extremePointPlacer struct {
	container     model.Container
	allowRotation bool
	placed        []Box
	points        []Point
	seen          map[Point]struct{}
	budget        weightBudget
}

func newExtremePointPlacer(container model.Container, allowRotation bool, capacity int) *extremePointPlacer {
	origin := Point{}
	return &extremePointPlacer{
		container:     container,
		allowRotation: allowRotation,
		placed:        make([]Box, 0, capacity),
		points:        []Point{origin},
		seen:          map[Point]struct{}{origin: {}},
		budget:        newWeightBudget(container),
	}
}

// place decides the position of one instance and updates the anchor set.
func (p *extremePointPlacer) place(in Instance) model.Placement {
	if !p.budget.fits(in.Item.Weight) {
		return unplacedRecord(in)
	}

	box, ok := p.bestPosition(in.Dims())
	if !ok {
		return unplacedRecord(in)
	}

	p.placed = append(p.placed, box)
	p.budget.add(in.Item.Weight)
	p.refreshPoints(box)
	return placedRecord(in, box)
}

// bestPosition tests every (anchor, orientation) pair and keeps the feasible
// one lowest in z, then y, then x. Earlier pairs win ties.
func (p *extremePointPlacer) bestPosition(d Dims) (Box, bool) {
	var (
		best  Box
		found bool
	)
	rotations := orientations(d, p.allowRotation)
	for _, pt := range p.points {
		if found && !lowerPoint(pt, best.Point) {
			continue
		}
		for _, o := range rotations {
			if CanPlace(o, pt.X, pt.Y, pt.Z, p.container, p.placed) {
				best = Box{Point: pt, Dims: o}
				found = true
				break
			}
		}
	}
	return best, found
}

// refreshPoints drops anchors swallowed by the new box and adds the up to six
// anchors derived from its far faces and corners.
func (p *extremePointPlacer) refreshPoints(b Box) {
	kept := p.points[:0]
	for _, pt := range p.points {
		if Contains(b, pt) {
			delete(p.seen, pt)
			continue
		}
		kept = append(kept, pt)
	}
	p.points = kept

	farX, farY, farZ := b.X+b.Length, b.Y+b.Width, b.Z+b.Height
	candidates := [6]Point{
		{X: farX, Y: b.Y, Z: b.Z},
		{X: b.X, Y: farY, Z: b.Z},
		{X: b.X, Y: b.Y, Z: farZ},
		{X: farX, Y: farY, Z: b.Z},
		{X: farX, Y: b.Y, Z: farZ},
		{X: b.X, Y: farY, Z: farZ},
	}
	for _, pt := range candidates {
		if !p.usable(pt) {
			continue
		}
		if _, dup := p.seen[pt]; dup {
			continue
		}
		p.seen[pt] = struct{}{}
		p.points = append(p.points, pt)
	}
}

// usable reports whether pt is inside the container and not inside a placed box.
func (p *extremePointPlacer) usable(pt Point) bool {
	if pt.X >= p.container.Length || pt.Y >= p.container.Width || pt.Z >= p.container.Height {
		return false
	}
	for _, b := range p.placed {
		if Contains(b, pt) {
			return false
		}
	}
	return true
}

// lowerPoint orders anchors bottom-back-left: lower z first, then y, then x.
func lowerPoint(a, b Point) bool {
	if a.Z != b.Z {
		return a.Z < b.Z
	}
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}

// placeInOrder decodes a placement order with the extreme-points procedure.
func placeInOrder(order []Instance, container model.Container, allowRotation bool) []model.Placement {
	placer := newExtremePointPlacer(container, allowRotation, len(order))
	placements := make([]model.Placement, 0, len(order))
	for _, in := range order {
		placements = append(placements, placer.place(in))
	}
	return placements
}

// PackExtremePoints places instances largest first, each at the extreme point
// and orientation that keeps it lowest, deepest and leftmost.
func PackExtremePoints(items []model.Item, container model.Container, allowRotation bool) model.PackResult {
	instances := Expand(items)
	sortByVolumeDesc(instances)
	return newResult(placeInOrder(instances, container, allowRotation), container, AlgorithmExtremePoints)
}
