// Package packing implements three-dimensional container loading.
//
// Three strategies are available: a grid-scan first-fit-decreasing baseline,
// an extreme-points placer and a genetic search over placement order that
// decodes each candidate with the extreme-points procedure. All strategies
// are synchronous and own their state for the duration of a run.
//
// Coordinates are in millimetres with the origin at one container corner:
// x runs along the length, y along the width and z along the height.
package packing

import "github.com/guttosm/cargo-pack-service/internal/domain/model"

// Dims is an axis-aligned orientation of a cuboid.
type Dims struct {
	Length float64
	Width  float64
	Height float64
}

// Volume returns the cuboid volume in cubic millimetres.
func (d Dims) Volume() float64 {
	return d.Length * d.Width * d.Height
}

// Point is a candidate anchor for the minimum corner of a box.
type Point struct {
	X float64
	Y float64
	Z float64
}

// Box is a placed cuboid: its minimum corner plus its resolved dimensions.
type Box struct {
	Point
	Dims
}

// Overlaps reports whether two boxes intersect on all three axes.
// Intervals are half-open, so boxes whose faces touch do not overlap.
func Overlaps(a, b Box) bool {
	return a.X < b.X+b.Length && a.X+a.Length > b.X &&
		a.Y < b.Y+b.Width && a.Y+a.Width > b.Y &&
		a.Z < b.Z+b.Height && a.Z+a.Height > b.Z
}

// Contains reports whether p lies inside b, treating the far faces as open.
func Contains(b Box, p Point) bool {
	return p.X >= b.X && p.X < b.X+b.Length &&
		p.Y >= b.Y && p.Y < b.Y+b.Width &&
		p.Z >= b.Z && p.Z < b.Z+b.Height
}

// InBounds reports whether b lies fully inside the container.
func InBounds(b Box, container model.Container) bool {
	return b.X >= 0 && b.Y >= 0 && b.Z >= 0 &&
		b.X+b.Length <= container.Length &&
		b.Y+b.Width <= container.Width &&
		b.Z+b.Height <= container.Height
}

// CanPlace reports whether a cuboid of dimensions d fits at (x, y, z) without
// leaving the container or overlapping any placed box. Cost is O(len(placed)).
func CanPlace(d Dims, x, y, z float64, container model.Container, placed []Box) bool {
	candidate := Box{Point: Point{X: x, Y: y, Z: z}, Dims: d}
	if !InBounds(candidate, container) {
		return false
	}
	for _, b := range placed {
		if Overlaps(candidate, b) {
			return false
		}
	}
	return true
}

// Rotations returns the distinct axis permutations of d in a fixed order with
// the identity first. Cubes collapse to one orientation.
func Rotations(d Dims) []Dims {
	l, w, h := d.Length, d.Width, d.Height
	all := [6]Dims{
		{Length: l, Width: w, Height: h},
		{Length: l, Width: h, Height: w},
		{Length: w, Width: l, Height: h},
		{Length: w, Width: h, Height: l},
		{Length: h, Width: l, Height: w},
		{Length: h, Width: w, Height: l},
	}

	unique := make([]Dims, 0, len(all))
	for _, o := range all {
		seen := false
		for _, u := range unique {
			if u == o {
				seen = true
				break
			}
		}
		if !seen {
			unique = append(unique, o)
		}
	}
	return unique
}

// orientations returns the orientations a placer may try for d.
func orientations(d Dims, allowRotation bool) []Dims {
	if !allowRotation {
		return []Dims{d}
	}
	return Rotations(d)
}
