package packing

import (
	"sort"

	"github.com/guttosm/cargo-pack-service/internal/domain/model"
)

// Instance is one physical unit of an item. Seq is the instance's position in
// the expanded list and identifies it uniquely within a run.
type Instance struct {
	Item          model.Item
	InstanceIndex int
	Seq           int
}

// Dims returns the instance's original orientation.
func (in Instance) Dims() Dims {
	return Dims{Length: in.Item.Length, Width: in.Item.Width, Height: in.Item.Height}
}

// Volume returns the unit volume in cubic millimetres.
func (in Instance) Volume() float64 {
	return in.Item.Volume()
}

// Expand returns one Instance per unit of quantity, preserving item order and
// then instance order.
func Expand(items []model.Item) []Instance {
	expanded := make([]Instance, 0, TotalInstances(items))
	for _, item := range items {
		for i := 0; i < item.Quantity; i++ {
			expanded = append(expanded, Instance{
				Item:          item,
				InstanceIndex: i,
				Seq:           len(expanded),
			})
		}
	}
	return expanded
}

// TotalInstances returns the number of instances Expand would produce.
func TotalInstances(items []model.Item) int {
	total := 0
	for _, item := range items {
		if item.Quantity > 0 {
			total += item.Quantity
		}
	}
	return total
}

// sortByVolumeDesc orders instances by descending volume. Ties keep input order.
func sortByVolumeDesc(instances []Instance) {
	sort.SliceStable(instances, func(i, j int) bool {
		return instances[i].Volume() > instances[j].Volume()
	})
}

// placedRecord builds the placement record for an instance resolved into b.
func placedRecord(in Instance, b Box) model.Placement {
	return model.Placement{
		ItemID:        in.Item.ID,
		InstanceIndex: in.InstanceIndex,
		X:             b.X,
		Y:             b.Y,
		Z:             b.Z,
		PlacedLength:  b.Length,
		PlacedWidth:   b.Width,
		PlacedHeight:  b.Height,
		Weight:        in.Item.Weight,
		Rotated:       b.Dims != in.Dims(),
		Placed:        true,
	}
}

// unplacedRecord builds the record for an instance that could not be placed.
func unplacedRecord(in Instance) model.Placement {
	return model.Placement{
		ItemID:        in.Item.ID,
		InstanceIndex: in.InstanceIndex,
		PlacedLength:  in.Item.Length,
		PlacedWidth:   in.Item.Width,
		PlacedHeight:  in.Item.Height,
		Weight:        in.Item.Weight,
	}
}

// weightBudget tracks the cumulative placed weight against the container limit.
type weightBudget struct {
	limit float64
	used  float64
}

func newWeightBudget(container model.Container) weightBudget {
	return weightBudget{limit: container.MaxWeight}
}

func (w *weightBudget) fits(weight float64) bool {
	return w.limit <= 0 || w.used+weight <= w.limit
}

func (w *weightBudget) add(weight float64) {
	w.used += weight
}
