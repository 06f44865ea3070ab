package packing

import (
	"testing"

	"github.com/guttosm/cargo-pack-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	items := []model.Item{
		{ID: "a", Length: 1, Width: 1, Height: 1, Weight: 1, Quantity: 2},
		{ID: "b", Length: 2, Width: 2, Height: 2, Weight: 1, Quantity: 1},
		{ID: "c", Length: 3, Width: 3, Height: 3, Weight: 1, Quantity: 3},
	}

	instances := Expand(items)

	require.Len(t, instances, 6)
	expected := []struct {
		id    string
		index int
	}{
		{"a", 0}, {"a", 1}, {"b", 0}, {"c", 0}, {"c", 1}, {"c", 2},
	}
	for i, e := range expected {
		assert.Equal(t, e.id, instances[i].Item.ID)
		assert.Equal(t, e.index, instances[i].InstanceIndex)
		assert.Equal(t, i, instances[i].Seq)
	}
	assert.Equal(t, 6, TotalInstances(items))
}

func TestExpand_Empty(t *testing.T) {
	assert.Empty(t, Expand(nil))
	assert.Equal(t, 0, TotalInstances(nil))
}

func TestSortByVolumeDesc_Stable(t *testing.T) {
	instances := Expand([]model.Item{
		{ID: "small", Length: 1, Width: 1, Height: 1, Quantity: 1},
		{ID: "tie-1", Length: 2, Width: 2, Height: 2, Quantity: 1},
		{ID: "tie-2", Length: 4, Width: 2, Height: 1, Quantity: 1},
		{ID: "big", Length: 5, Width: 5, Height: 5, Quantity: 1},
	})

	sortByVolumeDesc(instances)

	ids := make([]string, len(instances))
	for i, in := range instances {
		ids[i] = in.Item.ID
	}
	assert.Equal(t, []string{"big", "tie-1", "tie-2", "small"}, ids)
}

func TestPlacedRecord_Rotated(t *testing.T) {
	in := Instance{Item: model.Item{ID: "x", Length: 1, Width: 2, Height: 3, Weight: 4}}

	straight := placedRecord(in, box(1, 2, 3, 1, 2, 3))
	assert.False(t, straight.Rotated)
	assert.True(t, straight.Placed)
	assert.Equal(t, 4.0, straight.Weight)

	turned := placedRecord(in, box(0, 0, 0, 2, 1, 3))
	assert.True(t, turned.Rotated)
}

func TestUnplacedRecord(t *testing.T) {
	in := Instance{Item: model.Item{ID: "x", Length: 1, Width: 2, Height: 3}, InstanceIndex: 2}

	p := unplacedRecord(in)

	assert.False(t, p.Placed)
	assert.False(t, p.Rotated)
	assert.Equal(t, 2, p.InstanceIndex)
	assert.Zero(t, p.X+p.Y+p.Z)
	assert.Equal(t, []float64{1, 2, 3}, []float64{p.PlacedLength, p.PlacedWidth, p.PlacedHeight})
}

func TestWeightBudget(t *testing.T) {
	unlimited := newWeightBudget(model.Container{})
	assert.True(t, unlimited.fits(1e9))

	limited := newWeightBudget(model.Container{MaxWeight: 10})
	assert.True(t, limited.fits(10))
	limited.add(6)
	assert.True(t, limited.fits(4))
	assert.False(t, limited.fits(4.5))
}

func TestCalculateStats(t *testing.T) {
	container := model.Container{Length: 1000, Width: 1000, Height: 1000}
	placements := []model.Placement{
		{PlacedLength: 500, PlacedWidth: 500, PlacedHeight: 500, Weight: 3, Placed: true},
		{PlacedLength: 500, PlacedWidth: 500, PlacedHeight: 500, Weight: 2, Placed: true},
		{PlacedLength: 900, PlacedWidth: 900, PlacedHeight: 900, Weight: 50},
	}

	stats := CalculateStats(placements, container)

	assert.Equal(t, 3, stats.TotalItems)
	assert.Equal(t, 2, stats.PlacedCount)
	assert.Equal(t, 1, stats.UnplacedCount)
	assert.InDelta(t, 0.25, stats.PlacedVolume, 1e-9)
	assert.InDelta(t, 1.0, stats.ContainerVolume, 1e-9)
	assert.InDelta(t, 5.0, stats.PlacedWeight, 1e-9)
	assert.Equal(t, 25.0, stats.Utilization)
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 33.3, round1(100.0/3))
	assert.Equal(t, 66.7, round1(200.0/3))
	assert.Equal(t, 0.0, round1(0))
}
