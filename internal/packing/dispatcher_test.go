package packing

import (
	"math"
	"testing"

	"github.com/guttosm/cargo-pack-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPack_SelectsAlgorithm(t *testing.T) {
	container := model.Container{Length: 1200, Width: 1000, Height: 800}

	for _, name := range Algorithms() {
		t.Run(name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.Algorithm = name
			opts.Generations = 3
			opts.Seed = 5

			result, err := Pack(mixedItems(), container, opts)

			require.NoError(t, err)
			assert.Equal(t, name, result.Algorithm)
			assertValidResult(t, mixedItems(), container, result)
		})
	}
}

func TestPack_UnknownAlgorithm(t *testing.T) {
	opts := DefaultOptions()
	opts.Algorithm = "simulated-annealing"

	_, err := Pack(mixedItems(), model.Container{Length: 1, Width: 1, Height: 1}, opts)

	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestPack_EmptyItems(t *testing.T) {
	result, err := Pack(nil, model.Container{Length: 100, Width: 100, Height: 100}, DefaultOptions())

	require.NoError(t, err)
	assert.Empty(t, result.Placements)
	assert.Equal(t, 0, result.Stats.TotalItems)
	assert.Equal(t, 0.0, result.Stats.Utilization)
}

func TestPack_ProgressCallback(t *testing.T) {
	calls := 0
	opts := DefaultOptions()
	opts.Generations = 4
	opts.Seed = 1
	opts.OnProgress = func(Progress) { calls++ }

	_, err := Pack(mixedItems(), model.Container{Length: 1000, Width: 1000, Height: 1000}, opts)

	require.NoError(t, err)
	assert.Equal(t, 4, calls)
}

func TestValidate(t *testing.T) {
	good := model.Container{Length: 100, Width: 100, Height: 100}
	item := model.Item{ID: "a", Length: 10, Width: 10, Height: 10, Weight: 1, Quantity: 2}

	tests := []struct {
		name         string
		items        []model.Item
		container    model.Container
		maxInstances int
		wantErr      bool
	}{
		{"valid", []model.Item{item}, good, 0, false},
		{"empty items are valid", nil, good, 0, false},
		{"zero container length", []model.Item{item}, model.Container{Width: 1, Height: 1}, 0, true},
		{"negative max weight", []model.Item{item}, model.Container{Length: 1, Width: 1, Height: 1, MaxWeight: -1}, 0, true},
		{"infinite container", []model.Item{item}, model.Container{Length: math.Inf(1), Width: 1, Height: 1}, 0, true},
		{"NaN item height", []model.Item{{ID: "n", Length: 1, Width: 1, Height: math.NaN(), Weight: 1, Quantity: 1}}, good, 0, true},
		{"negative width", []model.Item{{ID: "n", Length: 1, Width: -1, Height: 1, Weight: 1, Quantity: 1}}, good, 0, true},
		{"zero weight", []model.Item{{ID: "n", Length: 1, Width: 1, Height: 1, Quantity: 1}}, good, 0, true},
		{"zero quantity", []model.Item{{ID: "n", Length: 1, Width: 1, Height: 1, Weight: 1}}, good, 0, true},
		{"within instance cap", []model.Item{item}, good, 2, false},
		{"over instance cap", []model.Item{item}, good, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.items, tt.container, tt.maxInstances)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPack_InvalidInput(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxInstances = 10

	_, err := Pack(mixedItems(), model.Container{Length: 1000, Width: 1000, Height: 1000}, opts)

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, err, ErrTooManyInstances)
}

func TestPackBest(t *testing.T) {
	container := model.Container{Length: 1000, Width: 800, Height: 600}
	items := mixedItems()

	best := PackBest(items, container, true)

	assertValidResult(t, items, container, best)
	for _, name := range []string{AlgorithmFFD, AlgorithmExtremePoints} {
		opts := DefaultOptions()
		opts.Algorithm = name
		single, err := Pack(items, container, opts)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, best.Stats.Utilization, single.Stats.Utilization, name)
	}
}

func TestPackBest_TieFavorsFFD(t *testing.T) {
	container := model.Container{Length: 1000, Width: 1000, Height: 1000}
	items := []model.Item{{ID: "cube", Length: 500, Width: 500, Height: 500, Weight: 1, Quantity: 8}}

	best := PackBest(items, container, true)

	assert.Equal(t, AlgorithmFFD, best.Algorithm)
	assert.Equal(t, 100.0, best.Stats.Utilization)
}

func TestPack_Auto(t *testing.T) {
	opts := DefaultOptions()
	opts.Algorithm = AlgorithmAuto
	opts.Seed = 3
	calls := 0
	opts.OnProgress = func(Progress) { calls++ }

	result, err := Pack(mixedItems(), model.Container{Length: 1000, Width: 800, Height: 600}, opts)

	require.NoError(t, err)
	assert.Contains(t, Algorithms(), result.Algorithm)
	assert.Equal(t, BestOfGenerations, calls)
}

func TestIsKnown(t *testing.T) {
	for _, name := range append(Algorithms(), AlgorithmAuto) {
		assert.True(t, IsKnown(name), name)
	}
	assert.False(t, IsKnown(""))
	assert.False(t, IsKnown("FFD"))
}
