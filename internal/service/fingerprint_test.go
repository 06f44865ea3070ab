package service

import (
	"testing"

	"github.com/guttosm/cargo-pack-service/internal/domain/model"
	"github.com/guttosm/cargo-pack-service/internal/packing"
	"github.com/stretchr/testify/assert"
)

func TestFingerprint(t *testing.T) {
	items := []model.Item{
		{ID: "a", Length: 500, Width: 400, Height: 300, Weight: 10, Quantity: 2},
		{ID: "b", Length: 100, Width: 100, Height: 100, Weight: 1, Quantity: 5},
	}
	container := model.Container{Length: 5898, Width: 2352, Height: 2393}
	opts := packing.DefaultOptions()
	base := Fingerprint(items, container, opts)

	t.Run("stable for equal input", func(t *testing.T) {
		copied := append([]model.Item(nil), items...)
		assert.Equal(t, base, Fingerprint(copied, container, opts))
	})

	t.Run("ignores progress callback and instance cap", func(t *testing.T) {
		o := opts
		o.OnProgress = func(packing.Progress) {}
		o.MaxInstances = 10
		assert.Equal(t, base, Fingerprint(items, container, o))
	})

	changes := map[string]func() (items []model.Item, container model.Container, opts packing.Options){
		"item order": func() ([]model.Item, model.Container, packing.Options) {
			return []model.Item{items[1], items[0]}, container, opts
		},
		"quantity": func() ([]model.Item, model.Container, packing.Options) {
			changed := append([]model.Item(nil), items...)
			changed[0].Quantity = 3
			return changed, container, opts
		},
		"item id": func() ([]model.Item, model.Container, packing.Options) {
			changed := append([]model.Item(nil), items...)
			changed[1].ID = "c"
			return changed, container, opts
		},
		"container weight": func() ([]model.Item, model.Container, packing.Options) {
			c := container
			c.MaxWeight = 100
			return items, c, opts
		},
		"algorithm": func() ([]model.Item, model.Container, packing.Options) {
			o := opts
			o.Algorithm = packing.AlgorithmFFD
			return items, container, o
		},
		"rotation": func() ([]model.Item, model.Container, packing.Options) {
			o := opts
			o.AllowRotation = false
			return items, container, o
		},
		"seed": func() ([]model.Item, model.Container, packing.Options) {
			o := opts
			o.Seed = 1
			return items, container, o
		},
	}
	for name, change := range changes {
		t.Run("changes with "+name, func(t *testing.T) {
			assert.NotEqual(t, base, Fingerprint(change()))
		})
	}
}

func TestCacheable(t *testing.T) {
	tests := []struct {
		algorithm string
		seed      int64
		want      bool
	}{
		{algorithm: packing.AlgorithmFFD, want: true},
		{algorithm: packing.AlgorithmExtremePoints, want: true},
		{algorithm: packing.AlgorithmGenetic, want: false},
		{algorithm: packing.AlgorithmGenetic, seed: 42, want: true},
		{algorithm: packing.AlgorithmAuto, want: false},
		{algorithm: packing.AlgorithmAuto, seed: 42, want: true},
		{algorithm: "bogus", seed: 42, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.algorithm, func(t *testing.T) {
			assert.Equal(t, tt.want, Cacheable(packing.Options{Algorithm: tt.algorithm, Seed: tt.seed}))
		})
	}
}

func TestCloneResult(t *testing.T) {
	original := model.PackResult{Placements: []model.Placement{{ItemID: "a", X: 1}}}
	clone := cloneResult(original)
	clone.Placements[0].X = 5

	assert.Equal(t, 1.0, original.Placements[0].X)
	assert.Nil(t, cloneResult(model.PackResult{}).Placements)
}
