package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/guttosm/cargo-pack-service/internal/domain/model"
	"github.com/guttosm/cargo-pack-service/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cubes(quantity int, edge float64) []model.Item {
	return []model.Item{{ID: "cube", Length: edge, Width: edge, Height: edge, Weight: 1, Quantity: quantity}}
}

func codes(presets []model.ContainerPreset) []string {
	out := make([]string, len(presets))
	for i, p := range presets {
		out[i] = p.Code
	}
	return out
}

func TestDefaultCatalog(t *testing.T) {
	catalog := DefaultCatalog()

	list := catalog.List()
	assert.Equal(t, []string{"EPAL", "20ST", "40ST", "40HC", "45HC"}, codes(list))

	p, err := catalog.Get("40hc")
	require.NoError(t, err)
	assert.Equal(t, "40ft High Cube", p.Name)
	assert.Equal(t, 2698.0, p.Container.Height)
	assert.Equal(t, 26460.0, p.Container.MaxWeight)

	_, err = catalog.Get("53HC")
	assert.ErrorIs(t, err, ErrContainerNotFound)
}

func TestCatalog_ListReturnsCopy(t *testing.T) {
	catalog := DefaultCatalog()
	list := catalog.List()
	list[0].Code = "CHANGED"

	assert.Equal(t, "EPAL", catalog.List()[0].Code)
}

func TestCatalog_Recommend(t *testing.T) {
	catalog := DefaultCatalog()

	tests := []struct {
		name             string
		items            []model.Item
		wantCode         string
		wantAlternatives []string
		wantReason       string
		wantRequired     float64
	}{
		{
			name:             "pallet load",
			items:            cubes(1, 1000),
			wantCode:         "EPAL",
			wantAlternatives: []string{"20ST", "40ST"},
			wantReason:       i18n.MsgKeyContainerFits,
			wantRequired:     1.3,
		},
		{
			name:             "twenty foot load",
			items:            cubes(10, 1000),
			wantCode:         "20ST",
			wantAlternatives: []string{"40ST", "40HC"},
			wantReason:       i18n.MsgKeyContainerFits,
			wantRequired:     13,
		},
		{
			name:             "largest container without alternatives",
			items:            cubes(66, 1000),
			wantCode:         "45HC",
			wantAlternatives: []string{},
			wantReason:       i18n.MsgKeyContainerFits,
			wantRequired:     85.8,
		},
		{
			name:             "nothing fits",
			items:            cubes(100, 1000),
			wantAlternatives: []string{},
			wantReason:       i18n.MsgKeyNoContainerFits,
			wantRequired:     130,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := catalog.Recommend(tt.items)

			if tt.wantCode == "" {
				assert.Nil(t, rec.Recommended)
			} else {
				require.NotNil(t, rec.Recommended)
				assert.Equal(t, tt.wantCode, rec.Recommended.Code)
			}
			assert.Equal(t, tt.wantAlternatives, codes(rec.Alternatives))
			assert.Equal(t, tt.wantReason, rec.Reason)
			assert.InDelta(t, tt.wantRequired, rec.RequiredVolume, 0.01)
		})
	}
}

func TestCatalog_RecommendUtilization(t *testing.T) {
	rec := DefaultCatalog().Recommend(cubes(10, 1000))

	assert.Equal(t, 10.0, rec.TotalVolume)
	// 10 m³ in a 33.2 m³ container.
	assert.Equal(t, 30.0, rec.Utilization)
}

func TestParseCatalog(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
		want    []string
	}{
		{
			name: "sorted by volume with normalized codes",
			yaml: `
containers:
  - {code: big, length: 2000, width: 2000, height: 2000}
  - {code: " small ", name: Small, length: 1000, width: 1000, height: 1000, max_weight: 500}
`,
			want: []string{"SMALL", "BIG"},
		},
		{name: "malformed yaml", yaml: "containers: [", wantErr: "failed to parse"},
		{name: "empty", yaml: "containers: []", wantErr: "empty"},
		{name: "missing code", yaml: "containers:\n  - {length: 1, width: 1, height: 1}", wantErr: "no code"},
		{name: "zero dimension", yaml: "containers:\n  - {code: A, length: 0, width: 1, height: 1}", wantErr: "invalid dimensions"},
		{name: "negative weight", yaml: "containers:\n  - {code: A, length: 1, width: 1, height: 1, max_weight: -1}", wantErr: "invalid dimensions"},
		{
			name:    "duplicate code",
			yaml:    "containers:\n  - {code: A, length: 1, width: 1, height: 1}\n  - {code: a, length: 2, width: 2, height: 2}",
			wantErr: "duplicate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog, err := ParseCatalog([]byte(tt.yaml))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, codes(catalog.List()))
		})
	}
}

func TestParseCatalog_DefaultsNameToCode(t *testing.T) {
	catalog, err := ParseCatalog([]byte("containers:\n  - {code: crate, length: 1, width: 1, height: 1}"))
	require.NoError(t, err)

	p, err := catalog.Get("CRATE")
	require.NoError(t, err)
	assert.Equal(t, "CRATE", p.Name)
}

func TestLoadCatalog(t *testing.T) {
	t.Run("empty path uses built-in presets", func(t *testing.T) {
		catalog, err := LoadCatalog("")
		require.NoError(t, err)
		assert.Len(t, catalog.List(), 5)
	})

	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "containers.yaml")
		require.NoError(t, os.WriteFile(path, []byte("containers:\n  - {code: TRUCK, length: 13600, width: 2450, height: 2700}"), 0o600))

		catalog, err := LoadCatalog(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"TRUCK"}, codes(catalog.List()))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorContains(t, err, "failed to read")
	})
}
