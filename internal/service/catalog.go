package service

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/guttosm/cargo-pack-service/internal/domain/model"
	"github.com/guttosm/cargo-pack-service/internal/i18n"
	"gopkg.in/yaml.v3"
)

//go:embed containers.yaml
var defaultCatalogYAML []byte

// PackingBuffer is the extra volume share assumed lost to packing inefficiency
// when recommending a container.
const PackingBuffer = 0.3

// maxAlternatives is how many larger presets a recommendation lists.
const maxAlternatives = 2

var ErrContainerNotFound = errors.New("container not found")

type catalogFile struct {
	Containers []model.ContainerPreset `yaml:"containers"`
}

// Catalog is an immutable list of container presets ordered by volume.
type Catalog struct {
	presets []model.ContainerPreset
	byCode  map[string]int
}

// DefaultCatalog returns the built-in presets.
func DefaultCatalog() *Catalog {
	catalog, err := ParseCatalog(defaultCatalogYAML)
	if err != nil {
		panic(fmt.Sprintf("built-in container catalogue is invalid: %v", err))
	}
	return catalog
}

// LoadCatalog reads presets from a YAML file. An empty path returns the
// built-in catalogue.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read container catalogue: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes and validates a YAML catalogue. Codes are matched
// case-insensitively and must be unique.
func ParseCatalog(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse container catalogue: %w", err)
	}
	if len(file.Containers) == 0 {
		return nil, errors.New("container catalogue is empty")
	}

	presets := make([]model.ContainerPreset, 0, len(file.Containers))
	for i, p := range file.Containers {
		p.Code = strings.ToUpper(strings.TrimSpace(p.Code))
		if p.Code == "" {
			return nil, fmt.Errorf("container %d has no code", i)
		}
		c := p.Container
		if !(c.Length > 0 && c.Width > 0 && c.Height > 0) || c.MaxWeight < 0 ||
			math.IsInf(c.Volume(), 0) {
			return nil, fmt.Errorf("container %s has invalid dimensions", p.Code)
		}
		if p.Name == "" {
			p.Name = p.Code
		}
		presets = append(presets, p)
	}

	sort.SliceStable(presets, func(i, j int) bool {
		return presets[i].Container.Volume() < presets[j].Container.Volume()
	})

	byCode := make(map[string]int, len(presets))
	for i, p := range presets {
		if _, dup := byCode[p.Code]; dup {
			return nil, fmt.Errorf("duplicate container code %s", p.Code)
		}
		byCode[p.Code] = i
	}

	return &Catalog{presets: presets, byCode: byCode}, nil
}

// List returns a copy of the presets, smallest first.
func (c *Catalog) List() []model.ContainerPreset {
	out := make([]model.ContainerPreset, len(c.presets))
	copy(out, c.presets)
	return out
}

// Get looks up a preset by code.
func (c *Catalog) Get(code string) (model.ContainerPreset, error) {
	i, ok := c.byCode[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return model.ContainerPreset{}, fmt.Errorf("%w: %q", ErrContainerNotFound, code)
	}
	return c.presets[i], nil
}

// Recommend picks the smallest preset whose volume covers the cargo volume
// plus PackingBuffer, and up to two larger presets as alternatives.
// Reason is an i18n message key.
func (c *Catalog) Recommend(items []model.Item) model.ContainerRecommendation {
	var total float64
	for _, item := range items {
		total += item.Volume() * float64(item.Quantity)
	}
	totalM3 := total / model.CubicMillimetresPerCubicMetre
	required := totalM3 * (1 + PackingBuffer)

	rec := model.ContainerRecommendation{
		TotalVolume:    round2(totalM3),
		RequiredVolume: round2(required),
		Alternatives:   []model.ContainerPreset{},
	}

	idx := sort.Search(len(c.presets), func(i int) bool {
		return c.presets[i].VolumeM3() >= required
	})
	if idx == len(c.presets) {
		rec.Reason = i18n.MsgKeyNoContainerFits
		return rec
	}

	chosen := c.presets[idx]
	rec.Recommended = &chosen
	rec.Reason = i18n.MsgKeyContainerFits
	rec.Utilization = math.Round(totalM3 / chosen.VolumeM3() * 100)

	for _, p := range c.presets[idx+1:] {
		if len(rec.Alternatives) == maxAlternatives {
			break
		}
		if p.VolumeM3() > chosen.VolumeM3() {
			rec.Alternatives = append(rec.Alternatives, p)
		}
	}
	return rec
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
