// Package model defines the core domain entities for the cargo pack service.
package model

// Item is a cuboid cargo line. Quantity expands into independent unit
// instances that share the same dimensions.
//
// @Description Cargo item with dimensions in millimetres and weight in kilograms
// @Example {"id": "crate-a", "length": 500, "width": 400, "height": 300, "weight": 12.5, "quantity": 4}
type Item struct {
	ID       string  `json:"id" example:"crate-a"`
	Length   float64 `json:"length" example:"500"`
	Width    float64 `json:"width" example:"400"`
	Height   float64 `json:"height" example:"300"`
	Weight   float64 `json:"weight" example:"12.5"`
	Quantity int     `json:"quantity" example:"4"`
}

// Volume returns the volume of a single unit in cubic millimetres.
func (i Item) Volume() float64 {
	return i.Length * i.Width * i.Height
}

// Container is the rectangular space items are loaded into.
// MaxWeight of zero means the container has no weight limit.
//
// @Description Container interior dimensions in millimetres
// @Example {"length": 5898, "width": 2352, "height": 2393, "max_weight": 28200}
type Container struct {
	Length    float64 `json:"length" yaml:"length" bson:"length" example:"5898"`
	Width     float64 `json:"width" yaml:"width" bson:"width" example:"2352"`
	Height    float64 `json:"height" yaml:"height" bson:"height" example:"2393"`
	MaxWeight float64 `json:"max_weight,omitempty" yaml:"max_weight" bson:"max_weight,omitempty" example:"28200"`
}

// Volume returns the container volume in cubic millimetres.
func (c Container) Volume() float64 {
	return c.Length * c.Width * c.Height
}

// HasWeightLimit reports whether placements must respect MaxWeight.
func (c Container) HasWeightLimit() bool {
	return c.MaxWeight > 0
}

// ContainerPreset is a named container from the catalogue.
//
// @Description Catalogue container preset
type ContainerPreset struct {
	Code        string    `json:"code" yaml:"code" example:"20ST"`
	Name        string    `json:"name" yaml:"name" example:"20ft Standard"`
	Description string    `json:"description,omitempty" yaml:"description"`
	Container   Container `json:"container" yaml:",inline"`
}

// VolumeM3 returns the preset volume in cubic metres.
func (p ContainerPreset) VolumeM3() float64 {
	return p.Container.Volume() / CubicMillimetresPerCubicMetre
}

// CubicMillimetresPerCubicMetre converts mm³ to m³.
const CubicMillimetresPerCubicMetre = 1e9
