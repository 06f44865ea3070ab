package model

// Placement is the outcome for a single expanded item instance.
// Unplaced records carry a zero position and the original dimensions.
//
// @Description Position and resolved dimensions of one item instance
type Placement struct {
	ItemID        string  `json:"item_id" example:"crate-a"`
	InstanceIndex int     `json:"instance_index" example:"0"`
	X             float64 `json:"x" example:"0"`
	Y             float64 `json:"y" example:"0"`
	Z             float64 `json:"z" example:"0"`
	PlacedLength  float64 `json:"placed_length" example:"500"`
	PlacedWidth   float64 `json:"placed_width" example:"400"`
	PlacedHeight  float64 `json:"placed_height" example:"300"`
	Weight        float64 `json:"weight,omitempty" example:"12.5"`
	Rotated       bool    `json:"rotated" example:"false"`
	Placed        bool    `json:"placed" example:"true"`
}

// Volume returns the resolved volume of the placement in cubic millimetres.
func (p Placement) Volume() float64 {
	return p.PlacedLength * p.PlacedWidth * p.PlacedHeight
}

// Stats summarises a placement set against its container.
//
// @Description Packing statistics. Volumes are in cubic metres, utilization in percent.
type Stats struct {
	TotalItems      int     `json:"total_items" bson:"total_items" example:"8"`
	PlacedCount     int     `json:"placed_count" bson:"placed_count" example:"8"`
	UnplacedCount   int     `json:"unplaced_count" bson:"unplaced_count" example:"0"`
	PlacedVolume    float64 `json:"placed_volume" bson:"placed_volume" example:"1"`
	ContainerVolume float64 `json:"container_volume" bson:"container_volume" example:"1"`
	PlacedWeight    float64 `json:"placed_weight" bson:"placed_weight" example:"100"`
	Utilization     float64 `json:"utilization" bson:"utilization" example:"100"`
}

// PackResult is the complete outcome of one optimization run.
//
// @Description Optimization result with placements, statistics and the algorithm actually used
type PackResult struct {
	Placements  []Placement `json:"placements"`
	Stats       Stats       `json:"stats"`
	Algorithm   string      `json:"algorithm" example:"extreme-points"`
	Generations int         `json:"generations,omitempty" example:"50"`
}

// Complete reports whether every instance was placed.
func (r PackResult) Complete() bool {
	return r.Stats.UnplacedCount == 0
}

// AlgorithmSummary is one row of an algorithm comparison.
//
// @Description Per-algorithm comparison row
type AlgorithmSummary struct {
	Algorithm     string  `json:"algorithm" example:"genetic"`
	Utilization   float64 `json:"utilization" example:"87.5"`
	PlacedCount   int     `json:"placed_count" example:"40"`
	UnplacedCount int     `json:"unplaced_count" example:"2"`
	ElapsedMs     int64   `json:"elapsed_ms" example:"120"`
}

// Comparison is the result of running every algorithm on the same input.
//
// @Description Comparison of all packing algorithms
type Comparison struct {
	ItemCount       int                `json:"item_count" example:"42"`
	ContainerVolume float64            `json:"container_volume" example:"33.2"`
	Results         []AlgorithmSummary `json:"results"`
	Recommended     string             `json:"recommended" example:"genetic"`
}

// ContainerRecommendation suggests the smallest catalogue container for a cargo list.
//
// @Description Container recommendation for a list of items
type ContainerRecommendation struct {
	Recommended    *ContainerPreset  `json:"recommended"`
	Reason         string            `json:"reason"`
	TotalVolume    float64           `json:"total_volume" example:"12.4"`
	RequiredVolume float64           `json:"required_volume" example:"16.1"`
	Utilization    float64           `json:"utilization,omitempty" example:"37"`
	Alternatives   []ContainerPreset `json:"alternatives"`
}
