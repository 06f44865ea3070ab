// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/guttosm/cargo-pack-service/internal/domain/model"
	"github.com/guttosm/cargo-pack-service/internal/i18n"
	"github.com/guttosm/cargo-pack-service/internal/packing"
)

// Request parameter bounds.
const (
	MaxGenerations    = 1000
	MaxPopulationSize = 500
	MaxGridStep       = 10000
	MaxItemLines      = 500
)

// OptimizeRequest is the JSON body of the optimize, stream and compare endpoints.
//
// Either container or container_code must be set; container_code wins when
// both are present. Zero-valued tuning fields take the server defaults.
//
// @Description Packing request
type OptimizeRequest struct {
	Items         []model.Item     `json:"items"`
	Container     *model.Container `json:"container,omitempty"`
	ContainerCode string           `json:"container_code,omitempty" example:"20ST"`
	// Algorithm is one of ffd, extreme-points, genetic or auto.
	Algorithm string `json:"algorithm,omitempty" example:"genetic" enums:"ffd,extreme-points,genetic,auto"`
	// AllowRotation defaults to true.
	AllowRotation  *bool   `json:"allow_rotation,omitempty" example:"true"`
	GridStep       int     `json:"grid_step,omitempty" example:"50"`
	Generations    int     `json:"generations,omitempty" example:"50"`
	PopulationSize int     `json:"population_size,omitempty" example:"20"`
	MutationRate   float64 `json:"mutation_rate,omitempty" example:"0.15"`
	// Seed makes genetic runs reproducible. Zero picks a random seed.
	Seed int64 `json:"seed,omitempty" example:"42"`
} // @name OptimizeRequest

// ValidationError represents a field validation error. Key is the i18n
// message key for the response.
type ValidationError struct {
	Field   string
	Message string
	Key     string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrNoItems is returned when the item list is empty.
	ErrNoItems = &ValidationError{
		Field:   "items",
		Message: "at least one item is required",
		Key:     i18n.ErrKeyValidationItems,
	}
	// ErrNoContainer is returned when neither container nor container_code is set.
	ErrNoContainer = &ValidationError{
		Field:   "container",
		Message: "container or container_code is required",
		Key:     i18n.ErrKeyValidationContainer,
	}
)

// Validate performs custom validation on the request.
func (r *OptimizeRequest) Validate() error {
	if err := validateItems(r.Items); err != nil {
		return err
	}

	r.ContainerCode = strings.TrimSpace(r.ContainerCode)
	if r.ContainerCode == "" {
		if r.Container == nil {
			return ErrNoContainer
		}
		if err := validateContainer(*r.Container); err != nil {
			return err
		}
	}

	r.Algorithm = strings.ToLower(strings.TrimSpace(r.Algorithm))
	if r.Algorithm != "" && !packing.IsKnown(r.Algorithm) {
		return &ValidationError{
			Field:   "algorithm",
			Message: fmt.Sprintf("must be one of %s or %s", strings.Join(packing.Algorithms(), ", "), packing.AlgorithmAuto),
			Key:     i18n.ErrKeyUnknownAlgorithm,
		}
	}

	switch {
	case r.GridStep < 0 || r.GridStep > MaxGridStep:
		return invalidRange("grid_step", 0, MaxGridStep)
	case r.Generations < 0 || r.Generations > MaxGenerations:
		return invalidRange("generations", 0, MaxGenerations)
	case r.PopulationSize < 0 || r.PopulationSize > MaxPopulationSize:
		return invalidRange("population_size", 0, MaxPopulationSize)
	case math.IsNaN(r.MutationRate) || r.MutationRate < 0 || r.MutationRate > 1:
		return invalidRange("mutation_rate", 0, 1)
	}
	return nil
}

// Options converts the request into packing options. Unset fields stay zero
// and are filled by the optimizer service.
func (r *OptimizeRequest) Options() packing.Options {
	allowRotation := true
	if r.AllowRotation != nil {
		allowRotation = *r.AllowRotation
	}
	return packing.Options{
		Algorithm:      r.Algorithm,
		AllowRotation:  allowRotation,
		GridStep:       r.GridStep,
		Generations:    r.Generations,
		PopulationSize: r.PopulationSize,
		MutationRate:   r.MutationRate,
		Seed:           r.Seed,
	}
}

// ContainerValue returns the inline container or the zero value.
func (r *OptimizeRequest) ContainerValue() model.Container {
	if r.Container == nil {
		return model.Container{}
	}
	return *r.Container
}

// RecommendContainerRequest is the body of the container recommendation endpoint.
//
// @Description Items to find a container for
type RecommendContainerRequest struct {
	Items []model.Item `json:"items"`
} // @name RecommendContainerRequest

// Validate performs custom validation on the request.
func (r *RecommendContainerRequest) Validate() error {
	return validateItems(r.Items)
}

// RunsQuery holds the query parameters of the run history endpoints.
type RunsQuery struct {
	Algorithm string `form:"algorithm"`
	RequestID string `form:"request_id"`
	Since     string `form:"since"`
	Until     string `form:"until"`
	Limit     int    `form:"limit"`
	Skip      int    `form:"skip"`
}

// ToOptions validates the query and converts it. Times are RFC 3339.
func (q *RunsQuery) ToOptions() (model.RunQueryOptions, error) {
	opts := model.RunQueryOptions{
		Algorithm: strings.ToLower(strings.TrimSpace(q.Algorithm)),
		RequestID: strings.TrimSpace(q.RequestID),
		Limit:     q.Limit,
		Skip:      q.Skip,
	}
	if q.Limit < 0 {
		return opts, &ValidationError{Field: "limit", Message: "must not be negative", Key: i18n.ErrKeyInvalidRequest}
	}
	if q.Skip < 0 {
		return opts, &ValidationError{Field: "skip", Message: "must not be negative", Key: i18n.ErrKeyInvalidRequest}
	}

	for _, p := range []struct {
		field string
		raw   string
		dst   **time.Time
	}{
		{"since", q.Since, &opts.StartTime},
		{"until", q.Until, &opts.EndTime},
	} {
		if p.raw == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, p.raw)
		if err != nil {
			return opts, &ValidationError{Field: p.field, Message: "must be an RFC 3339 timestamp", Key: i18n.ErrKeyInvalidRequest}
		}
		*p.dst = &t
	}
	return opts, nil
}

func validateItems(items []model.Item) error {
	if len(items) == 0 {
		return ErrNoItems
	}
	if len(items) > MaxItemLines {
		return &ValidationError{
			Field:   "items",
			Message: fmt.Sprintf("at most %d item lines are accepted", MaxItemLines),
			Key:     i18n.ErrKeyTooManyInstances,
		}
	}
	for i, item := range items {
		field := fmt.Sprintf("items[%d]", i)
		switch {
		case !positive(item.Length) || !positive(item.Width) || !positive(item.Height):
			return itemError(field, "dimensions must be positive")
		case !positive(item.Weight):
			return itemError(field, "weight must be positive")
		case item.Quantity <= 0:
			return itemError(field, "quantity must be a positive integer")
		}
	}
	return nil
}

func validateContainer(c model.Container) error {
	if !positive(c.Length) || !positive(c.Width) || !positive(c.Height) {
		return &ValidationError{Field: "container", Message: "dimensions must be positive", Key: i18n.ErrKeyValidationContainer}
	}
	if c.MaxWeight < 0 || math.IsNaN(c.MaxWeight) || math.IsInf(c.MaxWeight, 0) {
		return &ValidationError{Field: "container.max_weight", Message: "must be zero or positive", Key: i18n.ErrKeyValidationContainer}
	}
	return nil
}

func itemError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message, Key: i18n.ErrKeyValidationItem}
}

func invalidRange(field string, lo, hi float64) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf("must be between %g and %g", lo, hi),
		Key:     i18n.ErrKeyInvalidRequest,
	}
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
