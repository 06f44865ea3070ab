package dto

import (
	"net/http"
	"time"

	"github.com/guttosm/cargo-pack-service/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeUnavailable indicates a dependency is down or disabled.
	ErrCodeUnavailable = "service_unavailable"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response data
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2026-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message,omitempty" example:"items: at least one item is required"`
	// Details contains field level information, keyed by field name
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2026-01-28T10:00:00Z"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusServiceUnavailable:
		return ErrCodeUnavailable
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	default:
		return ErrCodeInternal
	}
}

// Advice is the advisory recommendation considered for an "auto" request.
// @Description Accepted advisory recommendation
type Advice struct {
	Algorithm  string  `json:"algorithm" example:"genetic"`
	Confidence float64 `json:"confidence" example:"0.82"`
} // @name Advice

// OptimizeResponse is a packing result plus how it was produced.
// @Description Optimization result
type OptimizeResponse struct {
	model.PackResult
	// RequestedAlgorithm is the algorithm named in the request after defaults.
	RequestedAlgorithm string          `json:"requested_algorithm" example:"auto"`
	Source             string          `json:"source" example:"advisor" enums:"direct,advisor,best,cache"`
	Cached             bool            `json:"cached" example:"false"`
	DurationMs         int64           `json:"duration_ms" example:"84"`
	Container          model.Container `json:"container"`
	Advice             *Advice         `json:"advice,omitempty"`
} // @name OptimizeResponse

// ContainersResponse lists the container catalogue.
// @Description Container catalogue
type ContainersResponse struct {
	Containers []model.ContainerPreset `json:"containers"`
} // @name ContainersResponse

// RunsResponse is one page of run history.
// @Description Run history page
type RunsResponse struct {
	Runs  []*model.RunRecord `json:"runs"`
	Total int64              `json:"total" example:"120"`
	Limit int                `json:"limit" example:"50"`
	Skip  int                `json:"skip" example:"0"`
} // @name RunsResponse

// RunsSummaryResponse aggregates run history per algorithm.
// @Description Run history per algorithm
type RunsSummaryResponse struct {
	Algorithms []model.AlgorithmUsage `json:"algorithms"`
} // @name RunsSummaryResponse

// StreamStarted is the payload of the "started" stream event.
// @Description Stream start event
type StreamStarted struct {
	RunID              string `json:"run_id" example:"0b8f9f6e-3c1d-4f1a-9d8e-0f1e2d3c4b5a"`
	RequestID          string `json:"request_id,omitempty"`
	RequestedAlgorithm string `json:"requested_algorithm,omitempty" example:"genetic"`
	TotalInstances     int    `json:"total_instances" example:"42"`
	Message            string `json:"message" example:"Optimization started"`
} // @name StreamStarted

// StreamProgress is the payload of a "progress" stream event.
// @Description Per-generation progress event
type StreamProgress struct {
	RunID            string  `json:"run_id"`
	Generation       int     `json:"generation" example:"12"`
	TotalGenerations int     `json:"total_generations" example:"50"`
	Percent          float64 `json:"percent" example:"24"`
	BestFitness      float64 `json:"best_fitness" example:"81.3"`
	CurrentFitness   float64 `json:"current_fitness" example:"79.9"`
} // @name StreamProgress

// StreamComplete is the payload of the "complete" stream event.
// @Description Stream completion event
type StreamComplete struct {
	RunID   string           `json:"run_id"`
	Message string           `json:"message" example:"Optimization completed"`
	Result  OptimizeResponse `json:"result"`
} // @name StreamComplete

// StreamError is the payload of the "error" stream event.
// @Description Stream error event
type StreamError struct {
	RunID   string `json:"run_id"`
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message"`
} // @name StreamError
