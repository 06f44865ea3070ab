// Package advisor is a client for the external algorithm advisory service.
// The service inspects a cargo list and suggests which placement strategy is
// likely to produce the best load.
package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/guttosm/cargo-pack-service/internal/circuitbreaker"
	"github.com/guttosm/cargo-pack-service/internal/domain/model"
	"github.com/guttosm/cargo-pack-service/internal/metrics"
)

const predictPath = "/predict/algorithm"

// maxResponseBytes bounds how much of an advisory response is read.
const maxResponseBytes = 64 << 10

// Failure outcomes reported to metrics.RecordAdvisorRequest. Successful
// lookups are reported by the caller once it has judged the recommendation.
const (
	OutcomeError       = "error"
	OutcomeCircuitOpen = "circuit_open"
)

var ErrBadResponse = errors.New("advisor returned an unusable response")

// Recommendation is the advisory service's suggestion.
type Recommendation struct {
	Algorithm  string  `json:"recommended_algorithm"`
	Confidence float64 `json:"confidence"`
}

// Advisor suggests a placement strategy for a cargo list.
type Advisor interface {
	Recommend(ctx context.Context, items []model.Item, container model.Container) (Recommendation, error)
}

type predictItem struct {
	Length   float64 `json:"length"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Quantity int     `json:"quantity"`
	Weight   float64 `json:"weight"`
}

type predictContainer struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type predictRequest struct {
	Items     []predictItem    `json:"items"`
	Container predictContainer `json:"container"`
}

// Client calls the advisory service over HTTP behind a circuit breaker.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithCircuitBreaker guards advisory calls with cb.
func WithCircuitBreaker(cb *circuitbreaker.CircuitBreaker) Option {
	return func(c *Client) {
		c.circuitBreaker = cb
	}
}

// New creates a client for the service at baseURL. Each call is bounded by timeout.
func New(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.circuitBreaker == nil {
		c.circuitBreaker = circuitbreaker.New(circuitbreaker.Config{
			FailureThreshold: 3,
			SuccessThreshold: 1,
			Timeout:          30 * time.Second,
			Name:             "advisor",
		})
	}
	return c
}

// Recommend asks the advisory service for a strategy. Errors are expected and
// callers fall back to their own choice.
func (c *Client) Recommend(ctx context.Context, items []model.Item, container model.Container) (Recommendation, error) {
	rec, err := circuitbreaker.Do(ctx, c.circuitBreaker, func() (Recommendation, error) {
		return c.predict(ctx, items, container)
	})

	switch {
	case err == nil:
	case errors.Is(err, circuitbreaker.ErrCircuitOpen):
		metrics.RecordAdvisorRequest(OutcomeCircuitOpen)
	default:
		metrics.RecordAdvisorRequest(OutcomeError)
	}
	return rec, err
}

// CircuitBreaker returns the breaker guarding the client.
func (c *Client) CircuitBreaker() *circuitbreaker.CircuitBreaker {
	return c.circuitBreaker
}

func (c *Client) predict(ctx context.Context, items []model.Item, container model.Container) (Recommendation, error) {
	body, err := json.Marshal(newPredictRequest(items, container))
	if err != nil {
		return Recommendation{}, fmt.Errorf("encode advisor request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+predictPath, bytes.NewReader(body))
	if err != nil {
		return Recommendation{}, fmt.Errorf("build advisor request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Recommendation{}, fmt.Errorf("call advisor: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return Recommendation{}, fmt.Errorf("%w: status %d", ErrBadResponse, resp.StatusCode)
	}

	var rec Recommendation
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&rec); err != nil {
		return Recommendation{}, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	if rec.Algorithm == "" {
		return Recommendation{}, fmt.Errorf("%w: missing recommended_algorithm", ErrBadResponse)
	}
	return rec, nil
}

func newPredictRequest(items []model.Item, container model.Container) predictRequest {
	req := predictRequest{
		Items: make([]predictItem, len(items)),
		Container: predictContainer{
			Length: container.Length,
			Width:  container.Width,
			Height: container.Height,
		},
	}
	for i, item := range items {
		req.Items[i] = predictItem{
			Length:   item.Length,
			Width:    item.Width,
			Height:   item.Height,
			Quantity: item.Quantity,
			Weight:   item.Weight,
		}
	}
	return req
}
