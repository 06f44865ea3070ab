package advisor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/guttosm/cargo-pack-service/internal/circuitbreaker"
	"github.com/guttosm/cargo-pack-service/internal/domain/model"
	"github.com/guttosm/cargo-pack-service/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testItems = []model.Item{
		{ID: "a", Length: 500, Width: 400, Height: 300, Weight: 12, Quantity: 4},
		{ID: "b", Length: 200, Width: 200, Height: 200, Weight: 3, Quantity: 2},
	}
	testContainer = model.Container{Length: 5898, Width: 2352, Height: 2393, MaxWeight: 28200}
)

func newBreaker(name string) *circuitbreaker.CircuitBreaker {
	return circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: 2,
		SuccessThreshold: 1,
		Timeout:          time.Hour,
		Name:             name,
	})
}

func TestClient_Recommend(t *testing.T) {
	var received predictRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, predictPath, r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"recommended_algorithm":"genetic","confidence":0.82,"features":{"total_items":6}}`))
	}))
	defer server.Close()

	before := testutil.ToFloat64(metrics.AdvisorRequestsTotal.WithLabelValues(OutcomeError))
	client := New(server.URL, time.Second, WithCircuitBreaker(newBreaker("advisor-ok")))

	rec, err := client.Recommend(context.Background(), testItems, testContainer)

	require.NoError(t, err)
	assert.Equal(t, "genetic", rec.Algorithm)
	assert.InDelta(t, 0.82, rec.Confidence, 1e-9)

	require.Len(t, received.Items, 2)
	assert.Equal(t, 500.0, received.Items[0].Length)
	assert.Equal(t, 4, received.Items[0].Quantity)
	assert.Equal(t, 3.0, received.Items[1].Weight)
	assert.Equal(t, 2393.0, received.Container.Height)

	after := testutil.ToFloat64(metrics.AdvisorRequestsTotal.WithLabelValues(OutcomeError))
	assert.Equal(t, before, after)
}

func TestClient_RecommendErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `{"detail":"model not loaded"}`, wantErr: ErrBadResponse},
		{name: "malformed json", status: http.StatusOK, body: `{"recommended_algorithm":`, wantErr: ErrBadResponse},
		{name: "missing algorithm", status: http.StatusOK, body: `{"confidence":0.9}`, wantErr: ErrBadResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := New(server.URL, time.Second, WithCircuitBreaker(newBreaker("advisor-"+tt.name)))
			_, err := client.Recommend(context.Background(), testItems, testContainer)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	client := New(server.URL, 50*time.Millisecond, WithCircuitBreaker(newBreaker("advisor-timeout")))

	start := time.Now()
	_, err := client.Recommend(context.Background(), testItems, testContainer)

	assert.Error(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestClient_CircuitOpensAfterFailures(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := New(server.URL, time.Second, WithCircuitBreaker(newBreaker("advisor-open")))
	before := testutil.ToFloat64(metrics.AdvisorRequestsTotal.WithLabelValues(OutcomeCircuitOpen))

	for i := 0; i < 2; i++ {
		_, err := client.Recommend(context.Background(), testItems, testContainer)
		require.ErrorIs(t, err, ErrBadResponse)
	}
	require.True(t, client.CircuitBreaker().IsOpen())

	_, err := client.Recommend(context.Background(), testItems, testContainer)

	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.AdvisorRequestsTotal.WithLabelValues(OutcomeCircuitOpen)))
}

func TestNew_DefaultBreaker(t *testing.T) {
	client := New("http://localhost:5000", time.Second, WithHTTPClient(nil))

	require.NotNil(t, client.CircuitBreaker())
	assert.Equal(t, "advisor", client.CircuitBreaker().Name())
	assert.Equal(t, time.Second, client.httpClient.Timeout)
}
