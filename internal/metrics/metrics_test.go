package metrics

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(PrometheusMiddleware())
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	router.GET("/error", func(c *gin.Context) {
		c.String(http.StatusInternalServerError, "error")
	})

	tests := []struct {
		name           string
		path           string
		expectedStatus int
	}{
		{
			name:           "records metrics for successful request",
			path:           "/test",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "records metrics for error request",
			path:           "/error",
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(HTTPRequestTotal.WithLabelValues(http.MethodGet, tt.path, strconv.Itoa(tt.expectedStatus)))

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			after := testutil.ToFloat64(HTTPRequestTotal.WithLabelValues(http.MethodGet, tt.path, strconv.Itoa(tt.expectedStatus)))
			assert.Equal(t, before+1, after)
		})
	}
}

func TestRecordOptimization(t *testing.T) {
	runs := OptimizationsTotal.WithLabelValues("ffd", "success")
	unplaced := UnplacedInstancesTotal.WithLabelValues("ffd")
	beforeRuns := testutil.ToFloat64(runs)
	beforeUnplaced := testutil.ToFloat64(unplaced)

	RecordOptimization("ffd", 20*time.Millisecond, 72.5, 3)
	RecordOptimization("ffd", 10*time.Millisecond, 100, 0)

	assert.Equal(t, beforeRuns+2, testutil.ToFloat64(runs))
	assert.Equal(t, beforeUnplaced+3, testutil.ToFloat64(unplaced))
}

func TestRecordOptimizationError(t *testing.T) {
	failed := OptimizationsTotal.WithLabelValues("genetic", "error")
	before := testutil.ToFloat64(failed)

	RecordOptimizationError("genetic")

	assert.Equal(t, before+1, testutil.ToFloat64(failed))
}

func TestRecordGeneration(t *testing.T) {
	before := testutil.ToFloat64(GeneticGenerationsTotal)

	for i := 0; i < 5; i++ {
		RecordGeneration()
	}

	assert.Equal(t, before+5, testutil.ToFloat64(GeneticGenerationsTotal))
}

func TestRecordAdvisorRequest(t *testing.T) {
	accepted := AdvisorRequestsTotal.WithLabelValues("accepted")
	before := testutil.ToFloat64(accepted)

	RecordAdvisorRequest("accepted")
	RecordAdvisorRequest("error")

	assert.Equal(t, before+1, testutil.ToFloat64(accepted))
}

func TestRecordPanic(t *testing.T) {
	stream := PanicsRecoveredTotal.WithLabelValues("/api/optimize/stream")
	before := testutil.ToFloat64(stream)

	RecordPanic("/api/optimize/stream")

	assert.Equal(t, before+1, testutil.ToFloat64(stream))
}

func TestRecordCacheOperation(t *testing.T) {
	hits := CacheOperationsTotal.WithLabelValues("get", "hit")
	before := testutil.ToFloat64(hits)

	RecordCacheOperation("get", "hit")
	RecordCacheOperation("get", "miss")

	assert.Equal(t, before+1, testutil.ToFloat64(hits))
}

func TestUpdateCacheMetrics(t *testing.T) {
	UpdateCacheMetrics(50, 100)
	assert.Equal(t, 50.0, testutil.ToFloat64(CacheSize))
	assert.Equal(t, 100.0, testutil.ToFloat64(CacheCapacity))

	UpdateCacheMetrics(75, 100)
	assert.Equal(t, 75.0, testutil.ToFloat64(CacheSize))
}
