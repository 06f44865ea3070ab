package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestOptimizeRoutes_RegisterRoutes(t *testing.T) {
	routes := NewOptimizeRoutes(NewHandler(nil), time.Minute)

	router := gin.New()
	routes.RegisterRoutes(router.Group("/api"))

	registered := make(map[string]bool)
	for _, r := range router.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	for _, want := range []string{
		http.MethodPost + " /api/optimize",
		http.MethodPost + " /api/optimize/stream",
		http.MethodPost + " /api/optimize/compare",
		http.MethodGet + " /api/containers",
		http.MethodPost + " /api/containers/recommend",
		http.MethodGet + " /api/runs",
		http.MethodGet + " /api/runs/summary",
	} {
		assert.True(t, registered[want], "missing route %s", want)
	}
	assert.Len(t, router.Routes(), 7)
}
