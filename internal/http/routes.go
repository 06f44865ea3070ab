package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cargo-pack-service/internal/middleware"
)

// RouteGroup defines a group of routes that can be registered.
type RouteGroup interface {
	// RegisterRoutes registers routes to the given router group.
	RegisterRoutes(rg *gin.RouterGroup)
}

// OptimizeRoutes registers the optimization, container and run history routes.
type OptimizeRoutes struct {
	handler        *Handler
	compareTimeout time.Duration
}

var _ RouteGroup = (*OptimizeRoutes)(nil)

// NewOptimizeRoutes creates a new OptimizeRoutes instance. A positive
// compareTimeout bounds each comparison; zero leaves it unbounded.
func NewOptimizeRoutes(handler *Handler, compareTimeout time.Duration) *OptimizeRoutes {
	return &OptimizeRoutes{handler: handler, compareTimeout: compareTimeout}
}

// RegisterRoutes registers the routes under rg, normally /api.
func (r *OptimizeRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	optimize := rg.Group("/optimize")
	optimize.POST("", r.handler.Optimize)
	optimize.POST("/stream", r.handler.OptimizeStream)
	optimize.POST("/compare", middleware.Deadline(r.compareTimeout), r.handler.Compare)

	containers := rg.Group("/containers")
	containers.GET("", r.handler.Containers)
	containers.POST("/recommend", r.handler.RecommendContainer)

	runs := rg.Group("/runs")
	runs.GET("", r.handler.Runs)
	runs.GET("/summary", r.handler.RunsSummary)
}
