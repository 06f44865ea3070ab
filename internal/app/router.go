// Package app provides router configuration.
package app

import (
	"github.com/guttosm/cargo-pack-service/config"
	"github.com/guttosm/cargo-pack-service/internal/http"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter builds the HTTP handlers and registers every dependency
// with the readiness probe.
func InitializeRouter(services *ServiceComponents, db *DatabaseComponents, cfg config.Config) *RouterComponents {
	var handlerOpts []http.HandlerOption
	healthHandler := http.NewHealthHandler()

	if db != nil {
		handlerOpts = append(handlerOpts, http.WithRunHistory(db.History))
		healthHandler.RegisterChecker("mongodb", http.HealthCheckFunc(db.DB.HealthCheck))
		healthHandler.RegisterCircuitBreaker("mongodb_runs", db.CircuitBreaker)
	}

	if services.Advisor != nil {
		healthHandler.RegisterCircuitBreaker("advisor", services.Advisor.CircuitBreaker())
	}

	return &RouterComponents{
		Handler:       http.NewHandler(services.Optimizer, handlerOpts...),
		HealthHandler: healthHandler,
		Config: http.RouterConfig{
			CORSOrigins:    cfg.Server.CORSOrigins,
			SwaggerUser:    cfg.Server.SwaggerUser,
			SwaggerPass:    cfg.Server.SwaggerPass,
			CompareTimeout: cfg.Optimizer.CompareTimeout,
		},
	}
}
