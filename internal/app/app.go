// Package app provides application initialization and dependency injection.
package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cargo-pack-service/config"
	"github.com/guttosm/cargo-pack-service/internal/http"
	"github.com/rs/zerolog/log"
)

// App is the wired application.
type App struct {
	Router   *gin.Engine
	Services *ServiceComponents
	Database *DatabaseComponents
}

// InitializeApp creates and wires all application dependencies.
func InitializeApp(cfg config.Config) (*App, error) {
	InitializeLogger(cfg.Log)

	dbComponents := InitializeDatabase(cfg.Database)

	serviceComponents, err := InitializeServices(cfg, dbComponents)
	if err != nil {
		dbComponents.Close(context.Background())
		return nil, err
	}

	routerComponents := InitializeRouter(serviceComponents, dbComponents, cfg)

	log.Info().
		Str("default_algorithm", cfg.Optimizer.DefaultAlgorithm).
		Bool("run_history", dbComponents != nil).
		Bool("advisor", serviceComponents.Advisor != nil).
		Msg("Application initialized")

	return &App{
		Router:   http.NewRouter(routerComponents.Handler, routerComponents.HealthHandler, routerComponents.Config),
		Services: serviceComponents,
		Database: dbComponents,
	}, nil
}

// Close releases background workers and connections. Queued runs are written
// before the database is disconnected.
func (a *App) Close(ctx context.Context) {
	a.Services.Optimizer.Stop()
	a.Database.Close(ctx)
}
