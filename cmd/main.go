// Package main is the entry point for the cargo-pack-service application.
//
// @title           Cargo Pack Service API
// @version         1.0.0
// @description     3D container loading optimizer.
//
//	Places cuboid items in a container with first-fit decreasing, extreme points
//	or a genetic search, and reports utilization.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/cargo-pack-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @tag.name        Optimize
// @tag.description Container load optimization
//
// @tag.name        Containers
// @tag.description Container catalogue and recommendation
//
// @tag.name        Runs
// @tag.description Optimization run history
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"

	_ "github.com/guttosm/cargo-pack-service/docs" // swagger docs

	"github.com/guttosm/cargo-pack-service/config"
	"github.com/guttosm/cargo-pack-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	application, err := app.InitializeApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}

	server := app.NewServer(application.Router, cfg.Server, app.WithShutdownHook(application.Close))

	if err := server.Run(); err != nil {
		application.Close(context.Background())
		log.Fatal().Err(err).Msg("Server error")
	}
}
