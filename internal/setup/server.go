package setup

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/razelos/appsmith/internal/infra/db/mongodb/helpers"
	"github.com/razelos/appsmith/internal/infra/metrics"
	"github.com/razelos/appsmith/internal/setup/config"
	"github.com/razelos/appsmith/internal/setup/factory"
	"github.com/razelos/appsmith/internal/setup/middlewares"
	"github.com/sirupsen/logrus"
)

// Server connects to MongoDB and Redis and returns the fully wrapped HTTP
// handler of the service.
func Server(ctx context.Context, cfg *config.Config, log *logrus.Logger) (http.Handler, error) {
	db, err := helpers.MongoHelper(ctx, cfg.MongoURI, cfg.DatabaseName, log)
	if err != nil {
		return nil, err
	}

	redisClient, err := helpers.RedisHelper(cfg.RedisURL, log)
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.NewMetrics(registry)

	deps, err := factory.NewDependencies(cfg, db, redisClient, m, log)
	if err != nil {
		return nil, fmt.Errorf("build dependencies: %w", err)
	}

	return Handler(deps, registry), nil
}

// Handler mounts every route behind the process-wide middlewares.
func Handler(deps *factory.Dependencies, registry *prometheus.Registry) http.Handler {
	mux := http.NewServeMux()
	SetupRoutes(mux, deps, registry)

	var handler http.Handler = mux
	handler = middlewares.CorsMiddleware(handler, deps.Config.AllowedOrigins)
	handler = middlewares.RecoveryMiddleware(handler, deps.Log)

	return handler
}
