package setup

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/razelos/appsmith/internal/infra/metrics"
	"github.com/razelos/appsmith/internal/setup/factory"
	"github.com/razelos/appsmith/internal/setup/routes"
)

func SetupRoutes(server *http.ServeMux, deps *factory.Dependencies, registry *prometheus.Registry) {
	apiServer := http.NewServeMux()
	routes.WorkspaceMemberRoutes(apiServer, deps)

	server.Handle("/api/", http.StripPrefix("/api", deps.Metrics.Middleware(apiServer)))
	server.Handle("GET /metrics", metrics.Handler(registry))
}
