package api

import (
	"net/http"

	"github.com/Reinaldocouto/urban-heat-safe-zones/internal/api/handlers"
	"github.com/Reinaldocouto/urban-heat-safe-zones/internal/ports"
	"github.com/Reinaldocouto/urban-heat-safe-zones/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(repo ports.CoolingPointRepository, engine *services.RouteEngine) http.Handler {
	mux := http.NewServeMux()

	pointHandler := &handlers.PointHandler{Repo: repo, Engine: engine}
	routeHandler := &handlers.RouteHandler{Engine: engine}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/points", pointHandler.List)
	mux.HandleFunc("/points/nearest", pointHandler.Nearest)
	mux.HandleFunc("/routes/plan", routeHandler.Plan)

	return requestIDMiddleware(loggingMiddleware(mux))
}
