package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/Reinaldocouto/urban-heat-safe-zones/internal/api/dto"
	"github.com/Reinaldocouto/urban-heat-safe-zones/internal/domain"
	"github.com/Reinaldocouto/urban-heat-safe-zones/internal/services"
)

type RouteHandler struct {
	Engine *services.RouteEngine
}

// Plan calculates a heat-safe route between two coordinates.
//
// Validation failures are 400s. A collaborator failure that prevents the
// calculation (RouteCalculationError) is a 502 so clients can offer a retry;
// a route with some forecasts absent is still a 200 with a degraded risk
// estimate, per the graceful-degradation policy.
func (h *RouteHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.PlanRouteRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if req.StartLat == nil || req.StartLon == nil || req.EndLat == nil || req.EndLon == nil {
		writeError(w, r, http.StatusBadRequest, "start_lat, start_lon, end_lat and end_lon are required")
		return
	}

	start := domain.Coordinate{Lat: *req.StartLat, Lon: *req.StartLon}
	end := domain.Coordinate{Lat: *req.EndLat, Lon: *req.EndLon}

	route, err := h.Engine.CalculateRoute(r.Context(), start, end)
	if err != nil {
		var calcErr *domain.RouteCalculationError
		switch {
		case errors.Is(err, domain.ErrInvalidCoordinate):
			writeError(w, r, http.StatusBadRequest, err.Error())
		case errors.As(err, &calcErr):
			log.Printf("route calculation failed: %v", err)
			writeError(w, r, http.StatusBadGateway, "could not calculate route, please retry")
		default:
			log.Printf("plan route failed: %v", err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, r, http.StatusOK, dto.FromRoute(route))
}
