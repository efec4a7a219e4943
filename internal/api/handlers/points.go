package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/Reinaldocouto/urban-heat-safe-zones/internal/api/dto"
	"github.com/Reinaldocouto/urban-heat-safe-zones/internal/domain"
	"github.com/Reinaldocouto/urban-heat-safe-zones/internal/ports"
	"github.com/Reinaldocouto/urban-heat-safe-zones/internal/services"
)

// PointHandler exposes read-only cooling point retrieval endpoints.
type PointHandler struct {
	Repo   ports.CoolingPointRepository
	Engine *services.RouteEngine
}

func (h *PointHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	points, err := h.Repo.ListPoints(r.Context())
	if err != nil {
		log.Printf("list points failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListPointsResponse{Points: make([]dto.PointResponse, 0, len(points))}
	for _, p := range points {
		res.Points = append(res.Points, dto.FromPoint(p))
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Nearest returns the closest cooling point to ?lat=&lon=, optionally
// filtered by ?kind=. 404 means nothing matched, which is a valid outcome
// when a kind filter excludes every nearby point.
func (h *PointHandler) Nearest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	lat, err := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "lat must be a number")
		return
	}
	lon, err := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "lon must be a number")
		return
	}

	kind := domain.PointKind(r.URL.Query().Get("kind"))

	best, err := h.Engine.BestCoolingPoint(r.Context(), domain.Coordinate{Lat: lat, Lon: lon}, kind)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCoordinate) {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("nearest point failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	if best == nil {
		writeError(w, r, http.StatusNotFound, "no cooling points found")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NearestPointResponse{
		Point:      dto.FromPoint(best.Point),
		DistanceKm: best.DistanceKm,
	})
}
