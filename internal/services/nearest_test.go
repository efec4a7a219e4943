package services

import (
	"errors"
	"math"
	"testing"

	"github.com/Reinaldocouto/urban-heat-safe-zones/internal/domain"
)

func pointAt(id string, lat, lon float64) domain.CoolingPoint {
	return domain.CoolingPoint{
		ID:       id,
		Name:     "point " + id,
		Kind:     domain.KindPark,
		Location: domain.Coordinate{Lat: lat, Lon: lon},
	}
}

func TestNearestPointFindsMinimum(t *testing.T) {
	user := domain.Coordinate{Lat: -23.5505, Lon: -46.6333}
	points := []domain.CoolingPoint{
		pointAt("far", -23.5874, -46.6576),
		pointAt("close", -23.5507, -46.6344),
		pointAt("mid", -23.5610, -46.6600),
	}

	res, err := NearestPoint(user, points)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Point.ID != "close" {
		t.Fatalf("nearest point = %q, want %q", res.Point.ID, "close")
	}

	min := math.Inf(1)
	for _, p := range points {
		if d := DistanceKm(user, p.Location); d < min {
			min = d
		}
	}
	if res.DistanceKm != min {
		t.Errorf("DistanceKm = %v, want minimum %v", res.DistanceKm, min)
	}
}

func TestNearestPointTieBreaksOnInputOrder(t *testing.T) {
	user := domain.Coordinate{Lat: 0, Lon: 0}
	points := []domain.CoolingPoint{
		pointAt("first", 1, 1),
		pointAt("second", 1, 1),
	}

	res, err := NearestPoint(user, points)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Point.ID != "first" {
		t.Errorf("tie broke to %q, want the first point in input order", res.Point.ID)
	}
}

func TestNearestPointEmptyInput(t *testing.T) {
	_, err := NearestPoint(domain.Coordinate{}, nil)
	if !errors.Is(err, domain.ErrEmptyInput) {
		t.Fatalf("error = %v, want ErrEmptyInput", err)
	}
}
