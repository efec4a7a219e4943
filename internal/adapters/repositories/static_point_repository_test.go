package repositories

import (
	"context"
	"testing"

	"github.com/Reinaldocouto/urban-heat-safe-zones/internal/domain"
)

func TestStaticRepositoryNearbyPointsOrdering(t *testing.T) {
	repo := NewStaticPointRepository(nil)

	// Near the Sé cathedral; the cathedral shelter and the downtown fountain
	// are the two closest demo points.
	at := domain.Coordinate{Lat: -23.5507, Lon: -46.6344}

	points, err := repo.NearbyPoints(context.Background(), at, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("got %d points, want 2", len(points))
	}
	if points[0].ID != "6" {
		t.Errorf("closest point = %q, want the cathedral shelter (id 6)", points[0].ID)
	}
	if points[1].ID != "2" {
		t.Errorf("second point = %q, want the downtown fountain (id 2)", points[1].ID)
	}
}

func TestStaticRepositoryNearbyPointsZeroLimit(t *testing.T) {
	repo := NewStaticPointRepository(nil)

	points, err := repo.NearbyPoints(context.Background(), domain.Coordinate{}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 0 {
		t.Errorf("got %d points with zero limit, want none", len(points))
	}
}

func TestStaticRepositoryListPointsCopies(t *testing.T) {
	repo := NewStaticPointRepository(nil)

	first, err := repo.ListPoints(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first[0].Name = "mutated"

	second, err := repo.ListPoints(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second[0].Name == "mutated" {
		t.Error("ListPoints must return a copy, not the backing slice")
	}
}
