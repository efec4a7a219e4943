package domain

import (
	"errors"
	"math"
	"testing"
)

func TestCoordinateValidate(t *testing.T) {
	tests := []struct {
		name    string
		c       Coordinate
		wantErr bool
	}{
		{"valid city coordinate", Coordinate{Lat: -23.5505, Lon: -46.6333}, false},
		{"latitude bounds", Coordinate{Lat: 90, Lon: 180}, false},
		{"negative bounds", Coordinate{Lat: -90, Lon: -180}, false},
		{"latitude too high", Coordinate{Lat: 200, Lon: 0}, true},
		{"latitude too low", Coordinate{Lat: -90.0001, Lon: 0}, true},
		{"longitude too high", Coordinate{Lat: 0, Lon: 181}, true},
		{"NaN latitude", Coordinate{Lat: math.NaN(), Lon: 0}, true},
		{"infinite longitude", Coordinate{Lat: 0, Lon: math.Inf(1)}, true},
	}

	for _, tt := range tests {
		err := tt.c.Validate()
		if tt.wantErr && !errors.Is(err, ErrInvalidCoordinate) {
			t.Errorf("%s: error = %v, want ErrInvalidCoordinate", tt.name, err)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("%s: unexpected error: %v", tt.name, err)
		}
	}
}

func TestPointKindLabel(t *testing.T) {
	if got := KindPark.Label(); got != "Park" {
		t.Errorf("KindPark.Label() = %q", got)
	}
	// Unknown kinds fall back to a generic label, never an error.
	if got := PointKind("sauna").Label(); got != "Cooling point" {
		t.Errorf("unknown kind label = %q, want generic fallback", got)
	}
}
