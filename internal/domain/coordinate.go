package domain

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidCoordinate indicates a latitude or longitude outside its valid
// range, or a non-finite value. Caller error; never retried.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// Immutable geographic coordinate (latitude, longitude in degrees).
type Coordinate struct {
	Lat float64
	Lon float64
}

// Validate checks that both fields are finite and within range.
func (c Coordinate) Validate() error {
	if math.IsNaN(c.Lat) || math.IsInf(c.Lat, 0) || c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("%w: latitude %v must be in [-90, 90]", ErrInvalidCoordinate, c.Lat)
	}
	if math.IsNaN(c.Lon) || math.IsInf(c.Lon, 0) || c.Lon < -180 || c.Lon > 180 {
		return fmt.Errorf("%w: longitude %v must be in [-180, 180]", ErrInvalidCoordinate, c.Lon)
	}
	return nil
}
