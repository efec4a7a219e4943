package domain

// PointKind classifies a cooling point. The set is extensible: unknown values
// are carried through unchanged and rendered with a generic label rather than
// rejected.
type PointKind string

const (
	KindPark     PointKind = "park"
	KindFountain PointKind = "fountain"
	KindShelter  PointKind = "shelter"
)

// Label returns a display name for the kind, falling back to a generic label
// for values outside the known set.
func (k PointKind) Label() string {
	switch k {
	case KindPark:
		return "Park"
	case KindFountain:
		return "Water fountain"
	case KindShelter:
		return "Cooled shelter"
	default:
		return "Cooling point"
	}
}

// Represents a physical point of interest offering thermal relief.
// Identity is the ID; two points with equal coordinates but different IDs
// are distinct. The core only reads and ranks points, never mutates them.
type CoolingPoint struct {
	ID             string
	Name           string
	Kind           PointKind
	Location       Coordinate
	Description    string
	OperatingHours string
	City           string
	Region         string
}
