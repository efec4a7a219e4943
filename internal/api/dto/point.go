package dto

import "github.com/Reinaldocouto/urban-heat-safe-zones/internal/domain"

type PointResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Kind           string  `json:"kind"`
	KindLabel      string  `json:"kind_label"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	Description    string  `json:"description,omitempty"`
	OperatingHours string  `json:"operating_hours,omitempty"`
	City           string  `json:"city,omitempty"`
	Region         string  `json:"region,omitempty"`
}

type ListPointsResponse struct {
	Points []PointResponse `json:"points"`
}

type NearestPointResponse struct {
	Point      PointResponse `json:"point"`
	DistanceKm float64       `json:"distance_km"`
}

func FromPoint(p domain.CoolingPoint) PointResponse {
	return PointResponse{
		ID:             p.ID,
		Name:           p.Name,
		Kind:           string(p.Kind),
		KindLabel:      p.Kind.Label(),
		Latitude:       p.Location.Lat,
		Longitude:      p.Location.Lon,
		Description:    p.Description,
		OperatingHours: p.OperatingHours,
		City:           p.City,
		Region:         p.Region,
	}
}
