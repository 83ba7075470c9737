package geo

import (
	"context"
	"math"

	"servicehub/models"
	"servicehub/utils"
)

// EarthRadiusKm is the mean Earth radius used by DistanceKm.
const EarthRadiusKm = 6371.0

// ResolvePoint returns the explicit coordinates when both are finite, else the
// city's point when the resolver knows it, else nil.
func ResolvePoint(ctx context.Context, resolver CityResolver, q models.PointQuery) *models.Point {
	if q.Lat != nil && q.Lon != nil && utils.IsFinite(*q.Lat) && utils.IsFinite(*q.Lon) {
		return &models.Point{Lat: *q.Lat, Lon: *q.Lon}
	}
	if q.City != "" && resolver != nil {
		if p, ok := resolver.Lookup(ctx, q.City); ok {
			return &p
		}
	}
	return nil
}

// DistanceKm is the great-circle (haversine) distance between a and b.
// An unresolved side yields +Inf so it never passes a radius check.
func DistanceKm(a, b *models.Point) float64 {
	if a == nil || b == nil {
		return math.Inf(1)
	}
	return haversine(a.Lat, a.Lon, b.Lat, b.Lon)
}

func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * (math.Pi / 180)
	dLon := (lon2 - lon1) * (math.Pi / 180)
	lat1Rad := lat1 * (math.Pi / 180)
	lat2Rad := lat2 * (math.Pi / 180)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusKm * c
}
