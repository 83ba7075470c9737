package geo

import (
	"context"
	"strings"

	"servicehub/models"
)

// DefaultCities is the built-in city table.
var DefaultCities = map[string]models.Point{
	"New York, NY":      {Lat: 40.7128, Lon: -74.006},
	"Los Angeles, CA":   {Lat: 34.0522, Lon: -118.2437},
	"Chicago, IL":       {Lat: 41.8781, Lon: -87.6298},
	"Boston, MA":        {Lat: 42.3601, Lon: -71.0589},
	"Austin, TX":        {Lat: 30.2672, Lon: -97.7431},
	"San Francisco, CA": {Lat: 37.7749, Lon: -122.4194},
}

// NormalizeCity folds case and surrounding space.
func NormalizeCity(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}

// cityAliases returns the lookup keys for a table entry: the full name and,
// for "City, ST" names, the bare city.
func cityAliases(name string) []string {
	full := NormalizeCity(name)
	keys := []string{full}
	if i := strings.Index(full, ","); i > 0 {
		if bare := strings.TrimSpace(full[:i]); bare != "" {
			keys = append(keys, bare)
		}
	}
	return keys
}

var _ CityResolver = (*StaticResolver)(nil)

// StaticResolver resolves cities from an in-process table.
type StaticResolver struct {
	points map[string]models.Point
}

// NewStaticResolver indexes table by normalized name and bare city.
func NewStaticResolver(table map[string]models.Point) *StaticResolver {
	r := &StaticResolver{points: make(map[string]models.Point, 2*len(table))}
	for name, p := range table {
		for _, key := range cityAliases(name) {
			r.points[key] = p
		}
	}
	return r
}

func (r *StaticResolver) Lookup(_ context.Context, city string) (models.Point, bool) {
	key := NormalizeCity(city)
	if key == "" {
		return models.Point{}, false
	}
	p, ok := r.points[key]
	return p, ok
}
