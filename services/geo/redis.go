package geo

import (
	"context"
	"fmt"
	"time"

	"servicehub/models"
	"servicehub/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// DefaultGeoKey holds the city index.
const DefaultGeoKey = "geo:cities"

var _ CityResolver = (*RedisResolver)(nil)

// RedisResolver resolves cities from a Redis GEO set and falls back to
// another resolver on a miss or a Redis error.
type RedisResolver struct {
	rdb      *redis.Client
	key      string
	fallback CityResolver
	timeout  time.Duration
}

// NewRedisResolver wraps rdb. fallback may be nil.
func NewRedisResolver(rdb *redis.Client, key string, fallback CityResolver) *RedisResolver {
	if key == "" {
		key = DefaultGeoKey
	}
	return &RedisResolver{rdb: rdb, key: key, fallback: fallback, timeout: 500 * time.Millisecond}
}

// Load writes the table into the GEO set under every alias of each city.
func (r *RedisResolver) Load(ctx context.Context, table map[string]models.Point) error {
	locations := make([]*redis.GeoLocation, 0, 2*len(table))
	for name, p := range table {
		for _, key := range cityAliases(name) {
			locations = append(locations, &redis.GeoLocation{
				Name:      key,
				Longitude: p.Lon,
				Latitude:  p.Lat,
			})
		}
	}
	if len(locations) == 0 {
		return nil
	}
	if err := r.rdb.GeoAdd(ctx, r.key, locations...).Err(); err != nil {
		return fmt.Errorf("failed to load city index: %w", err)
	}
	return nil
}

func (r *RedisResolver) Lookup(ctx context.Context, city string) (models.Point, bool) {
	member := NormalizeCity(city)
	if member == "" {
		return models.Point{}, false
	}

	cctx, cancel := context.WithTimeout(ctx, r.timeout)
	pos, err := r.rdb.GeoPos(cctx, r.key, member).Result()
	cancel()
	if err != nil {
		utils.GetLogger().Warn("geo: redis lookup failed, using fallback",
			zap.String("city", member), zap.Error(err))
		return r.lookupFallback(ctx, city)
	}
	if len(pos) == 0 || pos[0] == nil {
		return r.lookupFallback(ctx, city)
	}
	return models.Point{Lat: pos[0].Latitude, Lon: pos[0].Longitude}, true
}

func (r *RedisResolver) lookupFallback(ctx context.Context, city string) (models.Point, bool) {
	if r.fallback == nil {
		return models.Point{}, false
	}
	return r.fallback.Lookup(ctx, city)
}
