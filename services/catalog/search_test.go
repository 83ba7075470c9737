package catalog

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"servicehub/models"
	"servicehub/services/geo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch_NoFilterDefaultsToPopularity(t *testing.T) {
	s, _ := newTestService(t)
	got := mustSearch(t, s, models.ServiceFilter{})
	assert.Equal(t, []int64{5, 3, 1, 2, 4, 6}, ids(got))
}

func TestSearch_Category(t *testing.T) {
	s, _ := newTestService(t)

	got := mustSearch(t, s, models.ServiceFilter{Category: "tech", SortBy: models.SortByPopularity})
	assert.Equal(t, []int64{1, 6}, ids(got))

	all := mustSearch(t, s, models.ServiceFilter{Category: models.CategoryAll})
	assert.Len(t, all, 6)

	// Exact and case-sensitive.
	assert.Empty(t, mustSearch(t, s, models.ServiceFilter{Category: "Tech"}))
}

func TestSearch_Provider(t *testing.T) {
	s, _ := newTestService(t)
	got := mustSearch(t, s, models.ServiceFilter{ProviderID: ptr(int64(4))})
	assert.Equal(t, []int64{3}, ids(got))
}

func TestSearch_SortKeys(t *testing.T) {
	s, _ := newTestService(t)

	tests := []struct {
		key  models.SortKey
		want []int64
	}{
		{models.SortByPriceLow, []int64{5, 2, 4, 3, 1, 6}},
		{models.SortByPriceHigh, []int64{6, 1, 3, 4, 2, 5}},
		// Ties at 4.9 and 4.8 keep catalog order.
		{models.SortByRating, []int64{1, 3, 5, 2, 6, 4}},
		{models.SortByPopularity, []int64{5, 3, 1, 2, 4, 6}},
	}
	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			assert.Equal(t, tt.want, ids(mustSearch(t, s, models.ServiceFilter{SortBy: tt.key})))
		})
	}
}

func TestSearch_PriceSortOrdersAscending(t *testing.T) {
	s, _ := newTestService(t)
	got := mustSearch(t, s, models.ServiceFilter{SortBy: models.SortByPriceLow})
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].Price, got[i].Price)
	}
}

func TestSearch_GeoByCoordinates(t *testing.T) {
	s, _ := newTestService(t)
	ny := geo.DefaultCities["New York, NY"]
	sf := geo.DefaultCities["San Francisco, CA"]

	got := mustSearch(t, s, models.ServiceFilter{Lat: &ny.Lat, Lon: &ny.Lon, RadiusKm: ptr(10.0)})
	assert.Equal(t, []int64{1}, ids(got))

	got = mustSearch(t, s, models.ServiceFilter{Lat: &sf.Lat, Lon: &sf.Lon, RadiusKm: ptr(10.0)})
	assert.Equal(t, []int64{6}, ids(got))
}

func TestSearch_GeoByCityText(t *testing.T) {
	s, _ := newTestService(t)

	got := mustSearch(t, s, models.ServiceFilter{Location: "new york"})
	assert.Equal(t, []int64{1}, ids(got))

	assert.Empty(t, mustSearch(t, s, models.ServiceFilter{Location: "Springfield"}))
}

func TestSearch_RadiusBoundaryInclusive(t *testing.T) {
	s, _ := newTestService(t)
	ny := geo.DefaultCities["New York, NY"]
	boston := geo.DefaultCities["Boston, MA"]
	d := geo.DistanceKm(&ny, &boston)

	got := mustSearch(t, s, models.ServiceFilter{Lat: &ny.Lat, Lon: &ny.Lon, RadiusKm: &d})
	assert.ElementsMatch(t, []int64{1, 4}, ids(got))

	smaller := math.Nextafter(d, 0)
	got = mustSearch(t, s, models.ServiceFilter{Lat: &ny.Lat, Lon: &ny.Lon, RadiusKm: &smaller})
	assert.Equal(t, []int64{1}, ids(got))
}

func TestSearch_DefaultRadius(t *testing.T) {
	s, _ := newTestService(t)
	ny := geo.DefaultCities["New York, NY"]

	for _, r := range []*float64{nil, ptr(math.NaN()), ptr(-5.0), ptr(0.0)} {
		got := mustSearch(t, s, models.ServiceFilter{Lat: &ny.Lat, Lon: &ny.Lon, RadiusKm: r})
		assert.Equal(t, []int64{1}, ids(got))
	}

	s.RadiusKm = 400
	got := mustSearch(t, s, models.ServiceFilter{Lat: &ny.Lat, Lon: &ny.Lon})
	assert.ElementsMatch(t, []int64{1, 4}, ids(got))
}

func TestSearch_PartialCoordinatesDisableGeo(t *testing.T) {
	s, _ := newTestService(t)
	got := mustSearch(t, s, models.ServiceFilter{Lat: ptr(40.0)})
	assert.Len(t, got, 6)
	got = mustSearch(t, s, models.ServiceFilter{Lat: ptr(math.Inf(1)), Lon: ptr(1.0)})
	assert.Len(t, got, 6)
}

func TestSearch_GeoUsesProviderLocationFallback(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	created, err := s.CreateService(ctx, models.Provider{ID: 9, Name: "Remote Co", Location: "Chicago, IL"},
		models.Service{Title: "Remote bookkeeping", Category: "business", Location: "Remote", Price: 40})
	require.NoError(t, err)
	_, err = s.CreateService(ctx, models.Provider{ID: 10, Name: "Nowhere"},
		models.Service{Title: "Unplaceable", Category: "business", Location: "Atlantis", Price: 40})
	require.NoError(t, err)

	chicago := geo.DefaultCities["Chicago, IL"]
	got := mustSearch(t, s, models.ServiceFilter{Lat: &chicago.Lat, Lon: &chicago.Lon, RadiusKm: ptr(5.0)})
	assert.ElementsMatch(t, []int64{3, created.ID}, ids(got))
}

func TestSearch_FiltersOnlyNarrow(t *testing.T) {
	s, _ := newTestService(t)
	rng := rand.New(rand.NewSource(7))
	categories := []string{"", "tech", "home", "design", models.CategoryAll, "nope"}
	locations := []string{"", "new", "CA", "Boston", "zzz"}

	all := mustSearch(t, s, models.ServiceFilter{})
	for i := 0; i < 100; i++ {
		base := models.ServiceFilter{Category: categories[rng.Intn(len(categories))]}
		narrowed := base
		narrowed.Location = locations[rng.Intn(len(locations))]
		if rng.Intn(2) == 0 {
			narrowed.ProviderID = ptr(int64(rng.Intn(8)))
		}

		wide := mustSearch(t, s, base)
		narrow := mustSearch(t, s, narrowed)
		assert.LessOrEqual(t, len(wide), len(all))
		assert.LessOrEqual(t, len(narrow), len(wide))
		assert.Subset(t, ids(wide), ids(narrow))
	}
}

func TestSortServices_Idempotent(t *testing.T) {
	s, _ := newTestService(t)
	for _, key := range []models.SortKey{models.SortByRating, models.SortByPriceLow, models.SortByPriceHigh, models.SortByPopularity} {
		once := mustSearch(t, s, models.ServiceFilter{SortBy: key})
		twice := append([]models.Service(nil), once...)
		SortServices(twice, key)
		assert.Equal(t, ids(once), ids(twice), key)
	}
}

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, models.SortByRating, models.ParseSortKey("rating"))
	assert.Equal(t, models.SortByPriceLow, models.ParseSortKey("price-low"))
	assert.Equal(t, models.SortByPriceHigh, models.ParseSortKey("price-desc"))
	assert.Equal(t, models.SortByPopularity, models.ParseSortKey("popular"))
	assert.Equal(t, models.SortByPopularity, models.ParseSortKey("whatever"))
	assert.Equal(t, models.SortByPopularity, models.ParseSortKey(""))
}
