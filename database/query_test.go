package database

import (
	"testing"

	"finques-lisa/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedListings creates five properties, the last one inactive, in creation order.
func seedListings(t *testing.T, repo *Repository) []*models.Property {
	t.Helper()

	inactive := false
	inputs := []models.PropertyInput{
		{Title: "Piso en Pardinyes", Price: decimal.NewFromInt(120000), OperationType: models.OperationSale,
			PropertyType: models.PropertyFlat, Location: "Pardinyes, Lleida", Bedrooms: 2, Bathrooms: 1,
			Features: []string{"Ascensor"}},
		{Title: "Casa con jardín", Price: decimal.NewFromInt(1200), OperationType: models.OperationRent,
			PropertyType: models.PropertyHouse, Location: "Balàfia, Lleida", Bedrooms: 4, Bathrooms: 2,
			IsFeatured: true},
		{Title: "Ático luminoso", Price: decimal.NewFromInt(320000), OperationType: models.OperationSale,
			PropertyType: models.PropertyPenthouse, Location: "Centro, Lleida", Bedrooms: 3, Bathrooms: 2,
			Description: "Vistas a la Seu Vella"},
		{Title: "Local comercial", Price: decimal.NewFromInt(900), OperationType: models.OperationRent,
			PropertyType: models.PropertyCommercial, Location: "Centro, Lleida", Bedrooms: 0, Bathrooms: 1,
			IsFeatured: true},
		{Title: "Piso oculto", Price: decimal.NewFromInt(99000), OperationType: models.OperationSale,
			PropertyType: models.PropertyFlat, Location: "Centro, Lleida", Bedrooms: 2, Bathrooms: 1,
			IsActive: &inactive, IsFeatured: true},
	}

	var created []*models.Property
	for _, in := range inputs {
		created = append(created, createProperty(t, repo, in))
	}
	return created
}

func titles(properties []models.Property) []string {
	out := make([]string, len(properties))
	for i, p := range properties {
		out[i] = p.Title
	}
	return out
}

func TestListProperties(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	seedListings(t, repo)
	two := 2
	minPrice := decimal.NewFromInt(1000)
	maxPrice := decimal.NewFromInt(200000)

	tests := []struct {
		name    string
		filters models.PropertyFilters
		want    []string
	}{
		{
			name:    "No filters excludes inactive, newest first",
			filters: models.PropertyFilters{},
			want:    []string{"Local comercial", "Ático luminoso", "Casa con jardín", "Piso en Pardinyes"},
		},
		{
			name:    "Operation type",
			filters: models.PropertyFilters{OperationType: "rent"},
			want:    []string{"Local comercial", "Casa con jardín"},
		},
		{
			name:    "Legacy operation type spelling",
			filters: models.PropertyFilters{OperationType: "venta"},
			want:    []string{"Ático luminoso", "Piso en Pardinyes"},
		},
		{
			name:    "All means no filter",
			filters: models.PropertyFilters{OperationType: "all", PropertyType: "all", Location: "all"},
			want:    []string{"Local comercial", "Ático luminoso", "Casa con jardín", "Piso en Pardinyes"},
		},
		{
			name:    "Property type",
			filters: models.PropertyFilters{PropertyType: "flat"},
			want:    []string{"Piso en Pardinyes"},
		},
		{
			name:    "Price range",
			filters: models.PropertyFilters{MinPrice: &minPrice, MaxPrice: &maxPrice},
			want:    []string{"Casa con jardín", "Piso en Pardinyes"},
		},
		{
			name:    "Bedrooms",
			filters: models.PropertyFilters{Bedrooms: &two},
			want:    []string{"Piso en Pardinyes"},
		},
		{
			name:    "Location substring",
			filters: models.PropertyFilters{Location: "centro"},
			want:    []string{"Local comercial", "Ático luminoso"},
		},
		{
			name:    "Search matches description",
			filters: models.PropertyFilters{Search: "seu vella"},
			want:    []string{"Ático luminoso"},
		},
		{
			name:    "Search ignores case and accents",
			filters: models.PropertyFilters{Search: "ATICO"},
			want:    []string{"Ático luminoso"},
		},
		{
			name:    "Location ignores case and accents",
			filters: models.PropertyFilters{Location: "balafia"},
			want:    []string{"Casa con jardín"},
		},
		{
			name:    "Filters are conjunctive",
			filters: models.PropertyFilters{OperationType: "sale", Location: "Centro"},
			want:    []string{"Ático luminoso"},
		},
		{
			name:    "Featured first",
			filters: models.PropertyFilters{FeaturedFirst: true},
			want:    []string{"Local comercial", "Casa con jardín", "Ático luminoso", "Piso en Pardinyes"},
		},
		{
			name:    "Limit and offset",
			filters: models.PropertyFilters{Limit: 2, Offset: 1},
			want:    []string{"Ático luminoso", "Casa con jardín"},
		},
		{
			name:    "Offset without limit",
			filters: models.PropertyFilters{Offset: 3},
			want:    []string{"Piso en Pardinyes"},
		},
		{
			name:    "Wildcards are literal",
			filters: models.PropertyFilters{Search: "%"},
			want:    []string{},
		},
		{
			name:    "Nothing matches",
			filters: models.PropertyFilters{Location: "Girona"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.ListProperties(tt.filters)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, titles(got))
		})
	}

	t.Run("Results carry feature names", func(t *testing.T) {
		got, err := repo.ListProperties(models.PropertyFilters{PropertyType: "flat"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, []string{"Ascensor"}, got[0].Features)
		assert.Equal(t, "", got[0].MainImage)
	})
}

func TestSearchProperties(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	created := seedListings(t, repo)

	t.Run("Matches reference code only", func(t *testing.T) {
		got, err := repo.SearchProperties(created[0].ReferenceCode, models.PropertyFilters{})
		require.NoError(t, err)
		assert.Equal(t, []string{"Piso en Pardinyes"}, titles(got))
	})

	t.Run("Featured first then newest", func(t *testing.T) {
		got, err := repo.SearchProperties("lleida", models.PropertyFilters{})
		require.NoError(t, err)
		assert.Equal(t, []string{"Local comercial", "Casa con jardín", "Ático luminoso", "Piso en Pardinyes"}, titles(got))
	})

	t.Run("Combined with filters", func(t *testing.T) {
		got, err := repo.SearchProperties("lleida", models.PropertyFilters{OperationType: "sale"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Ático luminoso", "Piso en Pardinyes"}, titles(got))
	})

	t.Run("Accented and unaccented terms match", func(t *testing.T) {
		for _, term := range []string{"ático", "Ático", "ATICO", "atico", "jardin"} {
			got, err := repo.SearchProperties(term, models.PropertyFilters{})
			require.NoError(t, err)
			assert.Len(t, got, 1, term)
		}
	})

	t.Run("Inactive properties never match", func(t *testing.T) {
		got, err := repo.SearchProperties("oculto", models.PropertyFilters{})
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestFeaturedProperties(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	seedListings(t, repo)

	got, err := repo.FeaturedProperties(0)
	require.NoError(t, err)
	assert.Equal(t, []string{"Local comercial", "Casa con jardín"}, titles(got))

	got, err = repo.FeaturedProperties(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Local comercial"}, titles(got))
}

func TestLookups(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	seedListings(t, repo)

	types, err := repo.PropertyTypes()
	require.NoError(t, err)
	assert.Equal(t, []models.PropertyType{"commercial", "flat", "house", "penthouse"}, types)

	locations, err := repo.Locations()
	require.NoError(t, err)
	assert.Equal(t, []string{"Balàfia, Lleida", "Centro, Lleida", "Pardinyes, Lleida"}, locations)

	sale, err := repo.PriceRange(models.OperationSale)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(120000).Equal(sale.Min))
	assert.True(t, decimal.NewFromInt(320000).Equal(sale.Max))

	t.Run("Empty range", func(t *testing.T) {
		empty, cleanupEmpty := setupTestRepo(t)
		defer cleanupEmpty()

		r, err := empty.PriceRange(models.OperationRent)
		require.NoError(t, err)
		assert.True(t, r.Min.IsZero())
		assert.True(t, r.Max.IsZero())
	})
}

func TestGetStats(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()

	t.Run("Empty table", func(t *testing.T) {
		stats, err := repo.GetStats()
		require.NoError(t, err)
		assert.Equal(t, models.PropertyStats{}, *stats)
	})

	created := seedListings(t, repo)

	sold := sampleInput("Vendido")
	sold.Status = models.StatusSold
	sold.Price = decimal.NewFromInt(100001)
	createProperty(t, repo, sold)

	stats, err := repo.GetStats()
	require.NoError(t, err)

	assert.Equal(t, 6, stats.TotalProperties)
	assert.Equal(t, 5, stats.ActiveProperties)
	assert.Equal(t, 3, stats.FeaturedProperties)
	assert.Equal(t, 3, stats.ForSale)
	assert.Equal(t, 2, stats.ForRent)
	assert.Equal(t, 1, stats.Sold)
	assert.Equal(t, 0, stats.Rented)
	// (120000 + 320000 + 99000 + 100001) / 4 = 159750.25
	assert.Equal(t, int64(159750), stats.AvgSalePrice)
	// (1200 + 900) / 2
	assert.Equal(t, int64(1050), stats.AvgRentPrice)
	assert.NotEmpty(t, created)
}
