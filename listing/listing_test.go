package listing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woodendoors/doorshowcase/catalog"
	"github.com/woodendoors/doorshowcase/listing"
	"github.com/woodendoors/doorshowcase/models"
)

func fullCatalog() []models.Product {
	return catalog.DefaultProducts().List()
}

func fullQuery(products []models.Product) listing.Query {
	min, max := listing.PriceSpan(products)
	return listing.Query{MinPrice: min, MaxPrice: max, Sort: listing.SortFeatured}
}

func ids(items []models.Product) []string {
	out := make([]string, len(items))
	for i, p := range items {
		out[i] = p.ID
	}
	return out
}

func TestEffectivePrice(t *testing.T) {
	p := models.Product{Price: 1299.99, DiscountPercentage: 10}
	assert.InDelta(t, 1169.991, p.EffectivePrice(), 1e-9)

	p = models.Product{Price: 899.99}
	assert.Equal(t, 899.99, p.EffectivePrice())
}

func TestEmptyFilterReturnsWholeCatalog(t *testing.T) {
	products := fullCatalog()

	view := listing.Apply(products, fullQuery(products))
	assert.ElementsMatch(t, ids(products), ids(view.Items))
}

func TestSearchMatchesNameAndDescription(t *testing.T) {
	products := fullCatalog()
	q := fullQuery(products)
	q.Search = "barn"

	view := listing.Apply(products, q)
	assert.ElementsMatch(t, []string{"door-003", "door-010"}, ids(view.Items))
}

func TestPriceBoundsUseEffectivePrice(t *testing.T) {
	products := []models.Product{
		{ID: "door-001", Name: "A", Price: 1299.99, DiscountPercentage: 10}, // 1169.991
		{ID: "door-002", Name: "B", Price: 899.99},
		{ID: "door-003", Name: "C", Price: 749.99, DiscountPercentage: 5}, // 712.4905
	}
	q := listing.Query{MinPrice: 700, MaxPrice: 900, Sort: listing.SortNameAZ}

	view := listing.Apply(products, q)
	assert.Equal(t, []string{"door-002", "door-003"}, ids(view.Items))
}

func TestSortPriceLowHigh(t *testing.T) {
	products := []models.Product{
		{ID: "door-001", Name: "A", Price: 1299.99, DiscountPercentage: 10},
		{ID: "door-002", Name: "B", Price: 899.99},
		{ID: "door-003", Name: "C", Price: 749.99, DiscountPercentage: 5},
	}
	q := listing.Query{MinPrice: 0, MaxPrice: 10000, Sort: listing.SortPriceLowHigh}

	view := listing.Apply(products, q)
	assert.Equal(t, []string{"door-003", "door-002", "door-001"}, ids(view.Items))

	q.Sort = listing.SortPriceHighLow
	view = listing.Apply(products, q)
	assert.Equal(t, []string{"door-001", "door-002", "door-003"}, ids(view.Items))
}

func TestSortFeaturedFirstThenName(t *testing.T) {
	products := fullCatalog()

	view := listing.Apply(products, fullQuery(products))
	require.Len(t, view.Items, 12)

	// the three featured doors lead, in locale name order
	assert.Equal(t, []string{"door-004", "door-001", "door-007"}, ids(view.Items[:3]))
	for _, p := range view.Items[3:] {
		assert.False(t, p.Featured)
	}
}

func TestSortNameOrders(t *testing.T) {
	products := fullCatalog()
	q := fullQuery(products)

	q.Sort = listing.SortNameAZ
	view := listing.Apply(products, q)
	assert.Equal(t, "Carved Teak Masterpiece", view.Items[0].Name)

	q.Sort = listing.SortNameZA
	view = listing.Apply(products, q)
	assert.Equal(t, "Traditional Paneled Door", view.Items[0].Name)
}

func TestFeaturedFilter(t *testing.T) {
	products := fullCatalog()
	q := fullQuery(products)
	featured := true
	q.Featured = &featured

	view := listing.Apply(products, q)
	assert.ElementsMatch(t, []string{"door-001", "door-004", "door-007"}, ids(view.Items))

	featured = false
	view = listing.Apply(products, q)
	assert.Len(t, view.Items, 9)
}

func TestCategoryPartition(t *testing.T) {
	products := fullCatalog()
	q := fullQuery(products)

	q.Category = "Barn-style"
	view := listing.Apply(products, q)
	assert.ElementsMatch(t, []string{"door-003", "door-010"}, ids(view.Items))

	q.Category = "All"
	view = listing.Apply(products, q)
	assert.Len(t, view.Items, 12)
}

func TestCategoriesListsAllFirst(t *testing.T) {
	got := listing.Categories(fullCatalog())
	assert.Equal(t, []string{"All", "Barn-style", "Carved", "Classic", "Custom", "Modern"}, got)
}

func TestPriceSpan(t *testing.T) {
	min, max := listing.PriceSpan(fullCatalog())
	// min: door-012 at 599.99 less 12%; max: door-009 at 2499.99
	assert.Equal(t, 527.0, min)
	assert.Equal(t, 2500.0, max)

	min, max = listing.PriceSpan(nil)
	assert.Zero(t, min)
	assert.Zero(t, max)
}

func TestPresetBounds(t *testing.T) {
	spanMin, spanMax := 100.0, 1100.0

	min, max := listing.PresetBounds([]listing.Preset{listing.PresetBudget}, spanMin, spanMax)
	assert.InDelta(t, 100, min, 1e-9)
	assert.InDelta(t, 400, max, 1e-9)

	min, max = listing.PresetBounds([]listing.Preset{listing.PresetMidRange}, spanMin, spanMax)
	assert.InDelta(t, 400, min, 1e-9)
	assert.InDelta(t, 800, max, 1e-9)

	min, max = listing.PresetBounds([]listing.Preset{listing.PresetPremium}, spanMin, spanMax)
	assert.InDelta(t, 800, min, 1e-9)
	assert.InDelta(t, 1100, max, 1e-9)

	min, max = listing.PresetBounds([]listing.Preset{listing.PresetOnSale}, spanMin, spanMax)
	assert.InDelta(t, 100, min, 1e-9)
	assert.InDelta(t, 600, max, 1e-9)

	// simultaneous presets union: min of mins, max of maxes
	min, max = listing.PresetBounds([]listing.Preset{listing.PresetBudget, listing.PresetPremium}, spanMin, spanMax)
	assert.InDelta(t, 100, min, 1e-9)
	assert.InDelta(t, 1100, max, 1e-9)

	min, max = listing.PresetBounds(nil, spanMin, spanMax)
	assert.Equal(t, spanMin, min)
	assert.Equal(t, spanMax, max)
}

func TestParsePreset(t *testing.T) {
	p, ok := listing.ParsePreset("budget")
	assert.True(t, ok)
	assert.Equal(t, listing.PresetBudget, p)

	_, ok = listing.ParsePreset("luxury")
	assert.False(t, ok)
}

func TestResolveBounds(t *testing.T) {
	minQ, maxQ := 300.0, 700.0

	min, max := listing.ResolveBounds(&minQ, &maxQ, nil, 100, 1100)
	assert.Equal(t, 300.0, min)
	assert.Equal(t, 700.0, max)

	// presets win over explicit bounds
	min, max = listing.ResolveBounds(&minQ, &maxQ, []listing.Preset{listing.PresetPremium}, 100, 1100)
	assert.InDelta(t, 800, min, 1e-9)
	assert.InDelta(t, 1100, max, 1e-9)

	min, max = listing.ResolveBounds(nil, nil, nil, 100, 1100)
	assert.Equal(t, 100.0, min)
	assert.Equal(t, 1100.0, max)
}

func TestParseSortOption(t *testing.T) {
	assert.Equal(t, listing.SortPriceLowHigh, listing.ParseSortOption("price-low-high"))
	assert.Equal(t, listing.SortFeatured, listing.ParseSortOption(""))
	assert.Equal(t, listing.SortFeatured, listing.ParseSortOption("newest"))
}
