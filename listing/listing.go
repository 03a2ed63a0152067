// Package listing derives the filtered, sorted, category-partitioned
// storefront view of the product catalog.
package listing

import (
	"math"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/woodendoors/doorshowcase/models"
)

type SortOption string

const (
	SortFeatured     SortOption = "featured"
	SortPriceLowHigh SortOption = "price-low-high"
	SortPriceHighLow SortOption = "price-high-low"
	SortNameAZ       SortOption = "name-a-z"
	SortNameZA       SortOption = "name-z-a"
)

// ParseSortOption falls back to the featured ordering for anything it
// does not recognize.
func ParseSortOption(s string) SortOption {
	switch SortOption(s) {
	case SortPriceLowHigh, SortPriceHighLow, SortNameAZ, SortNameZA:
		return SortOption(s)
	default:
		return SortFeatured
	}
}

type Query struct {
	Search   string
	MinPrice float64
	MaxPrice float64
	Sort     SortOption
	// Category "" or "All" passes every product through.
	Category string
	// Featured nil passes every product through.
	Featured *bool
}

type View struct {
	Items      []models.Product `json:"items"`
	Categories []string         `json:"categories"`
	MinPrice   float64          `json:"minPrice"`
	MaxPrice   float64          `json:"maxPrice"`
	SpanMin    float64          `json:"spanMin"`
	SpanMax    float64          `json:"spanMax"`
}

// PriceSpan is the observed effective-price range of the catalog,
// floored/ceiled to whole currency units.
func PriceSpan(products []models.Product) (float64, float64) {
	if len(products) == 0 {
		return 0, 0
	}
	min, max := math.Inf(1), math.Inf(-1)
	for _, p := range products {
		price := p.EffectivePrice()
		min = math.Min(min, price)
		max = math.Max(max, price)
	}
	return math.Floor(min), math.Ceil(max)
}

// Categories lists "All" followed by the distinct product categories in
// locale order.
func Categories(products []models.Product) []string {
	seen := map[string]struct{}{}
	var names []string
	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		names = append(names, p.Category)
	}
	collate.New(language.English).SortStrings(names)
	return append([]string{"All"}, names...)
}

// Apply filters by search term and price bounds, sorts, then restricts
// to the requested category.
func Apply(products []models.Product, q Query) View {
	spanMin, spanMax := PriceSpan(products)
	term := strings.ToLower(q.Search)

	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		matchesSearch := term == "" ||
			strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Description), term)
		price := p.EffectivePrice()
		matchesPrice := price >= q.MinPrice && price <= q.MaxPrice
		matchesFeatured := q.Featured == nil || p.Featured == *q.Featured
		if matchesSearch && matchesPrice && matchesFeatured {
			filtered = append(filtered, p)
		}
	}

	sortProducts(filtered, q.Sort)

	if q.Category != "" && q.Category != "All" {
		kept := filtered[:0]
		for _, p := range filtered {
			if p.Category == q.Category {
				kept = append(kept, p)
			}
		}
		filtered = kept
	}

	return View{
		Items:      filtered,
		Categories: Categories(products),
		MinPrice:   q.MinPrice,
		MaxPrice:   q.MaxPrice,
		SpanMin:    spanMin,
		SpanMax:    spanMax,
	}
}

func sortProducts(items []models.Product, key SortOption) {
	cl := collate.New(language.English)

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		switch key {
		case SortPriceLowHigh:
			return a.EffectivePrice() < b.EffectivePrice()
		case SortPriceHighLow:
			return a.EffectivePrice() > b.EffectivePrice()
		case SortNameAZ:
			return cl.CompareString(a.Name, b.Name) < 0
		case SortNameZA:
			return cl.CompareString(a.Name, b.Name) > 0
		default: // featured first, then locale name order
			if a.Featured != b.Featured {
				return a.Featured
			}
			return cl.CompareString(a.Name, b.Name) < 0
		}
	})
}
