package domain

import "errors"

var ErrProductNotFound = errors.New("product not found")

type Product struct {
	ID          int64
	Name        string
	Description string
	Category    string
	Price       float64
	Sizes       []string
	InStock     bool
	Images      []string
}

type PriceRange struct {
	Min float64
	Max float64
}

// DefaultPriceRange is used while the catalog is empty or carries
// no positive prices.
var DefaultPriceRange = PriceRange{Min: 0, Max: 1000}

// BrowseQuery is one catalog read. RangeSet tells whether the caller
// supplied an explicit price range; when false the computed bounds of
// the live product list replace the range before filtering.
type BrowseQuery struct {
	Filter   FilterState
	RangeSet bool
}

// CatalogView is the answer to a BrowseQuery: the visible products and
// the price bounds the range controls should present.
type CatalogView struct {
	Products    []Product
	PriceBounds PriceRange
}

// PriceBounds computes the span of positive product prices.
// Products priced at zero or below do not widen the span.
func PriceBounds(ps []Product) PriceRange {
	bounds := DefaultPriceRange
	found := false
	for _, p := range ps {
		if p.Price <= 0 {
			continue
		}
		if !found {
			bounds = PriceRange{Min: p.Price, Max: p.Price}
			found = true
			continue
		}
		bounds.Min = min(bounds.Min, p.Price)
		bounds.Max = max(bounds.Max, p.Price)
	}
	return bounds
}
