package domain

import (
	"slices"
	"strings"
)

// FacetAll is the sentinel for an inactive single-select facet.
// The empty string is treated the same way.
const FacetAll = "all"

type FilterState struct {
	SearchTerm string
	PriceRange PriceRange

	Colors []string
	Styles []string
	Sizes  []string

	// Single-select facets kept from the first storefront sidebar.
	// Coleccion and Corte have no backing product attribute yet and
	// never exclude anything; Talla restricts by size membership.
	Coleccion string
	Corte     string
	Talla     string
}

// FacetsActive reports whether any effective facet is set. The price
// range deliberately does not count: it is always part of the
// conjunction, but alone it must not switch the grid off the full list.
func (fs FilterState) FacetsActive() bool {
	return fs.SearchTerm != "" ||
		len(fs.Colors) > 0 ||
		len(fs.Styles) > 0 ||
		len(fs.Sizes) > 0 ||
		(fs.Talla != "" && fs.Talla != FacetAll)
}

// FilterProducts returns the products satisfying every active predicate
// of fs, in their original order. Inactive predicates pass everything.
func FilterProducts(ps []Product, fs FilterState) []Product {
	filtered := make([]Product, 0, len(ps))
	for _, p := range ps {
		if fs.matches(p) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func (fs FilterState) matches(p Product) bool {
	return fs.matchesSearch(p) &&
		fs.matchesPrice(p) &&
		fs.matchesStyles(p) &&
		fs.matchesSizes(p) &&
		fs.matchesTalla(p)
	// Colors, Coleccion and Corte are intentionally absent: no product
	// attribute backs them, so they must keep passing everything.
}

func (fs FilterState) matchesSearch(p Product) bool {
	if fs.SearchTerm == "" {
		return true
	}
	term := strings.ToLower(fs.SearchTerm)
	return strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Description), term) ||
		strings.Contains(strings.ToLower(p.Category), term)
}

func (fs FilterState) matchesPrice(p Product) bool {
	return p.Price >= fs.PriceRange.Min && p.Price <= fs.PriceRange.Max
}

func (fs FilterState) matchesStyles(p Product) bool {
	if len(fs.Styles) == 0 {
		return true
	}
	return slices.Contains(fs.Styles, p.Category)
}

func (fs FilterState) matchesSizes(p Product) bool {
	if len(fs.Sizes) == 0 {
		return true
	}
	for _, size := range p.Sizes {
		if slices.Contains(fs.Sizes, size) {
			return true
		}
	}
	return false
}

func (fs FilterState) matchesTalla(p Product) bool {
	if fs.Talla == "" || fs.Talla == FacetAll {
		return true
	}
	return slices.Contains(p.Sizes, fs.Talla)
}
