package service

import (
	"context"
	"fmt"

	"github.com/urbandrop/storefront/internal/core/domain"
)

// BrowseProducts answers one catalog read. A fresh product list is
// fetched on every call; the filter never caches or diffs.
//
// When the caller has not set an explicit price range, the computed
// bounds of the live list are substituted, so a freshly loaded grid
// is never narrowed by a stale default. With a blank search and no
// facet or range set, the full list is returned untouched.
func (s *Service) BrowseProducts(
	ctx context.Context, q domain.BrowseQuery,
) (domain.CatalogView, error) {
	const op = "Service.BrowseProducts"

	if err := ctx.Err(); err != nil {
		return domain.CatalogView{}, fmt.Errorf("%s: %w", op, err)
	}

	products, err := s.deps.Catalog.ListProducts(ctx)
	if err != nil {
		return domain.CatalogView{}, fmt.Errorf("%s: %w", op, err)
	}

	bounds := domain.PriceBounds(products)

	view := domain.CatalogView{Products: products, PriceBounds: bounds}
	if !q.Filter.FacetsActive() && !q.RangeSet {
		return view, nil
	}

	fs := q.Filter
	if !q.RangeSet {
		fs.PriceRange = bounds
	}
	view.Products = domain.FilterProducts(products, fs)
	return view, nil
}
