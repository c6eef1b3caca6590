// Package httphandler exposes the storefront over a JSON HTTP API.
//
// GET    /v1/products           catalog with filter query params
// GET    /v1/cart               current session cart
// POST   /v1/cart/items         add one unit of (product_id, size)
// PATCH  /v1/cart/items         set the quantity of a line item
// DELETE /v1/cart/items         remove a line item
// POST   /v1/checkout           compose the order message and link
// POST   /v1/admin/products     send products into the ingest pipeline
// POST   /v1/admin/products/status  publish a discontinued flag
// GET    /v1/admin/insights     per-session order counts
package httphandler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/urbandrop/storefront/internal/core/domain"
	"github.com/urbandrop/storefront/internal/core/port"
)

type CatalogHandler struct {
	browser port.CatalogBrowser
}

func RegisterCatalog(mux *http.ServeMux, browser port.CatalogBrowser) {
	h := CatalogHandler{browser}
	mux.HandleFunc("GET /v1/products", h.GetProducts)
}

func (h CatalogHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetProducts"
	log := slog.With("op", op)

	q, err := parseBrowseQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		log.Warn("failed to parse query", "err", err)
		return
	}

	view, err := h.browser.BrowseProducts(r.Context(), q)
	if err != nil {
		http.Error(w, "failed to read catalog", http.StatusServiceUnavailable)
		log.Error("failed to browse products", "err", err)
		return
	}

	writeJSON(w, log, http.StatusOK, toCatalogResponse(view))
	log.Info("catalog served", "nProducts", len(view.Products))
}

// parseBrowseQuery maps the filter query params onto the domain filter.
// Either price bound marks the range as explicitly set; a missing bound
// falls back to the widest value so a lone bound still works.
func parseBrowseQuery(r *http.Request) (domain.BrowseQuery, error) {
	var q domain.BrowseQuery
	params := r.URL.Query()

	q.Filter.SearchTerm = params.Get("search")
	q.Filter.Colors = splitFacet(params.Get("colors"))
	q.Filter.Styles = splitFacet(params.Get("styles"))
	q.Filter.Sizes = splitFacet(params.Get("sizes"))
	q.Filter.Coleccion = singleFacet(params.Get("coleccion"))
	q.Filter.Corte = singleFacet(params.Get("corte"))
	q.Filter.Talla = singleFacet(params.Get("talla"))

	q.Filter.PriceRange = domain.PriceRange{Min: 0, Max: math.MaxFloat64}

	if v := params.Get("price_min"); v != "" {
		priceMin, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return domain.BrowseQuery{}, fmt.Errorf("invalid query param: price_min")
		}
		q.Filter.PriceRange.Min = priceMin
		q.RangeSet = true
	}

	if v := params.Get("price_max"); v != "" {
		priceMax, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return domain.BrowseQuery{}, fmt.Errorf("invalid query param: price_max")
		}
		q.Filter.PriceRange.Max = priceMax
		q.RangeSet = true
	}

	return q, nil
}

func splitFacet(v string) (values []string) {
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			values = append(values, s)
		}
	}
	return values
}

// singleFacet normalizes the sidebar "show everything" options the
// first storefront sent verbatim.
func singleFacet(v string) string {
	switch v {
	case "", "Todos", "Todas":
		return domain.FacetAll
	}
	return v
}

func toCatalogResponse(view domain.CatalogView) CatalogResponse {
	resp := CatalogResponse{
		Products: make([]Product, len(view.Products)),
		PriceBounds: PriceBounds{
			Min: view.PriceBounds.Min,
			Max: view.PriceBounds.Max,
		},
	}
	for i, p := range view.Products {
		resp.Products[i] = Product{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Category:    p.Category,
			Price:       p.Price,
			Sizes:       p.Sizes,
			InStock:     p.InStock,
			Images:      p.Images,
		}
	}
	return resp
}

func writeJSON(w http.ResponseWriter, log *slog.Logger, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to write response body", "err", err)
	}
}
