package httphandler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urbandrop/storefront/internal/adapter/httphandler"
	"github.com/urbandrop/storefront/internal/core/domain"
)

type stubProductsSender struct {
	gotProducts []domain.Product
	err         error
}

func (s *stubProductsSender) SendProducts(
	_ context.Context, ps []domain.Product,
) error {
	s.gotProducts = ps
	return s.err
}

type stubStatusSetter struct {
	gotStatus domain.ProductStatus
	err       error
}

func (s *stubStatusSetter) SetProductStatus(
	_ context.Context, status domain.ProductStatus,
) error {
	s.gotStatus = status
	return s.err
}

type stubInsights struct {
	reports []domain.SalesReport
	err     error
}

func (s *stubInsights) OrderInsights(
	context.Context,
) ([]domain.SalesReport, error) {
	return s.reports, s.err
}

func adminMux(
	sender *stubProductsSender, setter *stubStatusSetter, insights *stubInsights,
) *http.ServeMux {
	mux := http.NewServeMux()
	httphandler.RegisterAdmin(mux, sender, setter, insights)
	return mux
}

func TestPostAdminProducts(t *testing.T) {
	t.Run("AcceptsBatch", func(t *testing.T) {
		sender := new(stubProductsSender)
		mux := adminMux(sender, new(stubStatusSetter), new(stubInsights))

		body := strings.NewReader(`[
			{
				"id": 1,
				"name": "Vintage Denim Jacket",
				"category": "jackets",
				"price": 89.99,
				"sizes": ["S", "M", "L"],
				"in_stock": true
			}
		]`)
		r := httptest.NewRequest(http.MethodPost, "/v1/admin/products", body)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, r)

		require.Equal(t, http.StatusAccepted, w.Code)
		require.Len(t, sender.gotProducts, 1)
		assert.Equal(t, int64(1), sender.gotProducts[0].ID)
		assert.Equal(t, []string{"S", "M", "L"}, sender.gotProducts[0].Sizes)
	})

	t.Run("BadJSON", func(t *testing.T) {
		mux := adminMux(
			new(stubProductsSender), new(stubStatusSetter), new(stubInsights),
		)

		body := strings.NewReader(`{"not": "a list"`)
		r := httptest.NewRequest(http.MethodPost, "/v1/admin/products", body)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("SenderFailure", func(t *testing.T) {
		sender := &stubProductsSender{err: errors.New("broker is down")}
		mux := adminMux(sender, new(stubStatusSetter), new(stubInsights))

		body := strings.NewReader(`[]`)
		r := httptest.NewRequest(http.MethodPost, "/v1/admin/products", body)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, r)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestPostAdminStatus(t *testing.T) {
	setter := new(stubStatusSetter)
	mux := adminMux(new(stubProductsSender), setter, new(stubInsights))

	body := strings.NewReader(`{"product_id": 7, "discontinued": true}`)
	r := httptest.NewRequest(http.MethodPost, "/v1/admin/products/status", body)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(7), setter.gotStatus.ProductID)
	assert.True(t, setter.gotStatus.Discontinued)
}

func TestGetAdminInsights(t *testing.T) {
	t.Run("RespondsReports", func(t *testing.T) {
		insights := &stubInsights{reports: []domain.SalesReport{
			{SessionID: "session-1", Orders: 3},
		}}
		mux := adminMux(new(stubProductsSender), new(stubStatusSetter), insights)

		r := httptest.NewRequest(http.MethodGet, "/v1/admin/insights", nil)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)

		var resp []httphandler.SalesReport
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp, 1)
		assert.Equal(t, "session-1", resp[0].SessionID)
		assert.Equal(t, 3, resp[0].Orders)
	})

	t.Run("NoReportsNoContent", func(t *testing.T) {
		mux := adminMux(
			new(stubProductsSender), new(stubStatusSetter), new(stubInsights),
		)

		r := httptest.NewRequest(http.MethodGet, "/v1/admin/insights", nil)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, r)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}
