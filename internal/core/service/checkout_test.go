package service_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urbandrop/storefront/internal/core/domain"
	"github.com/urbandrop/storefront/internal/core/service"
)

func checkoutDeps(archive *recArchive, producer *recOrderProducer) service.Deps {
	carts := newMemCarts()
	carts.Update("session-1", func(c domain.Cart) domain.Cart {
		jacket := domain.Product{
			ID: 1, Name: "Vintage Denim Jacket", Price: 89.99,
		}
		turtleneck := domain.Product{
			ID: 2, Name: "Retro Turtleneck", Price: 45.50,
		}
		return c.Add(jacket, "M").Add(jacket, "M").Add(turtleneck, "S")
	})

	return service.Deps{
		Carts:         carts,
		Messenger:     stubMessenger{},
		Archive:       archive,
		OrderProducer: producer,
	}
}

func TestCheckout(t *testing.T) {
	t.Run("EmptyCart", func(t *testing.T) {
		s := service.New(service.Deps{
			Carts:         newMemCarts(),
			Messenger:     stubMessenger{},
			Archive:       &recArchive{},
			OrderProducer: &recOrderProducer{},
		})

		_, err := s.Checkout(t.Context(), "nobody", "es")

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrEmptyCart)
	})

	t.Run("SpanishMessage", func(t *testing.T) {
		s := service.New(checkoutDeps(&recArchive{}, &recOrderProducer{}))

		order, err := s.Checkout(t.Context(), "session-1", "es")
		require.NoError(t, err)

		want := strings.Join([]string{
			"🛍️ ¡Hola! Quiero realizar este pedido:",
			"• Chaqueta Denim Vintage\n  Talla: M | Cantidad: 2 | $179.98",
			"• Cuello Alto Retro\n  Talla: S | Cantidad: 1 | $45.50",
			"💰 TOTAL: $225.48",
			"¿Podrías confirmar disponibilidad y método de pago?",
			"¡Gracias!",
		}, "\n\n")
		assert.Equal(t, want, order.Message)
	})

	t.Run("EnglishMessageKeepsSpanishItemLabels", func(t *testing.T) {
		s := service.New(checkoutDeps(&recArchive{}, &recOrderProducer{}))

		order, err := s.Checkout(t.Context(), "session-1", "en")
		require.NoError(t, err)

		want := strings.Join([]string{
			"🛍️ Hello! I want to place this order:",
			"• Vintage Denim Jacket\n  Talla: M | Cantidad: 2 | $179.98",
			"• Retro Turtleneck\n  Talla: S | Cantidad: 1 | $45.50",
			"💰 TOTAL: $225.48",
			"Could you confirm availability and payment method?",
			"Thank you!",
		}, "\n\n")
		assert.Equal(t, want, order.Message)
	})

	t.Run("UnknownLocaleFallsBackToSpanish", func(t *testing.T) {
		s := service.New(checkoutDeps(&recArchive{}, &recOrderProducer{}))

		order, err := s.Checkout(t.Context(), "session-1", "fr")
		require.NoError(t, err)

		assert.Equal(t, "es", order.Locale)
	})

	t.Run("EmptyLocaleUsesConfiguredDefault", func(t *testing.T) {
		deps := checkoutDeps(&recArchive{}, &recOrderProducer{})
		deps.DefaultLocale = "en"
		s := service.New(deps)

		order, err := s.Checkout(t.Context(), "session-1", "")
		require.NoError(t, err)

		assert.Equal(t, "en", order.Locale)
	})

	t.Run("OrderFields", func(t *testing.T) {
		archive := &recArchive{}
		producer := &recOrderProducer{}
		s := service.New(checkoutDeps(archive, producer))

		order, err := s.Checkout(t.Context(), "session-1", "es")
		require.NoError(t, err)

		assert.Equal(t, "session-1", order.SessionID)
		assert.Equal(t, "5215634596804", order.Recipient)
		assert.Equal(t, "225.48", order.Total.StringFixed(2))
		assert.Len(t, order.Lines, 2)
		assert.True(
			t, strings.HasPrefix(order.Link, "https://wa.me/5215634596804?text="),
		)
		assert.False(t, order.PlacedAt.IsZero())

		require.Len(t, archive.orders, 1)
		require.Len(t, producer.orders, 1)
		assert.Equal(t, order.Message, archive.orders[0].Message)
	})

	t.Run("NotificationFailuresDontBlock", func(t *testing.T) {
		archive := &recArchive{err: errors.New("hdfs is down")}
		producer := &recOrderProducer{err: errors.New("broker is down")}
		s := service.New(checkoutDeps(archive, producer))

		order, err := s.Checkout(t.Context(), "session-1", "es")

		require.NoError(t, err)
		assert.NotEmpty(t, order.Link)
	})

	t.Run("CartSurvivesCheckout", func(t *testing.T) {
		deps := checkoutDeps(&recArchive{}, &recOrderProducer{})
		s := service.New(deps)

		_, err := s.Checkout(t.Context(), "session-1", "es")
		require.NoError(t, err)

		cart, err := s.ViewCart(t.Context(), "session-1")
		require.NoError(t, err)
		assert.Equal(t, 3, cart.ItemCount())
	})
}

func TestOrderInsights(t *testing.T) {
	t.Run("ReportsPerArchivedSession", func(t *testing.T) {
		archive := &recArchive{paths: []string{
			"/orders/session-1", "/orders/session-2",
		}}
		analyzer := &fakeAnalyzer{reports: []domain.SalesReport{
			{SessionID: "session-1", Orders: 3},
			{SessionID: "session-2", Orders: 1},
		}}
		s := service.New(service.Deps{Archive: archive, Analyzer: analyzer})

		reports, err := s.OrderInsights(t.Context())

		require.NoError(t, err)
		assert.Equal(t, analyzer.reports, reports)
		assert.Equal(t, archive.paths, analyzer.gotPaths)
	})

	t.Run("NoArchivedOrders", func(t *testing.T) {
		analyzer := &fakeAnalyzer{}
		s := service.New(service.Deps{Archive: &recArchive{}, Analyzer: analyzer})

		reports, err := s.OrderInsights(t.Context())

		require.NoError(t, err)
		assert.Empty(t, reports)
		assert.Nil(t, analyzer.gotPaths)
	})

	t.Run("ListErrorPropagates", func(t *testing.T) {
		listErr := errors.New("hdfs is down")
		s := service.New(service.Deps{
			Archive:  &recArchive{err: listErr},
			Analyzer: &fakeAnalyzer{},
		})

		_, err := s.OrderInsights(t.Context())

		require.Error(t, err)
		assert.ErrorIs(t, err, listErr)
	})
}
