package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urbandrop/storefront/internal/core/domain"
	"github.com/urbandrop/storefront/internal/core/service"
)

func TestCartOperations(t *testing.T) {
	const sessionID = "session-1"

	jacket := domain.Product{
		ID:    1,
		Name:  "Vintage Denim Jacket",
		Price: 89.99,
		Sizes: []string{"S", "M", "L"},
	}

	t.Run("ViewUnknownSessionIsEmpty", func(t *testing.T) {
		s := service.New(service.Deps{Carts: newMemCarts()})

		cart, err := s.ViewCart(t.Context(), sessionID)

		require.NoError(t, err)
		assert.True(t, cart.Empty())
	})

	t.Run("AddCapturesProduct", func(t *testing.T) {
		provider := new(MockProductsProvider)
		provider.On("ReadProduct", t.Context(), int64(1)).Return(jacket, nil)
		s := service.New(service.Deps{Catalog: provider, Carts: newMemCarts()})

		cart, err := s.AddToCart(t.Context(), sessionID, 1, "M")
		require.NoError(t, err)
		require.Len(t, cart.Items, 1)
		assert.Equal(t, "Vintage Denim Jacket", cart.Items[0].Name)
		assert.Equal(t, 89.99, cart.Items[0].Price)

		cart, err = s.AddToCart(t.Context(), sessionID, 1, "M")
		require.NoError(t, err)
		require.Len(t, cart.Items, 1)
		assert.Equal(t, 2, cart.Items[0].Quantity)
	})

	t.Run("AddUnknownProduct", func(t *testing.T) {
		provider := new(MockProductsProvider)
		provider.On("ReadProduct", t.Context(), int64(99)).
			Return(domain.Product{}, domain.ErrProductNotFound)
		s := service.New(service.Deps{Catalog: provider, Carts: newMemCarts()})

		_, err := s.AddToCart(t.Context(), sessionID, 99, "M")

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})

	t.Run("SetQuantityAndRemove", func(t *testing.T) {
		provider := new(MockProductsProvider)
		provider.On("ReadProduct", t.Context(), int64(1)).Return(jacket, nil)
		s := service.New(service.Deps{Catalog: provider, Carts: newMemCarts()})

		_, err := s.AddToCart(t.Context(), sessionID, 1, "M")
		require.NoError(t, err)

		cart, err := s.SetCartQuantity(t.Context(), sessionID, 1, "M", 4)
		require.NoError(t, err)
		require.Len(t, cart.Items, 1)
		assert.Equal(t, 4, cart.Items[0].Quantity)

		cart, err = s.RemoveFromCart(t.Context(), sessionID, 1, "M")
		require.NoError(t, err)
		assert.True(t, cart.Empty())
	})

	t.Run("SetQuantityZeroRemoves", func(t *testing.T) {
		provider := new(MockProductsProvider)
		provider.On("ReadProduct", t.Context(), int64(1)).Return(jacket, nil)
		s := service.New(service.Deps{Catalog: provider, Carts: newMemCarts()})

		_, err := s.AddToCart(t.Context(), sessionID, 1, "M")
		require.NoError(t, err)

		cart, err := s.SetCartQuantity(t.Context(), sessionID, 1, "M", 0)
		require.NoError(t, err)
		assert.True(t, cart.Empty())
	})
}
