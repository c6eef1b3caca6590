package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urbandrop/storefront/internal/core/domain"
)

func jacket() domain.Product {
	return domain.Product{
		ID:    1,
		Name:  "Vintage Denim Jacket",
		Price: 89.99,
		Sizes: []string{"S", "M", "L"},
	}
}

func turtleneck() domain.Product {
	return domain.Product{
		ID:    2,
		Name:  "Retro Turtleneck",
		Price: 45.50,
		Sizes: []string{"XS", "S", "M"},
	}
}

func TestCartAdd(t *testing.T) {
	t.Run("AppendsNewLineItem", func(t *testing.T) {
		cart := domain.Cart{}.Add(jacket(), "M")

		require.Len(t, cart.Items, 1)
		li := cart.Items[0]
		assert.Equal(t, int64(1), li.ProductID)
		assert.Equal(t, "Vintage Denim Jacket", li.Name)
		assert.Equal(t, 89.99, li.Price)
		assert.Equal(t, "M", li.Size)
		assert.Equal(t, 1, li.Quantity)
	})

	t.Run("MergesSameProductAndSize", func(t *testing.T) {
		cart := domain.Cart{}.Add(jacket(), "M").Add(jacket(), "M")

		require.Len(t, cart.Items, 1)
		assert.Equal(t, 2, cart.Items[0].Quantity)
	})

	t.Run("SameProductOtherSizeIsNewItem", func(t *testing.T) {
		cart := domain.Cart{}.Add(jacket(), "M").Add(jacket(), "L")

		require.Len(t, cart.Items, 2)
		assert.Equal(t, 1, cart.Items[0].Quantity)
		assert.Equal(t, 1, cart.Items[1].Quantity)
	})

	t.Run("ReceiverUntouched", func(t *testing.T) {
		before := domain.Cart{}.Add(jacket(), "M")
		_ = before.Add(jacket(), "M")

		require.Len(t, before.Items, 1)
		assert.Equal(t, 1, before.Items[0].Quantity)
	})
}

func TestCartRemove(t *testing.T) {
	t.Run("DropsLineItem", func(t *testing.T) {
		cart := domain.Cart{}.
			Add(jacket(), "M").
			Add(turtleneck(), "S").
			Remove(1, "M")

		require.Len(t, cart.Items, 1)
		assert.Equal(t, int64(2), cart.Items[0].ProductID)
	})

	t.Run("AbsentKeyIsNoOp", func(t *testing.T) {
		cart := domain.Cart{}.Add(jacket(), "M")

		got := cart.Remove(1, "XL")
		assert.Equal(t, cart, got)

		got = cart.Remove(99, "M")
		assert.Equal(t, cart, got)
	})
}

func TestCartSetQuantity(t *testing.T) {
	t.Run("ReplacesQuantity", func(t *testing.T) {
		cart := domain.Cart{}.
			Add(jacket(), "M").
			SetQuantity(1, "M", 5)

		require.Len(t, cart.Items, 1)
		assert.Equal(t, 5, cart.Items[0].Quantity)
	})

	t.Run("ZeroRemoves", func(t *testing.T) {
		cart := domain.Cart{}.
			Add(jacket(), "M").
			SetQuantity(1, "M", 0)

		assert.True(t, cart.Empty())
	})

	t.Run("NegativeRemoves", func(t *testing.T) {
		cart := domain.Cart{}.
			Add(jacket(), "M").
			SetQuantity(1, "M", -3)

		assert.True(t, cart.Empty())
	})

	t.Run("AbsentKeyIsNoOp", func(t *testing.T) {
		cart := domain.Cart{}.Add(jacket(), "M")

		got := cart.SetQuantity(2, "M", 4)

		assert.Equal(t, cart, got)
	})
}

func TestCartTotal(t *testing.T) {
	t.Run("EmptyCartIsZero", func(t *testing.T) {
		assert.True(t, domain.Cart{}.Total().IsZero())
	})

	t.Run("SumsSubtotalsExactly", func(t *testing.T) {
		cart := domain.Cart{}.
			Add(jacket(), "M").
			Add(jacket(), "M").
			Add(turtleneck(), "S")

		// 89.99*2 + 45.50 without float drift
		assert.Equal(t, "225.48", cart.Total().StringFixed(2))
	})

	t.Run("BinaryUnfriendlyPrices", func(t *testing.T) {
		p := domain.Product{ID: 7, Name: "Canvas Tote", Price: 0.10}
		cart := domain.Cart{}
		for range 3 {
			cart = cart.Add(p, "One Size")
		}

		assert.Equal(t, "0.30", cart.Total().StringFixed(2))
		assert.Equal(t, "0.3", cart.Total().String())
	})
}

func TestCartItemCount(t *testing.T) {
	cart := domain.Cart{}.
		Add(jacket(), "M").
		Add(jacket(), "M").
		Add(turtleneck(), "S")

	assert.Equal(t, 3, cart.ItemCount())
	assert.Len(t, cart.Items, 2)
}

func TestLineItemSubtotal(t *testing.T) {
	li := domain.LineItem{ProductID: 1, Price: 89.99, Quantity: 3}
	assert.Equal(t, "269.97", li.Subtotal().StringFixed(2))
}
