package domain

import (
	"errors"
	"slices"

	"github.com/shopspring/decimal"
)

var ErrEmptyCart = errors.New("cart is empty")

// LineItem is one cart position, unique per (ProductID, Size) pair.
// Name and Price are captured from the product at add time.
type LineItem struct {
	ProductID int64
	Name      string
	Price     float64
	Size      string
	Quantity  int
}

// Subtotal is Price*Quantity without rounding.
func (li LineItem) Subtotal() decimal.Decimal {
	return decimal.NewFromFloat(li.Price).Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Cart is an immutable value: every operation returns a new cart and
// leaves the receiver untouched. Quantities are always positive; a
// line item dropping to zero is removed, never stored.
type Cart struct {
	Items []LineItem
}

func (c Cart) Empty() bool {
	return len(c.Items) == 0
}

// Add increments the matching line item by one, or appends a new item
// with quantity 1 capturing the product's name and price.
func (c Cart) Add(p Product, size string) Cart {
	i := c.index(p.ID, size)
	if i < 0 {
		items := append(slices.Clone(c.Items), LineItem{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Size:      size,
			Quantity:  1,
		})
		return Cart{items}
	}

	items := slices.Clone(c.Items)
	items[i].Quantity++
	return Cart{items}
}

// Remove drops the matching line item. Absent keys are a no-op.
func (c Cart) Remove(productID int64, size string) Cart {
	i := c.index(productID, size)
	if i < 0 {
		return c
	}
	return Cart{slices.Delete(slices.Clone(c.Items), i, i+1)}
}

// SetQuantity replaces the matching item's quantity. Zero or less
// removes the item. Absent keys are a no-op.
func (c Cart) SetQuantity(productID int64, size string, quantity int) Cart {
	if quantity <= 0 {
		return c.Remove(productID, size)
	}

	i := c.index(productID, size)
	if i < 0 {
		return c
	}

	items := slices.Clone(c.Items)
	items[i].Quantity = quantity
	return Cart{items}
}

// Total sums Price*Quantity over all line items exactly. Rounding to
// two decimals happens only when the total is rendered.
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, li := range c.Items {
		total = total.Add(li.Subtotal())
	}
	return total
}

// ItemCount is the sum of all quantities, shown on the cart badge.
func (c Cart) ItemCount() int {
	var n int
	for _, li := range c.Items {
		n += li.Quantity
	}
	return n
}

func (c Cart) index(productID int64, size string) int {
	return slices.IndexFunc(c.Items, func(li LineItem) bool {
		return li.ProductID == productID && li.Size == size
	})
}
