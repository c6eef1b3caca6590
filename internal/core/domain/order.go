package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a composed checkout handoff: the formatted text message,
// the recipient it is addressed to and the deep link embedding both.
// No order persistence or confirmation is implied.
type Order struct {
	SessionID string
	Lines     []LineItem
	Total     decimal.Decimal
	Locale    string
	Message   string
	Recipient string
	Link      string
	PlacedAt  time.Time
}

// ProductStatus flags a product as discontinued so the catalog gate
// drops it from the ingest stream.
type ProductStatus struct {
	ProductID    int64
	Discontinued bool
}

// SalesReport is one aggregate row from the order archive.
type SalesReport struct {
	SessionID string
	Orders    int
}
