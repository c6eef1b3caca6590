package port

import (
	"context"
	"sync"

	"github.com/urbandrop/storefront/internal/core/domain"
)

type (
	runnerContextWg interface {
		Run(context.Context, context.CancelFunc, *sync.WaitGroup)
	}

	closer interface {
		Close()
	}
)

// Inbound ports, implemented by the core service.

type CatalogBrowser interface {
	BrowseProducts(context.Context, domain.BrowseQuery) (domain.CatalogView, error)
}

type CartEditor interface {
	ViewCart(ctx context.Context, sessionID string) (domain.Cart, error)
	AddToCart(ctx context.Context, sessionID string, productID int64, size string) (domain.Cart, error)
	RemoveFromCart(ctx context.Context, sessionID string, productID int64, size string) (domain.Cart, error)
	SetCartQuantity(ctx context.Context, sessionID string, productID int64, size string, quantity int) (domain.Cart, error)
}

type CheckoutSender interface {
	Checkout(ctx context.Context, sessionID, locale string) (domain.Order, error)
}

type ProductsSender interface {
	SendProducts(context.Context, []domain.Product) error
}

type ProductStatusSetter interface {
	SetProductStatus(context.Context, domain.ProductStatus) error
}

type ProductsSaver interface {
	SaveProducts(context.Context, []domain.Product) error
}

type InsightsProvider interface {
	OrderInsights(context.Context) ([]domain.SalesReport, error)
}

// Outbound ports, satisfied by adapters.

type ProductsProvider interface {
	ListProducts(context.Context) ([]domain.Product, error)
	ReadProduct(ctx context.Context, productID int64) (domain.Product, error)
}

type ProductsStorage interface {
	StoreProducts(context.Context, []domain.Product) error
}

type CartStorage interface {
	View(sessionID string) domain.Cart
	Update(sessionID string, fn func(domain.Cart) domain.Cart) domain.Cart
}

type CheckoutMessenger interface {
	Recipient() string
	OrderLink(message string) string
}

type ProductsProducer interface {
	ProduceProducts(context.Context, []domain.Product) error
}

type ProductStatusProducer interface {
	ProduceStatus(context.Context, domain.ProductStatus) error
}

type OrderProducer interface {
	ProduceOrder(context.Context, domain.Order) error
}

type OrderArchive interface {
	StoreOrder(context.Context, domain.Order) error
	ListOrderFiles(context.Context) ([]string, error)
}

type SalesAnalyzer interface {
	Do(ctx context.Context, srcPaths []string) <-chan domain.SalesReport
}

type ProductStatusProcessor interface {
	runnerContextWg
	closer
}

type CatalogGateProcessor interface {
	runnerContextWg
	closer
}
