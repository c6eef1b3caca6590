package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/urbandrop/storefront/internal/core/domain"
)

type MockProductsProvider struct {
	mock.Mock
}

func (m *MockProductsProvider) ListProducts(
	ctx context.Context,
) ([]domain.Product, error) {
	args := m.Called(ctx)
	ps, _ := args.Get(0).([]domain.Product)
	return ps, args.Error(1)
}

func (m *MockProductsProvider) ReadProduct(
	ctx context.Context, productID int64,
) (domain.Product, error) {
	args := m.Called(ctx, productID)
	p, _ := args.Get(0).(domain.Product)
	return p, args.Error(1)
}

type memCarts struct {
	carts map[string]domain.Cart
}

func newMemCarts() *memCarts {
	return &memCarts{carts: make(map[string]domain.Cart)}
}

func (s *memCarts) View(sessionID string) domain.Cart {
	return s.carts[sessionID]
}

func (s *memCarts) Update(
	sessionID string, fn func(domain.Cart) domain.Cart,
) domain.Cart {
	cart := fn(s.carts[sessionID])
	s.carts[sessionID] = cart
	return cart
}

type stubMessenger struct{}

func (stubMessenger) Recipient() string {
	return "5215634596804"
}

func (stubMessenger) OrderLink(message string) string {
	return "https://wa.me/5215634596804?text=" + message
}

type recArchive struct {
	orders []domain.Order
	paths  []string
	err    error
}

func (a *recArchive) StoreOrder(_ context.Context, order domain.Order) error {
	if a.err != nil {
		return a.err
	}
	a.orders = append(a.orders, order)
	return nil
}

func (a *recArchive) ListOrderFiles(context.Context) ([]string, error) {
	return a.paths, a.err
}

type recOrderProducer struct {
	orders []domain.Order
	err    error
}

func (p *recOrderProducer) ProduceOrder(
	_ context.Context, order domain.Order,
) error {
	if p.err != nil {
		return p.err
	}
	p.orders = append(p.orders, order)
	return nil
}

type fakeAnalyzer struct {
	reports  []domain.SalesReport
	gotPaths []string
}

func (a *fakeAnalyzer) Do(
	_ context.Context, srcPaths []string,
) <-chan domain.SalesReport {
	a.gotPaths = srcPaths
	c := make(chan domain.SalesReport, len(a.reports))
	for _, r := range a.reports {
		c <- r
	}
	close(c)
	return c
}
