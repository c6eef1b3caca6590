package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/urbandrop/storefront/internal/core/domain"
	"github.com/urbandrop/storefront/internal/core/port"
)

var _ port.CatalogBrowser = (*Service)(nil)
var _ port.CartEditor = (*Service)(nil)
var _ port.CheckoutSender = (*Service)(nil)
var _ port.ProductsSender = (*Service)(nil)
var _ port.ProductStatusSetter = (*Service)(nil)
var _ port.ProductsSaver = (*Service)(nil)
var _ port.InsightsProvider = (*Service)(nil)

// Deps lists the collaborators of the core service. Catalog, Carts and
// Messenger are required for the storefront surface; the rest back the
// admin ingest pipeline and checkout notifications.
type Deps struct {
	Catalog   port.ProductsProvider
	Storage   port.ProductsStorage
	Carts     port.CartStorage
	Messenger port.CheckoutMessenger

	ProductsProducer port.ProductsProducer
	StatusProducer   port.ProductStatusProducer
	OrderProducer    port.OrderProducer

	Archive  port.OrderArchive
	Analyzer port.SalesAnalyzer

	StatusProc port.ProductStatusProcessor
	GateProc   port.CatalogGateProcessor

	Currency      string
	DefaultLocale string
}

type Service struct {
	deps Deps
}

func New(deps Deps) *Service {
	if deps.Currency == "" {
		deps.Currency = "$"
	}
	return &Service{deps}
}

// Run runs the stream processors in separate goroutines.
//
// Blocks the current goroutine while the processors prepare to ready state.
func (s *Service) Run(ctx context.Context, stopFn context.CancelFunc) {
	var wg sync.WaitGroup
	wg.Add(2)
	go s.deps.StatusProc.Run(ctx, stopFn, &wg)
	go s.deps.GateProc.Run(ctx, stopFn, &wg)
	wg.Wait()
}

func (s *Service) Close() {
	s.deps.StatusProc.Close()
	s.deps.GateProc.Close()
}

func (s *Service) SendProducts(ctx context.Context, ps []domain.Product) error {
	const op = "Service.SendProducts"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err := s.deps.ProductsProducer.ProduceProducts(ctx, ps)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *Service) SetProductStatus(ctx context.Context, st domain.ProductStatus) error {
	const op = "Service.SetProductStatus"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err := s.deps.StatusProducer.ProduceStatus(ctx, st)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *Service) SaveProducts(ctx context.Context, ps []domain.Product) error {
	const op = "Service.SaveProducts"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err := s.deps.Storage.StoreProducts(ctx, ps)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *Service) OrderInsights(ctx context.Context) ([]domain.SalesReport, error) {
	const op = "Service.OrderInsights"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	paths, err := s.deps.Archive.ListOrderFiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(paths) == 0 {
		return nil, nil
	}

	var reports []domain.SalesReport
	for r := range s.deps.Analyzer.Do(ctx, paths) {
		reports = append(reports, r)
	}
	return reports, nil
}
