package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/colinmarc/hdfs/v2"
	"github.com/twmb/franz-go/pkg/sr"
	"github.com/urbandrop/storefront/config"
	"github.com/urbandrop/storefront/internal/adapter/analytics"
	"github.com/urbandrop/storefront/internal/adapter/archive"
	"github.com/urbandrop/storefront/internal/adapter/cartstore"
	"github.com/urbandrop/storefront/internal/adapter/httphandler"
	"github.com/urbandrop/storefront/internal/adapter/kafka"
	"github.com/urbandrop/storefront/internal/adapter/storage"
	"github.com/urbandrop/storefront/internal/adapter/whatsapp"
	"github.com/urbandrop/storefront/internal/core/service"
	"github.com/urbandrop/storefront/pkg/schema"
)

type serdes struct {
	product schema.Serde
	status  schema.Serde
	order   schema.Serde
}

type producers struct {
	products kafka.ProductsProducer
	status   kafka.ProductStatusProducer
	orders   kafka.OrderProducer
}

type App struct {
	ctx        context.Context
	cfg        config.Config
	serdes     serdes
	producers  producers
	sqlDB      storage.SQLDB
	hdfsClient *hdfs.Client
	service    *service.Service
	consumer   kafka.StoreConsumer
	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initSerdes()
	app.initCoreService()
	app.initInboundAdapters()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initSerdes() {
	const op = "App.initSerdes"
	urls := app.cfg.Broker.SchemaRegistryURLs
	topics := app.cfg.Broker.Topics
	ctx := app.ctx

	srClient, err := sr.NewClient(sr.URLs(urls...))
	if err != nil {
		app.fallDown(op, err)
	}

	schemaCreater := schema.NewSchemaCreater(srClient)

	productSerde, err := schema.NewSerdeProductV1(
		ctx,
		schema.SubjectOpt(topics.ProductsIngest+"-value"),
		schema.SchemaIdentifierOpt(schemaCreater),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	statusSerde, err := schema.NewSerdeProductStatusV1(
		ctx,
		schema.SubjectOpt(topics.StatusStream+"-value"),
		schema.SchemaIdentifierOpt(schemaCreater),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	orderSerde, err := schema.NewSerdeOrderPlacedV1(
		ctx,
		schema.SubjectOpt(topics.OrdersPlaced+"-value"),
		schema.SchemaIdentifierOpt(schemaCreater),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	app.serdes.product = productSerde
	app.serdes.status = statusSerde
	app.serdes.order = orderSerde
}

func (app *App) initCoreService() {
	const op = "App.initCoreService"

	ctx := app.ctx
	cfg := app.cfg
	seedBrokers := cfg.Broker.SeedBrokers
	topics := cfg.Broker.Topics

	sqlDB, err := storage.NewSQLDB(ctx, cfg.SQLDB)
	if err != nil {
		app.fallDown(op, err)
	}
	app.sqlDB = sqlDB

	productsRepo := storage.NewProductsRepository(sqlDB)
	carts := cartstore.New()
	messenger := whatsapp.New(cfg.Checkout.WhatsAppPhone)

	productsProducer, err := kafka.NewProductsProducer(
		kafka.ProducerClientOpt(ctx, seedBrokers, topics.ProductsIngest),
		kafka.ProducerEncoderOpt(app.serdes.product),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	statusProducer, err := kafka.NewProductStatusProducer(
		kafka.ProducerClientOpt(ctx, seedBrokers, topics.StatusStream),
		kafka.ProducerEncoderOpt(app.serdes.status),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	orderProducer, err := kafka.NewOrderProducer(
		kafka.ProducerClientOpt(ctx, seedBrokers, topics.OrdersPlaced),
		kafka.ProducerEncoderOpt(app.serdes.order),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	app.producers.products = productsProducer
	app.producers.status = statusProducer
	app.producers.orders = orderProducer

	hdfsClient, err := hdfs.New(cfg.Archive.HDFSAddr)
	if err != nil {
		app.fallDown(op, err)
	}
	app.hdfsClient = hdfsClient

	ordersArchive := archive.NewOrdersRepository(
		hdfsClient, cfg.Archive.OrdersDir,
	)
	analyzer := analytics.NewOrdersAnalyzer(cfg.Analytics.SparkAddr)

	statusProc, err := kafka.NewProductStatusProc(
		seedBrokers,
		topics.StatusStream,
		topics.ProductStatusTable,
		app.serdes.status,
	)
	if err != nil {
		app.fallDown(op, err)
	}

	gateProc, err := kafka.NewCatalogGateProc(
		seedBrokers,
		topics.ProductsIngest,
		topics.ProductStatusTable,
		topics.ProductsStore,
		cfg.Broker.Consumers.CatalogGateGroup,
		app.serdes.product,
	)
	if err != nil {
		app.fallDown(op, err)
	}

	app.service = service.New(service.Deps{
		Catalog:          productsRepo,
		Storage:          productsRepo,
		Carts:            carts,
		Messenger:        messenger,
		ProductsProducer: productsProducer,
		StatusProducer:   statusProducer,
		OrderProducer:    orderProducer,
		Archive:          ordersArchive,
		Analyzer:         analyzer,
		StatusProc:       statusProc,
		GateProc:         gateProc,
		Currency:         cfg.Checkout.Currency,
		DefaultLocale:    cfg.Checkout.DefaultLocale,
	})
}

func (app *App) initInboundAdapters() {
	const op = "App.initInboundAdapters"

	cfg := app.cfg

	consumerClient, err := kafka.NewConsumerClient(
		app.ctx,
		cfg.Broker.SeedBrokers,
		cfg.Broker.Topics.ProductsStore,
		cfg.Broker.Consumers.ProductSaverGroup,
	)
	if err != nil {
		app.fallDown(op, err)
	}

	app.consumer = kafka.NewStoreConsumer(
		kafka.ConsumerClientOpt(consumerClient),
		kafka.ConsumerProductsSaverOpt(app.service),
		kafka.ConsumerDecodeFnOpt(app.serdes.product.Decode),
	)

	mux := http.NewServeMux()
	httphandler.RegisterCatalog(mux, app.service)
	httphandler.RegisterCart(mux, app.service)
	httphandler.RegisterCheckout(mux, app.service)
	httphandler.RegisterAdmin(mux, app.service, app.service, app.service)

	handler := httphandler.AllowJSON(mux)
	app.httpServer = httphandler.NewHTTPServer(cfg.HTTPServerAddr, handler)
}

// Run starts the stream processors, the store consumer and the HTTP
// server. Blocks until the processors reach ready state.
func (app *App) Run(stopFn context.CancelFunc) {
	app.service.Run(app.ctx, stopFn)
	go app.consumer.Run(app.ctx)
	go app.httpServer.Run(stopFn)

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	app.consumer.Close()
	app.service.Close()
	app.producers.products.Close()
	app.producers.status.Close()
	app.producers.orders.Close()
	app.closeHDFS()
	app.sqlDB.Close()

	slog.Info("application is closed")
}

func (app *App) closeHDFS() {
	const op = "App.closeHDFS"
	if err := app.hdfsClient.Close(); err != nil {
		slog.With("op", op).Error("failed to close hdfs client", "err", err)
	}
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
