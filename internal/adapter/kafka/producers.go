package kafka

import (
	"context"
	"log/slog"

	"github.com/twmb/franz-go/pkg/kgo"
	"github.com/urbandrop/storefront/internal/core/domain"
	"github.com/urbandrop/storefront/internal/core/port"
)

var _ port.ProductsProducer = (*ProductsProducer)(nil)
var _ port.ProductStatusProducer = (*ProductStatusProducer)(nil)
var _ port.OrderProducer = (*OrderProducer)(nil)

// A producer is used for composition.
//
// Producing records to the broker and closing the underlying [kgo.Client].
type producer struct {
	opPrefix string
	cl       ProducerClient
	encoder  Encoder
}

func newProducer(opPrefix, op string, opts ...ProducerOpt) (producer, error) {
	if len(opts) != 2 {
		panic(opErr(ErrTooFewOpts, op)) // develop mistake
	}

	var options producerOpts
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return producer{}, opErr(err, op)
		}
	}

	return producer{
		opPrefix: opPrefix,
		cl:       options.cl,
		encoder:  options.encoder,
	}, nil
}

func (p producer) close() {
	const op = "close"
	log := slog.With("op", makeOp(p.opPrefix, op))
	log.Info("closing producer...")
	p.cl.Close()
	log.Info("producer is closed")
}

func (p producer) produce(ctx context.Context, rs ...*kgo.Record) error {
	const op = "produce"
	res := p.cl.ProduceSync(ctx, rs...)
	if err := res.FirstErr(); err != nil {
		return opErr(err, p.opPrefix, op)
	}
	return nil
}

func (p producer) createRecord(key []byte, v any) (*kgo.Record, error) {
	const op = "createRecord"
	b, err := p.encoder.Encode(v)
	if err != nil {
		return nil, opErr(err, p.opPrefix, op)
	}
	return &kgo.Record{Key: key, Value: b}, nil
}

// A ProductsProducer sends product batches to the ingest stream.
type ProductsProducer struct {
	producer producer
}

func NewProductsProducer(opts ...ProducerOpt) (ProductsProducer, error) {
	const op = "NewProductsProducer"
	p, err := newProducer("ProductsProducer", op, opts...)
	if err != nil {
		return ProductsProducer{}, err
	}
	return ProductsProducer{p}, nil
}

func (p ProductsProducer) Close() {
	p.producer.close()
}

func (p ProductsProducer) ProduceProducts(
	ctx context.Context, vs []domain.Product,
) error {
	const op = "ProduceProducts"

	if err := ctx.Err(); err != nil {
		return opErr(err, p.producer.opPrefix, op)
	}

	rs := make([]*kgo.Record, 0, len(vs))
	for _, v := range vs {
		r, err := p.producer.createRecord(
			productKey(v.ID), productToSchemaV1(v),
		)
		if err != nil {
			return opErr(err, p.producer.opPrefix, op)
		}
		rs = append(rs, r)
	}

	if err := p.producer.produce(ctx, rs...); err != nil {
		return opErr(err, p.producer.opPrefix, op)
	}
	return nil
}

// A ProductStatusProducer sends discontinue/restore flags to the
// status stream consumed by the catalog gate.
type ProductStatusProducer struct {
	producer producer
}

func NewProductStatusProducer(opts ...ProducerOpt) (ProductStatusProducer, error) {
	const op = "NewProductStatusProducer"
	p, err := newProducer("ProductStatusProducer", op, opts...)
	if err != nil {
		return ProductStatusProducer{}, err
	}
	return ProductStatusProducer{p}, nil
}

func (p ProductStatusProducer) Close() {
	p.producer.close()
}

func (p ProductStatusProducer) ProduceStatus(
	ctx context.Context, v domain.ProductStatus,
) error {
	const op = "ProduceStatus"

	if err := ctx.Err(); err != nil {
		return opErr(err, p.producer.opPrefix, op)
	}

	r, err := p.producer.createRecord(
		productKey(v.ProductID), statusToSchemaV1(v),
	)
	if err != nil {
		return opErr(err, p.producer.opPrefix, op)
	}

	if err := p.producer.produce(ctx, r); err != nil {
		return opErr(err, p.producer.opPrefix, op)
	}
	return nil
}

// An OrderProducer emits one event per placed order.
type OrderProducer struct {
	producer producer
}

func NewOrderProducer(opts ...ProducerOpt) (OrderProducer, error) {
	const op = "NewOrderProducer"
	p, err := newProducer("OrderProducer", op, opts...)
	if err != nil {
		return OrderProducer{}, err
	}
	return OrderProducer{p}, nil
}

func (p OrderProducer) Close() {
	p.producer.close()
}

func (p OrderProducer) ProduceOrder(
	ctx context.Context, v domain.Order,
) error {
	const op = "ProduceOrder"

	if err := ctx.Err(); err != nil {
		return opErr(err, p.producer.opPrefix, op)
	}

	r, err := p.producer.createRecord(
		[]byte(v.SessionID), orderToSchemaV1(v),
	)
	if err != nil {
		return opErr(err, p.producer.opPrefix, op)
	}

	if err := p.producer.produce(ctx, r); err != nil {
		return opErr(err, p.producer.opPrefix, op)
	}
	return nil
}
