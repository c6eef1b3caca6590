package kafka

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/lovoo/goka"
	"github.com/twmb/franz-go/pkg/kgo"
	"github.com/urbandrop/storefront/internal/core/domain"
	"github.com/urbandrop/storefront/pkg/schema"
)

var (
	ErrTooFewOpts       = errors.New("too few options")
	ErrInvalidValueType = errors.New("invalid value type")
)

type ProducerOpt func(*producerOpts) error

type producerOpts struct {
	cl      ProducerClient
	encoder Encoder
}

func ProducerClientOpt(
	ctx context.Context, seedBrokers []string, topic string,
) ProducerOpt {
	return func(opts *producerOpts) error {
		cl, err := kgo.NewClient(
			kgo.SeedBrokers(seedBrokers...),
			kgo.DefaultProduceTopicAlways(),
			kgo.DefaultProduceTopic(topic),
			kgo.RequiredAcks(kgo.AllISRAcks()),
			kgo.AllowAutoTopicCreation(),
		)
		if err != nil {
			return err
		}

		if err := cl.Ping(ctx); err != nil {
			return err
		}
		opts.cl = cl
		return nil
	}
}

func ProducerEncoderOpt(encoder Encoder) ProducerOpt {
	return func(opts *producerOpts) error {
		if encoder == nil {
			return errors.New("encoder is nil")
		}
		opts.encoder = encoder
		return nil
	}
}

type ProducerClient interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
	Close()
}

type ConsumerClient interface {
	PollFetches(context.Context) kgo.Fetches
	CommitUncommittedOffsets(context.Context) error
	Close()
}

type Encoder interface {
	Encode(v any) ([]byte, error)
}

type Decoder interface {
	Decode(b []byte, v any) error
}

type Serde interface {
	Encoder
	Decoder
}

func withNoLogProcOpt() goka.ProcessorOption {
	return goka.WithLogger(log.New(io.Discard, "", 0))
}

func makeOp(s ...string) string {
	return strings.Join(s, ".")
}

func opErr(err error, op ...string) error {
	return fmt.Errorf("%s: %w", makeOp(op...), err)
}

func productKey(productID int64) []byte {
	return strconv.AppendInt(nil, productID, 10)
}

func productToSchemaV1(v domain.Product) (s schema.ProductV1) {
	s.ID = v.ID
	s.Name = v.Name
	s.Description = v.Description
	s.Category = v.Category
	s.Price = v.Price
	s.Sizes = v.Sizes
	s.InStock = v.InStock
	s.Images = v.Images
	return
}

func productToDomain(s schema.ProductV1) (v domain.Product) {
	v.ID = s.ID
	v.Name = s.Name
	v.Description = s.Description
	v.Category = s.Category
	v.Price = s.Price
	v.Sizes = s.Sizes
	v.InStock = s.InStock
	v.Images = s.Images
	return
}

func statusToSchemaV1(v domain.ProductStatus) (s schema.ProductStatusV1) {
	s.ProductID = v.ProductID
	s.Discontinued = v.Discontinued
	return
}

func orderToSchemaV1(v domain.Order) (s schema.OrderPlacedV1) {
	s.SessionID = v.SessionID
	s.Total = v.Total.StringFixed(2)
	s.Locale = v.Locale
	s.Recipient = v.Recipient
	s.PlacedAt = v.PlacedAt.UnixMilli()

	s.Lines = make([]schema.OrderLineV1, len(v.Lines))
	for i, li := range v.Lines {
		s.Lines[i] = schema.OrderLineV1{
			ProductID: li.ProductID,
			Name:      li.Name,
			Price:     li.Price,
			Size:      li.Size,
			Quantity:  li.Quantity,
		}
	}
	return
}
