package kafka

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"
	"github.com/urbandrop/storefront/internal/core/domain"
	"github.com/urbandrop/storefront/internal/core/port"
	"github.com/urbandrop/storefront/pkg/schema"
)

type ConsumerOpt func(*consumerOpts) error

func ConsumerClientOpt(cl ConsumerClient) ConsumerOpt {
	return func(opts *consumerOpts) error {
		if cl != nil {
			opts.cl = cl
			return nil
		}
		return errors.New("consumer client is nil")
	}
}

func ConsumerProductsSaverOpt(s port.ProductsSaver) ConsumerOpt {
	return func(opts *consumerOpts) error {
		if s != nil {
			opts.pSaver = s
			return nil
		}
		return errors.New("consumer products saver is nil")
	}
}

func ConsumerDecodeFnOpt(decodeFn func([]byte, any) error) ConsumerOpt {
	return func(opts *consumerOpts) error {
		if decodeFn != nil {
			opts.decodeFn = decodeFn
			return nil
		}
		return errors.New("consumer decode func is nil")
	}
}

// NewConsumerClient builds the group consumer for the store topic.
func NewConsumerClient(
	ctx context.Context, seedBrokers []string, topic, group string,
) (*kgo.Client, error) {
	const op = "NewConsumerClient"

	cl, err := kgo.NewClient(
		kgo.SeedBrokers(seedBrokers...),
		kgo.ConsumeTopics(topic),
		kgo.ConsumerGroup(group),
		kgo.DisableAutoCommit(),
	)
	if err != nil {
		return nil, opErr(err, op)
	}

	if err := cl.Ping(ctx); err != nil {
		return nil, opErr(err, op)
	}
	return cl, nil
}

type consumerOpts struct {
	cl       ConsumerClient
	pSaver   port.ProductsSaver
	decodeFn func([]byte, any) error
}

// A StoreConsumer moves gated products from the store topic into the
// catalog storage.
type StoreConsumer struct {
	cl       ConsumerClient
	pSaver   port.ProductsSaver
	decodeFn func([]byte, any) error
	errTimer *time.Timer
}

func NewStoreConsumer(opts ...ConsumerOpt) StoreConsumer {
	const op = "NewStoreConsumer"

	if len(opts) == 0 {
		panic(fmt.Errorf("%s: options not set", op)) // develop mistake
	}

	var options consumerOpts
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			panic(err) // develop mistake
		}
	}

	return StoreConsumer{
		cl:       options.cl,
		pSaver:   options.pSaver,
		decodeFn: options.decodeFn,
		errTimer: time.NewTimer(0),
	}
}

func (c StoreConsumer) Close() {
	const op = "StoreConsumer.Close"
	log := slog.With("op", op)

	log.Info("closing consumer...")
	c.errTimer.Stop()
	c.cl.Close()
	log.Info("consumer is closed")
}

func (c StoreConsumer) Run(ctx context.Context) {
	const op = "StoreConsumer.Run"
	log := slog.With("op", op)

	for {
		select {
		case <-ctx.Done():
			return
		default:
			err := c.consume(ctx)
			if err != nil {
				if errors.Is(err, context.Canceled) {
					log.Info("context canceled")
					continue
				}
				err = fmt.Errorf("%s: %w", op, err)
				log.Error("failed to consume messages", "err", err)
				c.slowDown()
				continue
			}
			err = c.commit(ctx)
			if err != nil {
				log.Error("failed to commit offset", "err", err)
			}
		}
	}
}

func (c StoreConsumer) commit(ctx context.Context) error {
	const op = "StoreConsumer.commit"
	err := ctx.Err()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err = c.cl.CommitUncommittedOffsets(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (c StoreConsumer) consume(ctx context.Context) error {
	const op = "StoreConsumer.consume"

	fetches, err := c.pollFetches(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if fetches.Empty() {
		return nil
	}

	ps := c.toProducts(fetches)
	if len(ps) == 0 {
		return nil
	}

	if err := c.pSaver.SaveProducts(ctx, ps); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (c StoreConsumer) pollFetches(ctx context.Context) (kgo.Fetches, error) {
	const op = "StoreConsumer.pollFetches"

	fetches := c.cl.PollFetches(ctx)
	if err := fetches.Err0(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	err := c.handleErrs(fetches)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return fetches, nil
}

func (c StoreConsumer) handleErrs(fetches kgo.Fetches) error {
	var errsData []string
	fetches.EachError(func(t string, p int32, err error) {
		if err != nil {
			errData := fmt.Sprintf(
				"topic %q partition %d: %q", t, p, err,
			)
			errsData = append(errsData, errData)
		}
	})

	if len(errsData) != 0 {
		return errors.New(strings.Join(errsData, "; "))
	}
	return nil
}

func (c StoreConsumer) toProducts(fetches kgo.Fetches) (ps []domain.Product) {
	const op = "StoreConsumer.toProducts"
	log := slog.With("op", op)

	fetches.EachRecord(func(r *kgo.Record) {
		var s schema.ProductV1
		if err := c.decodeFn(r.Value, &s); err != nil {
			err = fmt.Errorf("%s: %w", op, err)
			log.Error("failed to unmarshal value", "err", err)
			return
		}
		ps = append(ps, productToDomain(s))
	})
	return ps
}

func (c StoreConsumer) slowDown() {
	const timeout = 1 * time.Second
	c.errTimer.Reset(timeout)
	<-c.errTimer.C
}
