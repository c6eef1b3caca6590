package kafka

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"sync"

	"github.com/lovoo/goka"
	"github.com/urbandrop/storefront/internal/core/port"
	"github.com/urbandrop/storefront/pkg/schema"
)

var _ port.ProductStatusProcessor = (*ProductStatusProcessor)(nil)
var _ port.CatalogGateProcessor = (*CatalogGateProcessor)(nil)

// A processor is used for composition.
//
// Running and closing the underlying [goka.Processor].
type processor struct {
	opPrefix string
	gp       *goka.Processor
}

func (p *processor) run(
	ctx context.Context, stopFn context.CancelFunc, wg *sync.WaitGroup,
) {
	const op = "run"
	log := slog.With("op", makeOp(p.opPrefix, op))

	defer wg.Done()

	go p.runProc(ctx, stopFn)

	log.Info("preparing...")
	p.waitForReady(ctx)
	log.Info("running")
}

func (p *processor) runProc(ctx context.Context, stopFn context.CancelFunc) {
	const op = "run"
	log := slog.With("op", makeOp(p.opPrefix, op))

	defer stopFn()

	err := p.gp.Run(ctx)
	if err != nil {
		log.Error("stopped", "err", err)
		return
	}
	log.Info("stopped")
}

func (p *processor) waitForReady(ctx context.Context) {
	const op = "waitForReady"
	log := slog.With("op", makeOp(p.opPrefix, op))

	err := p.gp.WaitForReadyContext(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		log.Error("fall down while preparing", "err", err)
		return
	}
}

func (p *processor) close() {
	const op = "close"
	log := slog.With("op", makeOp(p.opPrefix, op))

	log.Info("closing processor...")
	p.gp.Stop()
	log.Info("processor is closed")
}

// A statusEventCodec used for serde [schema.ProductStatusV1]
type statusEventCodec struct {
	serde Serde
}

func newStatusEventCodec(s Serde) statusEventCodec {
	return statusEventCodec{s}
}

func (c statusEventCodec) Encode(v any) ([]byte, error) {
	const op = "statusEventCodec.Encode"
	if _, ok := v.(schema.ProductStatusV1); !ok {
		return nil, opErr(ErrInvalidValueType, op)
	}
	return c.serde.Encode(v)
}

func (c statusEventCodec) Decode(data []byte) (any, error) {
	const op = "statusEventCodec.Decode"
	var s schema.ProductStatusV1
	err := c.serde.Decode(data, &s)
	if err != nil {
		return nil, opErr(err, op)
	}
	return s, nil
}

// A discontinuedValue represents the gate flag for one product id
type discontinuedValue bool

// A discontinuedValueCodec used for serde [discontinuedValue]
type discontinuedValueCodec struct{}

func (discontinuedValueCodec) Encode(v any) ([]byte, error) {
	const op = "discontinuedValueCodec.Encode"
	dv, ok := v.(discontinuedValue)
	if !ok {
		return nil, opErr(ErrInvalidValueType, op)
	}
	data := strconv.AppendBool([]byte(nil), bool(dv))
	return data, nil
}

func (discontinuedValueCodec) Decode(data []byte) (any, error) {
	const op = "discontinuedValueCodec.Decode"
	dv, err := strconv.ParseBool(string(data))
	if err != nil {
		return nil, opErr(err, op)
	}
	return discontinuedValue(dv), nil
}

// A productEventCodec used for serde [schema.ProductV1]
type productEventCodec struct {
	serde Serde
}

func newProductEventCodec(s Serde) productEventCodec {
	return productEventCodec{s}
}

func (c productEventCodec) Encode(v any) ([]byte, error) {
	const op = "productEventCodec.Encode"
	if _, ok := v.(schema.ProductV1); !ok {
		return nil, opErr(ErrInvalidValueType, op)
	}
	return c.serde.Encode(v)
}

func (c productEventCodec) Decode(data []byte) (any, error) {
	const op = "productEventCodec.Decode"
	var s schema.ProductV1
	err := c.serde.Decode(data, &s)
	if err != nil {
		return nil, opErr(err, op)
	}
	return s, nil
}

// A ProductStatusProcessor processes status events from the stream
// topic into the group table the catalog gate joins against.
type ProductStatusProcessor struct {
	opPrefix string
	proc     processor
}

func NewProductStatusProc(
	seedBrokers []string,
	inputStream string,
	groupTable string,
	statusSerde Serde,
) (*ProductStatusProcessor, error) {
	const op = "NewProductStatusProc"

	var p ProductStatusProcessor
	p.opPrefix = "ProductStatusProcessor"

	gg := goka.DefineGroup(goka.Group(groupTable),
		goka.Input(
			goka.Stream(inputStream),
			newStatusEventCodec(statusSerde),
			p.processFn,
		),
		goka.Persist(discontinuedValueCodec{}),
	)

	gp, err := goka.NewProcessor(seedBrokers, gg, withNoLogProcOpt())
	if err != nil {
		return nil, opErr(err, op)
	}

	p.proc = processor{
		opPrefix: p.opPrefix,
		gp:       gp,
	}
	return &p, nil
}

func (p *ProductStatusProcessor) Run(
	ctx context.Context, stopFn context.CancelFunc, wg *sync.WaitGroup,
) {
	p.proc.run(ctx, stopFn, wg)
}

func (p *ProductStatusProcessor) Close() {
	p.proc.close()
}

func (p *ProductStatusProcessor) processFn(ctx goka.Context, msg any) {
	const op = "processFn"
	log := slog.With("op", makeOp(p.opPrefix, op))

	event, _ := msg.(schema.ProductStatusV1)
	v := discontinuedValue(event.Discontinued)
	ctx.SetValue(v)
	log.Info(
		"set status value",
		"productID", event.ProductID,
		"discontinued", v,
	)
}

// A CatalogGateProcessor processes products from the ingest stream,
// dropping discontinued ones and forwarding the rest to the store topic.
type CatalogGateProcessor struct {
	opPrefix     string
	proc         processor
	joinedTable  goka.Table
	outputStream goka.Stream
}

func NewCatalogGateProc(
	seedBrokers []string,
	inputStream string,
	statusGroupTable string,
	outputTopic string,
	gateGroup string,
	productSerde Serde,
) (*CatalogGateProcessor, error) {
	const op = "NewCatalogGateProc"

	var p CatalogGateProcessor
	p.opPrefix = "CatalogGateProcessor"

	codec := newProductEventCodec(productSerde)
	joinedTable := goka.GroupTable(goka.Group(statusGroupTable))
	outputStream := goka.Stream(outputTopic)

	gg := goka.DefineGroup(goka.Group(gateGroup),
		goka.Input(goka.Stream(inputStream), codec, p.processFn),
		goka.Join(joinedTable, discontinuedValueCodec{}),
		goka.Output(outputStream, codec),
	)

	gp, err := goka.NewProcessor(seedBrokers, gg, withNoLogProcOpt())
	if err != nil {
		return nil, opErr(err, op)
	}

	p.proc = processor{
		opPrefix: p.opPrefix,
		gp:       gp,
	}
	p.joinedTable = joinedTable
	p.outputStream = outputStream
	return &p, nil
}

func (p *CatalogGateProcessor) Run(
	ctx context.Context, stopFn context.CancelFunc, wg *sync.WaitGroup,
) {
	p.proc.run(ctx, stopFn, wg)
}

func (p *CatalogGateProcessor) Close() {
	p.proc.close()
}

func (p *CatalogGateProcessor) processFn(ctx goka.Context, msg any) {
	const op = "processFn"

	productV, _ := msg.(schema.ProductV1)
	log := slog.With(
		"op", makeOp(p.opPrefix, op), "productID", productV.ID,
	)

	v, ok := ctx.Join(p.joinedTable).(discontinuedValue)
	if ok && bool(v) {
		log.Warn("product is discontinued")
		return
	}
	ctx.Emit(p.outputStream, ctx.Key(), productV)
	log.Info("product is allowed")
}
