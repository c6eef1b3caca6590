package analytics

import (
	"context"
	"log/slog"

	"github.com/apache/spark-connect-go/v35/spark/sql"
	"github.com/urbandrop/storefront/internal/core/domain"
	"github.com/urbandrop/storefront/internal/core/port"
)

var _ port.SalesAnalyzer = (*OrdersAnalyzer)(nil)

// An OrdersAnalyzer aggregates the archived order files through a
// Spark Connect session: one report per archive file.
type OrdersAnalyzer struct {
	addr string
}

func NewOrdersAnalyzer(addr string) OrdersAnalyzer {
	return OrdersAnalyzer{addr}
}

func (a OrdersAnalyzer) Do(
	ctx context.Context, srcPaths []string,
) <-chan domain.SalesReport {
	c := make(chan domain.SalesReport, 1)
	go a.do(ctx, c, srcPaths)
	return c
}

func (a OrdersAnalyzer) do(
	ctx context.Context, stream chan<- domain.SalesReport, srcPaths []string,
) {
	const op = "OrdersAnalyzer.do"
	log := slog.With("op", op)

	defer close(stream)

	if err := ctx.Err(); err != nil {
		return
	}

	s, err := sql.NewSessionBuilder().Remote(a.addr).Build(ctx)
	if err != nil {
		log.Error("failed to build session", "err", err)
		return
	}
	defer a.stop(s)

	for _, src := range srcPaths {
		df, err := s.Read().Format("json").Load(src)
		if err != nil {
			log.Error("failed to read source", "src", src, "err", err)
			return
		}

		nOrders, err := df.Count(ctx)
		if err != nil {
			log.Error("failed to count dataframe rows", "err", err)
			return
		}

		row, err := df.First(ctx)
		if err != nil {
			log.Error("failed to get first row", "err", err)
			return
		}

		sessionID, ok := row.Value("session_id").(string)
		if !ok {
			log.Error("failed to assert session_id type: not string")
			return
		}

		select {
		case stream <- domain.SalesReport{
			SessionID: sessionID,
			Orders:    int(nOrders),
		}:
		case <-ctx.Done():
			return
		}
	}
}

func (a OrdersAnalyzer) stop(s sql.SparkSession) {
	const op = "OrdersAnalyzer.stop"
	log := slog.With("op", op)
	if err := s.Stop(); err != nil {
		log.Error("failed to stop session", "err", err)
	}
}
