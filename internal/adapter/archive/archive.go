// Package archive appends placed orders to HDFS, one JSON line per
// order, one file per session. The archive is a notification sink:
// checkout never depends on it succeeding.
package archive

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"time"

	"github.com/colinmarc/hdfs/v2"
	"github.com/urbandrop/storefront/internal/core/domain"
	"github.com/urbandrop/storefront/internal/core/port"
	"github.com/urbandrop/storefront/pkg/retry"
)

var _ port.OrderArchive = (*OrdersRepository)(nil)

type (
	orderRecord struct {
		SessionID string      `json:"session_id"`
		Lines     []orderLine `json:"lines"`
		Total     string      `json:"total"`
		Locale    string      `json:"locale"`
		Recipient string      `json:"recipient"`
		PlacedAt  time.Time   `json:"placed_at"`
	}

	orderLine struct {
		ProductID int64   `json:"product_id"`
		Name      string  `json:"name"`
		Price     float64 `json:"price"`
		Size      string  `json:"size"`
		Quantity  int     `json:"quantity"`
	}
)

type hdfsStorage interface {
	Append(name string) (*hdfs.FileWriter, error)
	Create(name string) (*hdfs.FileWriter, error)
	ReadDir(dirname string) ([]os.FileInfo, error)
}

type OrdersRepository struct {
	hdfs hdfsStorage
	dir  string
}

func NewOrdersRepository(hdfs hdfsStorage, dir string) OrdersRepository {
	return OrdersRepository{hdfs, dir}
}

func (r OrdersRepository) StoreOrder(
	ctx context.Context, order domain.Order,
) error {
	const op = "OrdersRepository.StoreOrder"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	w, err := r.createWriter(r.getFileName(order.SessionID))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := r.saveOrder(w, order); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := r.closeWriter(ctx, w); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ListOrderFiles names every archived session file. A directory that
// does not exist yet means no orders were placed, not an error.
func (r OrdersRepository) ListOrderFiles(
	ctx context.Context,
) ([]string, error) {
	const op = "OrdersRepository.ListOrderFiles"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	entries, err := r.hdfs.ReadDir(r.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		paths = append(paths, path.Join(r.dir, e.Name()))
	}
	return paths, nil
}

func (r OrdersRepository) getFileName(sessionID string) string {
	return path.Join(r.dir, sessionID)
}

func (r OrdersRepository) createWriter(filepath string) (io.WriteCloser, error) {
	w, err := r.hdfs.Append(filepath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		w, err = r.hdfs.Create(filepath)
		if err != nil {
			return nil, err
		}
	}
	return w, nil
}

func (r OrdersRepository) saveOrder(w io.WriteCloser, order domain.Order) error {
	return json.NewEncoder(w).Encode(r.toRecord(order))
}

func (r OrdersRepository) closeWriter(ctx context.Context, w io.WriteCloser) error {
	retryCfg := retry.RetryConfig{
		MaxAttempts: 5,
		Backoff:     retry.LinearBackoff(50 * time.Millisecond),
		ShouldRetry: func(err error) bool {
			return errors.Is(err, hdfs.ErrReplicating)
		},
	}

	return retry.Do(ctx, retryCfg, w.Close)
}

func (r OrdersRepository) toRecord(order domain.Order) (v orderRecord) {
	v.SessionID = order.SessionID
	v.Total = order.Total.StringFixed(2)
	v.Locale = order.Locale
	v.Recipient = order.Recipient
	v.PlacedAt = order.PlacedAt

	v.Lines = make([]orderLine, len(order.Lines))
	for i, li := range order.Lines {
		v.Lines[i] = orderLine{
			ProductID: li.ProductID,
			Name:      li.Name,
			Price:     li.Price,
			Size:      li.Size,
			Quantity:  li.Quantity,
		}
	}
	return
}
