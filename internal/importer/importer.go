package importer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"product-console/internal/model"
	"product-console/prometheus"

	"go.uber.org/zap"
)

// Creator submits one product
type Creator interface {
	CreateProduct(ctx context.Context, product model.Product) (json.RawMessage, error)
}

// Result counts what happened to each row
type Result struct {
	Total     int
	Submitted int
	Skipped   int
	Failed    int
}

// Importer submits rows one at a time
type Importer struct {
	api             Creator
	log             *zap.Logger
	ContinueOnError bool
}

// New creates an importer
func New(api Creator, log *zap.Logger) *Importer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Importer{api: api, log: log}
}

// Import validates and submits rows in order. Rows failing validation are
// skipped. A failed create stops the import unless ContinueOnError is set.
func (i *Importer) Import(ctx context.Context, rows []Row) (Result, error) {
	result := Result{Total: len(rows)}
	var failures []error

	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		product, err := row.Form().Product()
		if err != nil {
			result.Skipped++
			prometheus.ObserveSubmission("invalid")
			i.log.Warn("Skipping row", zap.Int("line", row.Line), zap.String("id", row.ID), zap.Error(err))
			continue
		}

		if _, err := i.api.CreateProduct(ctx, product); err != nil {
			result.Failed++
			prometheus.ObserveSubmission("failed")
			i.log.Error("Failed to submit row", zap.Int("line", row.Line), zap.Float64("product_id", product.ID), zap.Error(err))

			rowErr := fmt.Errorf("line %d: %w", row.Line, err)
			if !i.ContinueOnError {
				return result, rowErr
			}
			failures = append(failures, rowErr)
			continue
		}

		result.Submitted++
		prometheus.ObserveSubmission("created")
		if result.Submitted%100 == 0 {
			i.log.Info("Imported records", zap.Int("submitted", result.Submitted))
		}
	}

	return result, errors.Join(failures...)
}
