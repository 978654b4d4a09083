package catalog

import (
	"context"
	"errors"
	"math"

	"product-console/internal/model"
)

var (
	// ErrDuplicateProduct is returned when a product with the same ID exists
	ErrDuplicateProduct = errors.New("product with this ID already exists")
	// ErrInvalidProduct is returned for a product without a usable ID
	ErrInvalidProduct = errors.New("product ID must be a non-zero number")
)

// Store persists catalog products
type Store interface {
	List(ctx context.Context) ([]model.Product, error)
	Create(ctx context.Context, product model.Product) error
}

func validID(id float64) bool {
	return id != 0 && !math.IsNaN(id) && !math.IsInf(id, 0)
}
