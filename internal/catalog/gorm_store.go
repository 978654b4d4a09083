package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"product-console/internal/model"

	"gorm.io/gorm"
)

// ProductRecord is the products table row
type ProductRecord struct {
	ID        float64 `gorm:"primaryKey;autoIncrement:false;type:double precision"`
	Name      string
	Category  string
	Price     float64
	Stock     float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the default table name
func (ProductRecord) TableName() string {
	return "products"
}

func (r ProductRecord) toModel() model.Product {
	return model.Product{ID: r.ID, Name: r.Name, Category: r.Category, Price: r.Price, Stock: r.Stock}
}

// GormStore persists products with gorm
type GormStore struct {
	db *gorm.DB
}

// NewGormStore migrates the products table and returns a store over it
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&ProductRecord{}); err != nil {
		return nil, fmt.Errorf("failed to run database migrations: %w", err)
	}
	return &GormStore{db: db}, nil
}

// List returns every product ordered by ID
func (s *GormStore) List(ctx context.Context) ([]model.Product, error) {
	defer observe("list", time.Now())

	var records []ProductRecord
	if err := s.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	products := make([]model.Product, 0, len(records))
	for _, r := range records {
		products = append(products, r.toModel())
	}
	return products, nil
}

// Create inserts a product. The database's unique key decides duplicates.
func (s *GormStore) Create(ctx context.Context, product model.Product) error {
	defer observe("create", time.Now())

	if !validID(product.ID) {
		return ErrInvalidProduct
	}

	record := ProductRecord{
		ID:       product.ID,
		Name:     product.Name,
		Category: product.Category,
		Price:    product.Price,
		Stock:    product.Stock,
	}
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateProduct
		}
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}
