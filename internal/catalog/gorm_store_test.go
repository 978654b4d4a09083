package catalog

import (
	"context"
	"errors"
	"testing"

	"product-console/internal/model"
	"product-console/pkg/config"
	"product-console/pkg/database"

	"gorm.io/gorm/logger"
)

// openTestStore connects to the database named by the DB_* environment and
// skips the test when none is reachable.
func openTestStore(t *testing.T) *GormStore {
	t.Helper()
	cfg, err := config.Load("catalog-test")
	if err != nil {
		t.Fatalf("unexpected config error: %v", err)
	}
	cfg.DB.LogLevel = logger.Silent

	db, err := database.Open(&cfg.DB, nil)
	if err != nil {
		t.Skipf("postgres not available: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil || sqlDB.Ping() != nil {
		t.Skip("postgres not available")
	}
	t.Cleanup(func() { _ = database.Close(db) })

	store, err := NewGormStore(db)
	if err != nil {
		t.Fatalf("unexpected migration error: %v", err)
	}
	if err := db.Exec("DELETE FROM products").Error; err != nil {
		t.Fatalf("failed to reset products table: %v", err)
	}
	return store
}

func TestGormStore(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for _, p := range []model.Product{{ID: 2, Name: "B", Price: 1.5}, {ID: 1, Name: "A", Stock: 4}} {
		if err := store.Create(ctx, p); err != nil {
			t.Fatalf("create %v: %v", p.ID, err)
		}
	}

	if err := store.Create(ctx, model.Product{ID: 1}); !errors.Is(err, ErrDuplicateProduct) {
		t.Errorf("expected ErrDuplicateProduct, got %v", err)
	}
	if err := store.Create(ctx, model.Product{}); !errors.Is(err, ErrInvalidProduct) {
		t.Errorf("expected ErrInvalidProduct, got %v", err)
	}

	products, err := store.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []model.Product{{ID: 1, Name: "A", Stock: 4}, {ID: 2, Name: "B", Price: 1.5}}
	if len(products) != len(want) {
		t.Fatalf("expected %d products, got %d", len(want), len(products))
	}
	for i := range want {
		if products[i] != want[i] {
			t.Errorf("position %d: expected %+v, got %+v", i, want[i], products[i])
		}
	}
}
