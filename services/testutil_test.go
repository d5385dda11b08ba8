package services

import (
	"path/filepath"
	"testing"

	"backend/entity"
	"backend/pkg/events"
	"backend/repository"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{}, &entity.MenuItem{},
		&entity.CartRecord{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.CafeTable{}, &entity.Booking{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func newTestCartService(t *testing.T, db *gorm.DB) (*CartService, *events.Bus) {
	t.Helper()
	bus := events.NewBus()
	svc := NewCartService(repository.NewCartRepository(db), bus, zap.NewNop())
	return svc, bus
}

func seedCafes(t *testing.T, db *gorm.DB) {
	t.Helper()
	cafes := []entity.Restaurant{
		{ID: "golden-bakery", Name: "Golden Bakery", Cuisine: "Bakery"},
		{ID: "hangout-cafe", Name: "Hangout Cafe", Cuisine: "Multi-cuisine"},
		{ID: "ttmm", Name: "TTMM", Cuisine: "Indian"},
	}
	if err := db.Create(&cafes).Error; err != nil {
		t.Fatalf("seed cafes: %v", err)
	}
}

func menuItem(id, restaurant, name string, price int64) *entity.MenuItem {
	return &entity.MenuItem{
		ID: id, RestaurantID: restaurant, Name: name, Price: price,
		Description: name + " description", Image: "/img/" + id + ".jpg",
		IsAvailable: true,
	}
}
