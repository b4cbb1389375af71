package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/haxeuz-store/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupCartRepositoryTest(t *testing.T) (*GormCartRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:cart_repo_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewCartRepository(db), db
}

func createCartTestProduct(t *testing.T, db *gorm.DB, slug string) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:       "Test Tee " + slug,
		Slug:       slug,
		Price:      models.NewMoneyFromDecimal(decimal.RequireFromString("54.99")),
		CategoryID: 1,
		Sizes:      models.StringArray{"S", "M", "L"},
		Stock:      100,
		IsActive:   true,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func TestGetOrCreateByUserIdempotent(t *testing.T) {
	repo, _ := setupCartRepositoryTest(t)

	first, err := repo.GetOrCreateByUser(1)
	if err != nil {
		t.Fatalf("first get-or-create failed: %v", err)
	}
	if first == nil || first.ID == 0 {
		t.Fatalf("expected cart to be created, got %+v", first)
	}

	second, err := repo.GetOrCreateByUser(1)
	if err != nil {
		t.Fatalf("second get-or-create failed: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("expected same cart, got %d and %d", first.ID, second.ID)
	}
}

func TestAddItemIncrementsExistingRow(t *testing.T) {
	repo, db := setupCartRepositoryTest(t)
	product := createCartTestProduct(t, db, "add-item")

	cart, err := repo.GetOrCreateByUser(1)
	if err != nil {
		t.Fatalf("get-or-create cart failed: %v", err)
	}

	now := time.Now()
	for i := 0; i < 2; i++ {
		item := &models.CartItem{
			CartID:    cart.ID,
			ProductID: product.ID,
			Size:      "M",
			Quantity:  2,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := repo.AddItem(item); err != nil {
			t.Fatalf("add item %d failed: %v", i, err)
		}
	}

	var items []models.CartItem
	if err := db.Where("cart_id = ?", cart.ID).Find(&items).Error; err != nil {
		t.Fatalf("load items failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected single merged row, got %d", len(items))
	}
	if items[0].Quantity != 4 {
		t.Fatalf("expected quantity 4, got %d", items[0].Quantity)
	}
}

func TestAddItemDifferentSizeCreatesNewRow(t *testing.T) {
	repo, db := setupCartRepositoryTest(t)
	product := createCartTestProduct(t, db, "add-item-size")

	cart, err := repo.GetOrCreateByUser(1)
	if err != nil {
		t.Fatalf("get-or-create cart failed: %v", err)
	}

	now := time.Now()
	for _, size := range []string{"S", "M"} {
		item := &models.CartItem{
			CartID:    cart.ID,
			ProductID: product.ID,
			Size:      size,
			Quantity:  1,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := repo.AddItem(item); err != nil {
			t.Fatalf("add item size %s failed: %v", size, err)
		}
	}

	var count int64
	if err := db.Model(&models.CartItem{}).Where("cart_id = ?", cart.ID).Count(&count).Error; err != nil {
		t.Fatalf("count items failed: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 rows, got %d", count)
	}
}

func TestGetItemByIDAndCartScopesOwnership(t *testing.T) {
	repo, db := setupCartRepositoryTest(t)
	product := createCartTestProduct(t, db, "ownership")

	ownCart, err := repo.GetOrCreateByUser(1)
	if err != nil {
		t.Fatalf("get-or-create cart failed: %v", err)
	}
	otherCart, err := repo.GetOrCreateByUser(2)
	if err != nil {
		t.Fatalf("get-or-create other cart failed: %v", err)
	}

	now := time.Now()
	item := &models.CartItem{CartID: ownCart.ID, ProductID: product.ID, Size: "M", Quantity: 1, CreatedAt: now, UpdatedAt: now}
	if err := repo.AddItem(item); err != nil {
		t.Fatalf("add item failed: %v", err)
	}

	found, err := repo.GetItemByIDAndCart(item.ID, otherCart.ID)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if found != nil {
		t.Fatalf("expected no cross-cart access, got %+v", found)
	}
}

func TestClearByCartRemovesAllItems(t *testing.T) {
	repo, db := setupCartRepositoryTest(t)
	product := createCartTestProduct(t, db, "clear")

	cart, err := repo.GetOrCreateByUser(1)
	if err != nil {
		t.Fatalf("get-or-create cart failed: %v", err)
	}

	now := time.Now()
	for _, size := range []string{"S", "M", "L"} {
		item := &models.CartItem{CartID: cart.ID, ProductID: product.ID, Size: size, Quantity: 1, CreatedAt: now, UpdatedAt: now}
		if err := repo.AddItem(item); err != nil {
			t.Fatalf("add item failed: %v", err)
		}
	}

	if err := repo.ClearByCart(cart.ID); err != nil {
		t.Fatalf("clear cart failed: %v", err)
	}

	var count int64
	if err := db.Model(&models.CartItem{}).Where("cart_id = ?", cart.ID).Count(&count).Error; err != nil {
		t.Fatalf("count items failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected empty cart, got %d items", count)
	}
}
