package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/haxeuz-store/internal/models"
	"github.com/haxeuz-store/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupCartServiceTest(t *testing.T) (*CartService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:cart_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.ProductVariant{},
		&models.Cart{},
		&models.CartItem{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewCartService(repository.NewCartRepository(db), repository.NewProductRepository(db)), db
}

func createCartServiceProduct(t *testing.T, db *gorm.DB, slug string, active bool) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:       "Tee " + slug,
		Slug:       slug,
		CategoryID: 1,
		Price:      models.NewMoneyFromDecimal(decimal.RequireFromString("54.99")),
		Sizes:      models.StringArray{"S", "M", "L"},
		Stock:      100,
		IsActive:   active,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	if !active {
		// is_active 带 default:true，Create 会跳过零值 false，需显式写回
		if err := db.Model(product).Update("is_active", false).Error; err != nil {
			t.Fatalf("deactivate product failed: %v", err)
		}
	}
	return product
}

func TestAddItemValidation(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	active := createCartServiceProduct(t, db, "active", true)
	inactive := createCartServiceProduct(t, db, "inactive", false)

	cases := []struct {
		name  string
		input AddCartItemInput
		want  error
	}{
		{"zero quantity", AddCartItemInput{UserID: 1, ProductID: active.ID, Size: "M", Quantity: 0}, ErrInvalidQuantity},
		{"negative quantity", AddCartItemInput{UserID: 1, ProductID: active.ID, Size: "M", Quantity: -2}, ErrInvalidQuantity},
		{"missing product", AddCartItemInput{UserID: 1, ProductID: 9999, Size: "M", Quantity: 1}, ErrProductNotFound},
		{"inactive product", AddCartItemInput{UserID: 1, ProductID: inactive.ID, Size: "M", Quantity: 1}, ErrProductNotFound},
		{"unknown size", AddCartItemInput{UserID: 1, ProductID: active.ID, Size: "XS", Quantity: 1}, ErrInvalidSize},
	}
	for _, tc := range cases {
		if err := svc.AddItem(tc.input); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestAddItemMergesSameSize(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := createCartServiceProduct(t, db, "merge", true)

	for i := 0; i < 2; i++ {
		if err := svc.AddItem(AddCartItemInput{UserID: 1, ProductID: product.ID, Size: "M", Quantity: 2}); err != nil {
			t.Fatalf("add item failed: %v", err)
		}
	}

	cart, err := svc.GetCart(1)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}

	var items []models.CartItem
	if err := db.Where("cart_id = ?", cart.ID).Find(&items).Error; err != nil {
		t.Fatalf("load items failed: %v", err)
	}
	if len(items) != 1 || items[0].Quantity != 4 {
		t.Fatalf("expected single row qty 4, got %+v", items)
	}
}

func TestUpdateItemOverwritesQuantity(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := createCartServiceProduct(t, db, "update", true)

	if err := svc.AddItem(AddCartItemInput{UserID: 1, ProductID: product.ID, Size: "M", Quantity: 2}); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	var item models.CartItem
	if err := db.First(&item).Error; err != nil {
		t.Fatalf("load item failed: %v", err)
	}

	removed, err := svc.UpdateItem(1, item.ID, 5)
	if err != nil {
		t.Fatalf("update item failed: %v", err)
	}
	if removed {
		t.Fatalf("expected item kept")
	}

	if err := db.First(&item, item.ID).Error; err != nil {
		t.Fatalf("reload item failed: %v", err)
	}
	if item.Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", item.Quantity)
	}
}

func TestUpdateItemZeroQuantityRemoves(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := createCartServiceProduct(t, db, "remove-on-zero", true)

	if err := svc.AddItem(AddCartItemInput{UserID: 1, ProductID: product.ID, Size: "M", Quantity: 2}); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	var item models.CartItem
	if err := db.First(&item).Error; err != nil {
		t.Fatalf("load item failed: %v", err)
	}

	removed, err := svc.UpdateItem(1, item.ID, 0)
	if err != nil {
		t.Fatalf("update item failed: %v", err)
	}
	if !removed {
		t.Fatalf("expected item removed at quantity 0")
	}

	var count int64
	if err := db.Model(&models.CartItem{}).Count(&count).Error; err != nil {
		t.Fatalf("count items failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected empty cart, got %d items", count)
	}
}

func TestCartItemOwnership(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := createCartServiceProduct(t, db, "ownership", true)

	if err := svc.AddItem(AddCartItemInput{UserID: 1, ProductID: product.ID, Size: "M", Quantity: 1}); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	var item models.CartItem
	if err := db.First(&item).Error; err != nil {
		t.Fatalf("load item failed: %v", err)
	}

	if _, err := svc.UpdateItem(2, item.ID, 3); !errors.Is(err, ErrCartItemNotFound) {
		t.Fatalf("expected ErrCartItemNotFound for foreign update, got %v", err)
	}
	if err := svc.RemoveItem(2, item.ID); !errors.Is(err, ErrCartItemNotFound) {
		t.Fatalf("expected ErrCartItemNotFound for foreign remove, got %v", err)
	}
	if err := svc.RemoveItem(1, item.ID); err != nil {
		t.Fatalf("owner remove failed: %v", err)
	}
}
