package router

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/haxeuz-store/internal/config"
	"github.com/haxeuz-store/internal/models"
	"github.com/haxeuz-store/internal/provider"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupAPITest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dsn := fmt.Sprintf("file:api_flow_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.AuthToken{},
		&models.Category{},
		&models.Product{},
		&models.ProductVariant{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Coupon{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db

	cfg := &config.Config{}
	cfg.Server.Mode = "debug"
	cfg.Redis.Enabled = false

	container := provider.NewContainer(cfg)
	return SetupRouter(cfg, container), db
}

func seedAPICatalog(t *testing.T, db *gorm.DB) *models.Product {
	t.Helper()
	category := models.Category{Name: "Streetwear", Slug: "streetwear"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	product := models.Product{
		Name:       "UFO Flame Wash",
		Slug:       "ufo-flame-wash",
		CategoryID: category.ID,
		Price:      models.NewMoneyFromDecimal(decimal.RequireFromString("62.99")),
		Sizes:      models.StringArray{"S", "M", "L", "XL", "XXL"},
		Stock:      100,
		IsActive:   true,
		IsFeatured: true,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	for _, size := range product.Sizes {
		variant := models.ProductVariant{
			ProductID:       product.ID,
			Size:            size,
			SKU:             fmt.Sprintf("HX%03d-%s", product.ID, size),
			Stock:           20,
			PriceAdjustment: models.NewMoneyFromDecimal(decimal.Zero),
		}
		if err := db.Create(&variant).Error; err != nil {
			t.Fatalf("create variant failed: %v", err)
		}
	}
	return &product
}

func doJSON(engine *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body failed: %v (body=%s)", err, w.Body.String())
	}
	return body
}

func registerAPIUser(t *testing.T, engine *gin.Engine, email string) string {
	t.Helper()
	w := doJSON(engine, http.MethodPost, "/api/auth/register", "", fmt.Sprintf(
		`{"email":%q,"username":"ava","first_name":"Ava","last_name":"Stone","password":"sup3r-secret","password_confirm":"sup3r-secret"}`,
		email,
	))
	if w.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d (body=%s)", w.Code, w.Body.String())
	}
	body := decodeJSON(t, w)
	token, _ := body["token"].(string)
	if len(token) != 40 {
		t.Fatalf("register: expected 40-char token, got %q", token)
	}
	return token
}

func TestHealthEndpoint(t *testing.T) {
	engine, _ := setupAPITest(t)

	w := doJSON(engine, http.MethodGet, "/api/health", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decodeJSON(t, w)
	if body["status"] != "ok" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestProductEndpoints(t *testing.T) {
	engine, db := setupAPITest(t)
	product := seedAPICatalog(t, db)

	w := doJSON(engine, http.MethodGet, "/api/products", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", w.Code)
	}
	var list []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list failed: %v", err)
	}
	if len(list) != 1 || list[0]["name"] != "UFO Flame Wash" {
		t.Fatalf("unexpected list: %v", list)
	}
	if list[0]["price"] != "62.99" {
		t.Fatalf("expected price as fixed string, got %v", list[0]["price"])
	}

	w = doJSON(engine, http.MethodGet, fmt.Sprintf("/api/products/%d", product.ID), "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("detail: expected 200, got %d", w.Code)
	}
	detail := decodeJSON(t, w)
	if detail["slug"] != "ufo-flame-wash" {
		t.Fatalf("unexpected detail: %v", detail)
	}
	variants, _ := detail["variants"].([]interface{})
	if len(variants) != 5 {
		t.Fatalf("expected 5 size variants in detail, got %v", detail["variants"])
	}
	first, _ := variants[0].(map[string]interface{})
	if first["size"] != "S" || first["stock"].(float64) != 20 {
		t.Fatalf("unexpected variant payload: %v", first)
	}

	w = doJSON(engine, http.MethodGet, "/api/products/99999", "", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing product: expected 404, got %d", w.Code)
	}
	body := decodeJSON(t, w)
	if body["error"] != "Product not found" {
		t.Fatalf("unexpected body: %v", body)
	}

	w = doJSON(engine, http.MethodGet, "/api/products/featured", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("featured: expected 200, got %d", w.Code)
	}
}

func TestCartRequiresAuth(t *testing.T) {
	engine, _ := setupAPITest(t)

	w := doJSON(engine, http.MethodGet, "/api/cart", "", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestCheckoutFlow(t *testing.T) {
	engine, db := setupAPITest(t)
	product := seedAPICatalog(t, db)
	token := registerAPIUser(t, engine, "ava@example.com")

	// 加购
	w := doJSON(engine, http.MethodPost, "/api/cart/add", token, fmt.Sprintf(
		`{"product_id":%d,"size":"M","quantity":2}`, product.ID,
	))
	if w.Code != http.StatusCreated {
		t.Fatalf("cart add: expected 201, got %d (body=%s)", w.Code, w.Body.String())
	}
	if body := decodeJSON(t, w); body["message"] != "Item added to cart" {
		t.Fatalf("unexpected body: %v", body)
	}

	// 尺码不在商品尺码表内
	w = doJSON(engine, http.MethodPost, "/api/cart/add", token, fmt.Sprintf(
		`{"product_id":%d,"size":"XS","quantity":1}`, product.ID,
	))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad size: expected 400, got %d", w.Code)
	}
	if body := decodeJSON(t, w); body["error"] != "Invalid size" {
		t.Fatalf("unexpected body: %v", body)
	}

	// 购物车内容与小计
	w = doJSON(engine, http.MethodGet, "/api/cart", token, "")
	if w.Code != http.StatusOK {
		t.Fatalf("get cart: expected 200, got %d", w.Code)
	}
	cart := decodeJSON(t, w)
	if cart["total_items"].(float64) != 2 {
		t.Fatalf("expected 2 items, got %v", cart["total_items"])
	}
	if cart["total_price"] != "125.98" {
		t.Fatalf("expected total 125.98, got %v", cart["total_price"])
	}

	// 下单
	w = doJSON(engine, http.MethodPost, "/api/orders/create", token,
		`{"shipping_first_name":"Ava","shipping_last_name":"Stone","shipping_address":"12 Canal St","shipping_city":"Portland","shipping_state":"OR","shipping_zip_code":"97201"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("order create: expected 201, got %d (body=%s)", w.Code, w.Body.String())
	}
	order := decodeJSON(t, w)
	if order["subtotal"] != "125.98" {
		t.Fatalf("expected subtotal 125.98, got %v", order["subtotal"])
	}
	if order["shipping_cost"] != "0.00" {
		t.Fatalf("expected free shipping, got %v", order["shipping_cost"])
	}
	if order["tax"] != "10.08" {
		t.Fatalf("expected tax 10.08, got %v", order["tax"])
	}
	if order["total"] != "136.06" {
		t.Fatalf("expected total 136.06, got %v", order["total"])
	}

	// 下单后购物车被清空
	w = doJSON(engine, http.MethodGet, "/api/cart", token, "")
	cart = decodeJSON(t, w)
	if cart["total_items"].(float64) != 0 {
		t.Fatalf("expected empty cart after checkout, got %v", cart["total_items"])
	}

	// 空购物车无法下单
	w = doJSON(engine, http.MethodPost, "/api/orders/create", token,
		`{"shipping_first_name":"Ava","shipping_last_name":"Stone","shipping_address":"12 Canal St","shipping_city":"Portland","shipping_state":"OR","shipping_zip_code":"97201"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("empty cart order: expected 400, got %d", w.Code)
	}
	if body := decodeJSON(t, w); body["error"] != "Cart is empty" {
		t.Fatalf("unexpected body: %v", body)
	}

	// 订单列表
	w = doJSON(engine, http.MethodGet, "/api/orders", token, "")
	if w.Code != http.StatusOK {
		t.Fatalf("list orders: expected 200, got %d", w.Code)
	}
}

func TestUpdateCartItemQuantityDefaults(t *testing.T) {
	engine, db := setupAPITest(t)
	product := seedAPICatalog(t, db)
	token := registerAPIUser(t, engine, "ava@example.com")

	w := doJSON(engine, http.MethodPost, "/api/cart/add", token, fmt.Sprintf(
		`{"product_id":%d,"size":"M","quantity":3}`, product.ID,
	))
	if w.Code != http.StatusCreated {
		t.Fatalf("cart add: expected 201, got %d", w.Code)
	}

	var item models.CartItem
	if err := db.First(&item).Error; err != nil {
		t.Fatalf("load cart item failed: %v", err)
	}

	// 请求体未携带 quantity 时按 1 处理，而不是删除该项
	w = doJSON(engine, http.MethodPut, fmt.Sprintf("/api/cart/update/%d", item.ID), token, `{}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d (body=%s)", w.Code, w.Body.String())
	}
	if body := decodeJSON(t, w); body["message"] != "Cart updated" {
		t.Fatalf("unexpected body: %v", body)
	}
	if err := db.First(&item, item.ID).Error; err != nil {
		t.Fatalf("expected item to survive empty-body update: %v", err)
	}
	if item.Quantity != 1 {
		t.Fatalf("expected quantity 1 after empty-body update, got %d", item.Quantity)
	}

	// 显式 0 仍然删除
	w = doJSON(engine, http.MethodPut, fmt.Sprintf("/api/cart/update/%d", item.ID), token, `{"quantity":0}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update to zero: expected 200, got %d", w.Code)
	}
	if body := decodeJSON(t, w); body["message"] != "Item removed from cart" {
		t.Fatalf("unexpected body: %v", body)
	}
	var count int64
	if err := db.Model(&models.CartItem{}).Count(&count).Error; err != nil {
		t.Fatalf("count items failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected item removed at quantity 0, got %d rows", count)
	}
}

func TestLogoutFlow(t *testing.T) {
	engine, _ := setupAPITest(t)
	token := registerAPIUser(t, engine, "ava@example.com")

	w := doJSON(engine, http.MethodPost, "/api/auth/logout", token, "")
	if w.Code != http.StatusOK {
		t.Fatalf("logout: expected 200, got %d (body=%s)", w.Code, w.Body.String())
	}
	if body := decodeJSON(t, w); body["message"] != "Successfully logged out" {
		t.Fatalf("unexpected body: %v", body)
	}

	// 令牌已作废
	w = doJSON(engine, http.MethodGet, "/api/cart", token, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", w.Code)
	}
}

func TestLoginEndpoint(t *testing.T) {
	engine, _ := setupAPITest(t)
	registerAPIUser(t, engine, "ava@example.com")

	w := doJSON(engine, http.MethodPost, "/api/auth/login", "",
		`{"email":"ava@example.com","password":"sup3r-secret"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d (body=%s)", w.Code, w.Body.String())
	}
	body := decodeJSON(t, w)
	if token, _ := body["token"].(string); len(token) != 40 {
		t.Fatalf("expected token in login response, got %v", body)
	}
	user, _ := body["user"].(map[string]interface{})
	if user == nil || user["email"] != "ava@example.com" {
		t.Fatalf("unexpected user payload: %v", body)
	}

	w = doJSON(engine, http.MethodPost, "/api/auth/login", "",
		`{"email":"ava@example.com","password":"wrong"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad login: expected 400, got %d", w.Code)
	}
	if body := decodeJSON(t, w); body["error"] != "Invalid credentials" {
		t.Fatalf("unexpected body: %v", body)
	}
}
