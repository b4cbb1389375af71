package public

import (
	"net/http"
	"strconv"
	"time"

	"github.com/haxeuz-store/internal/http/response"
	"github.com/haxeuz-store/internal/models"
	"github.com/haxeuz-store/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// AddCartItemRequest 添加购物车项请求
type AddCartItemRequest struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Size      string `json:"size" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// UpdateCartItemRequest 更新购物车项请求，quantity 缺省视为 1
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity"`
}

// CartItemResponse 购物车项响应
type CartItemResponse struct {
	ID         uint            `json:"id"`
	Product    ProductListItem `json:"product"`
	ProductID  uint            `json:"product_id"`
	Size       string          `json:"size"`
	Quantity   int             `json:"quantity"`
	TotalPrice models.Money    `json:"total_price"`
}

// CartResponse 购物车响应
type CartResponse struct {
	ID         uint               `json:"id"`
	Items      []CartItemResponse `json:"items"`
	TotalItems int                `json:"total_items"`
	TotalPrice models.Money       `json:"total_price"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

func buildCartResponse(cart *models.Cart) CartResponse {
	items := make([]CartItemResponse, 0, len(cart.Items))
	totalItems := 0
	totalPrice := decimal.Zero
	for i := range cart.Items {
		item := &cart.Items[i]
		if item.Product == nil {
			continue
		}
		lineTotal := item.Product.Price.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity))).Round(2)
		totalItems += item.Quantity
		totalPrice = totalPrice.Add(lineTotal).Round(2)
		items = append(items, CartItemResponse{
			ID:         item.ID,
			Product:    buildProductListItem(item.Product),
			ProductID:  item.ProductID,
			Size:       item.Size,
			Quantity:   item.Quantity,
			TotalPrice: models.NewMoneyFromDecimal(lineTotal),
		})
	}
	return CartResponse{
		ID:         cart.ID,
		Items:      items,
		TotalItems: totalItems,
		TotalPrice: models.NewMoneyFromDecimal(totalPrice),
		UpdatedAt:  cart.UpdatedAt,
	}
}

// GetCart 获取购物车，不存在则创建
func (h *Handler) GetCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	cart, err := h.CartService.GetCart(uid)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch cart", err)
		return
	}
	response.Success(c, buildCartResponse(cart))
}

// AddCartItem 添加商品到购物车
func (h *Handler) AddCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request", err)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if err := h.CartService.AddItem(service.AddCartItemInput{
		UserID:    uid,
		ProductID: req.ProductID,
		Size:      req.Size,
		Quantity:  req.Quantity,
	}); err != nil {
		respondCartAddError(c, err)
		return
	}
	response.Message(c, http.StatusCreated, "Item added to cart")
}

// UpdateCartItem 更新购物车项数量，数量小于等于 0 时删除
func (h *Handler) UpdateCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	itemID, ok := parseCartItemID(c)
	if !ok {
		return
	}
	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request", err)
		return
	}
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	removed, err := h.CartService.UpdateItem(uid, itemID, quantity)
	if err != nil {
		respondCartItemError(c, err)
		return
	}
	if removed {
		response.Message(c, http.StatusOK, "Item removed from cart")
		return
	}
	response.Message(c, http.StatusOK, "Cart updated")
}

// RemoveCartItem 从购物车移除指定项
func (h *Handler) RemoveCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	itemID, ok := parseCartItemID(c)
	if !ok {
		return
	}
	if err := h.CartService.RemoveItem(uid, itemID); err != nil {
		respondCartItemError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Item removed from cart")
}

func parseCartItemID(c *gin.Context) (uint, bool) {
	rawID := c.Param("item_id")
	itemID, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil || itemID == 0 {
		response.NotFound(c, "Cart item not found")
		return 0, false
	}
	return uint(itemID), true
}
