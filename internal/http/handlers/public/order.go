package public

import (
	"net/http"
	"time"

	"github.com/haxeuz-store/internal/http/response"
	"github.com/haxeuz-store/internal/models"
	"github.com/haxeuz-store/internal/repository"
	"github.com/haxeuz-store/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateOrderRequest 创建订单请求
type CreateOrderRequest struct {
	ShippingFirstName string `json:"shipping_first_name" binding:"required"`
	ShippingLastName  string `json:"shipping_last_name" binding:"required"`
	ShippingAddress   string `json:"shipping_address" binding:"required"`
	ShippingCity      string `json:"shipping_city" binding:"required"`
	ShippingState     string `json:"shipping_state" binding:"required"`
	ShippingZipCode   string `json:"shipping_zip_code" binding:"required"`
}

// OrderItemResponse 订单项响应（下单时的商品快照）
type OrderItemResponse struct {
	ID           uint         `json:"id"`
	ProductName  string       `json:"product_name"`
	ProductImage string       `json:"product_image"`
	Size         string       `json:"size"`
	Quantity     int          `json:"quantity"`
	Price        models.Money `json:"price"`
}

// OrderResponse 订单响应
type OrderResponse struct {
	ID                uint                `json:"id"`
	OrderNo           string              `json:"order_no"`
	Status            string              `json:"status"`
	ShippingFirstName string              `json:"shipping_first_name"`
	ShippingLastName  string              `json:"shipping_last_name"`
	ShippingAddress   string              `json:"shipping_address"`
	ShippingCity      string              `json:"shipping_city"`
	ShippingState     string              `json:"shipping_state"`
	ShippingZipCode   string              `json:"shipping_zip_code"`
	Subtotal          models.Money        `json:"subtotal"`
	ShippingCost      models.Money        `json:"shipping_cost"`
	Tax               models.Money        `json:"tax"`
	Total             models.Money        `json:"total"`
	Items             []OrderItemResponse `json:"items"`
	CreatedAt         time.Time           `json:"created_at"`
}

func buildOrderResponse(order *models.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for i := range order.Items {
		item := &order.Items[i]
		items = append(items, OrderItemResponse{
			ID:           item.ID,
			ProductName:  item.ProductName,
			ProductImage: item.ProductImage,
			Size:         item.Size,
			Quantity:     item.Quantity,
			Price:        item.Price,
		})
	}
	return OrderResponse{
		ID:                order.ID,
		OrderNo:           order.OrderNo,
		Status:            order.Status,
		ShippingFirstName: order.ShippingFirstName,
		ShippingLastName:  order.ShippingLastName,
		ShippingAddress:   order.ShippingAddress,
		ShippingCity:      order.ShippingCity,
		ShippingState:     order.ShippingState,
		ShippingZipCode:   order.ShippingZipCode,
		Subtotal:          order.Subtotal,
		ShippingCost:      order.ShippingCost,
		Tax:               order.Tax,
		Total:             order.Total,
		Items:             items,
		CreatedAt:         order.CreatedAt,
	}
}

// ListOrders 当前用户订单列表，按创建时间倒序
func (h *Handler) ListOrders(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	orders, _, err := h.OrderService.ListOrdersByUser(repository.OrderListFilter{UserID: uid})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch orders", err)
		return
	}
	items := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		items = append(items, buildOrderResponse(&orders[i]))
	}
	response.Success(c, items)
}

// CreateOrder 从购物车创建订单并清空购物车
func (h *Handler) CreateOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Shipping information is incomplete", err)
		return
	}
	order, err := h.OrderService.CreateOrder(service.CreateOrderInput{
		UserID:            uid,
		ShippingFirstName: req.ShippingFirstName,
		ShippingLastName:  req.ShippingLastName,
		ShippingAddress:   req.ShippingAddress,
		ShippingCity:      req.ShippingCity,
		ShippingState:     req.ShippingState,
		ShippingZipCode:   req.ShippingZipCode,
	})
	if err != nil {
		respondOrderCreateError(c, err)
		return
	}
	response.Created(c, buildOrderResponse(order))
}
