package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/haxeuz-store/internal/constants"
	"github.com/haxeuz-store/internal/models"
	"github.com/haxeuz-store/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// 结算金额参数
var (
	freeShippingThreshold = decimal.RequireFromString(constants.FreeShippingThreshold)
	flatShippingCost      = decimal.RequireFromString(constants.FlatShippingCost)
	taxRate               = decimal.RequireFromString(constants.TaxRate)
)

// allowedTransitions 订单状态流转表
var allowedTransitions = map[string]map[string]bool{
	constants.OrderStatusPending: {
		constants.OrderStatusProcessing: true,
		constants.OrderStatusShipped:    true,
		constants.OrderStatusDelivered:  true,
		constants.OrderStatusCancelled:  true,
	},
	constants.OrderStatusProcessing: {
		constants.OrderStatusShipped:   true,
		constants.OrderStatusDelivered: true,
		constants.OrderStatusCancelled: true,
	},
	constants.OrderStatusShipped: {
		constants.OrderStatusDelivered: true,
	},
}

// OrderService 订单服务
type OrderService struct {
	orderRepo repository.OrderRepository
	cartRepo  repository.CartRepository
}

// NewOrderService 创建订单服务
func NewOrderService(orderRepo repository.OrderRepository, cartRepo repository.CartRepository) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
	}
}

// CreateOrderInput 创建订单输入
type CreateOrderInput struct {
	UserID            uint
	ShippingFirstName string
	ShippingLastName  string
	ShippingAddress   string
	ShippingCity      string
	ShippingState     string
	ShippingZipCode   string
}

// CreateOrder 根据购物车创建订单：写入订单与订单项快照并清空购物车，
// 三步在同一事务内完成。
func (s *OrderService) CreateOrder(input CreateOrderInput) (*models.Order, error) {
	if input.UserID == 0 {
		return nil, ErrOrderCreateFailed
	}
	if hasEmptyShippingField(input) {
		return nil, ErrShippingIncomplete
	}

	cart, err := s.cartRepo.GetByUser(input.UserID)
	if err != nil {
		return nil, err
	}
	if cart == nil || len(cart.Items) == 0 {
		return nil, ErrCartEmpty
	}

	subtotal := decimal.Zero
	items := make([]models.OrderItem, 0, len(cart.Items))
	now := time.Now()
	for _, cartItem := range cart.Items {
		product := cartItem.Product
		if product == nil || product.ID == 0 {
			continue
		}
		lineTotal := product.Price.Decimal.Mul(decimal.NewFromInt(int64(cartItem.Quantity))).Round(2)
		subtotal = subtotal.Add(lineTotal).Round(2)
		items = append(items, models.OrderItem{
			ProductID:    product.ID,
			ProductName:  product.Name,
			ProductImage: product.FrontImage,
			Size:         cartItem.Size,
			Quantity:     cartItem.Quantity,
			Price:        product.Price,
			CreatedAt:    now,
		})
	}
	if len(items) == 0 {
		return nil, ErrCartEmpty
	}

	shippingCost := flatShippingCost
	if subtotal.GreaterThan(freeShippingThreshold) {
		shippingCost = decimal.Zero
	}
	tax := subtotal.Mul(taxRate).Round(2)
	total := subtotal.Add(shippingCost).Add(tax).Round(2)

	order := &models.Order{
		OrderNo:           generateOrderNo(),
		UserID:            input.UserID,
		Status:            constants.OrderStatusPending,
		ShippingFirstName: strings.TrimSpace(input.ShippingFirstName),
		ShippingLastName:  strings.TrimSpace(input.ShippingLastName),
		ShippingAddress:   strings.TrimSpace(input.ShippingAddress),
		ShippingCity:      strings.TrimSpace(input.ShippingCity),
		ShippingState:     strings.TrimSpace(input.ShippingState),
		ShippingZipCode:   strings.TrimSpace(input.ShippingZipCode),
		Subtotal:          models.NewMoneyFromDecimal(subtotal),
		ShippingCost:      models.NewMoneyFromDecimal(shippingCost),
		Tax:               models.NewMoneyFromDecimal(tax),
		Total:             models.NewMoneyFromDecimal(total),
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		orderRepo := s.orderRepo.WithTx(tx)
		cartRepo := s.cartRepo.WithTx(tx)
		if err := orderRepo.Create(order, items); err != nil {
			return err
		}
		if err := cartRepo.ClearByCart(cart.ID); err != nil {
			return err
		}
		return cartRepo.TouchCart(cart.ID)
	})
	if err != nil {
		return nil, ErrOrderCreateFailed
	}

	order.Items = items
	return order, nil
}

// ListOrdersByUser 获取用户订单列表
func (s *OrderService) ListOrdersByUser(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	if filter.UserID == 0 {
		return nil, 0, ErrOrderFetchFailed
	}
	orders, total, err := s.orderRepo.ListByUser(filter)
	if err != nil {
		return nil, 0, ErrOrderFetchFailed
	}
	return orders, total, nil
}

// GetOrderByUser 获取用户订单详情
func (s *OrderService) GetOrderByUser(orderID, userID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByIDAndUser(orderID, userID)
	if err != nil {
		return nil, ErrOrderFetchFailed
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// UpdateOrderStatus 更新订单状态（按流转表校验）
func (s *OrderService) UpdateOrderStatus(orderID uint, targetStatus string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, ErrOrderFetchFailed
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	target := strings.TrimSpace(targetStatus)
	if target == "" {
		return nil, ErrOrderStatusInvalid
	}
	if order.Status == target {
		return order, nil
	}
	if !isTransitionAllowed(order.Status, target) {
		return nil, ErrOrderStatusInvalid
	}

	now := time.Now()
	if err := s.orderRepo.UpdateStatus(order.ID, target, map[string]interface{}{
		"updated_at": now,
	}); err != nil {
		return nil, err
	}
	order.Status = target
	order.UpdatedAt = now
	return order, nil
}

func isTransitionAllowed(current, target string) bool {
	if current == target {
		return true
	}
	nexts, ok := allowedTransitions[current]
	if !ok {
		return false
	}
	return nexts[target]
}

func hasEmptyShippingField(input CreateOrderInput) bool {
	fields := []string{
		input.ShippingFirstName,
		input.ShippingLastName,
		input.ShippingAddress,
		input.ShippingCity,
		input.ShippingState,
		input.ShippingZipCode,
	}
	for _, field := range fields {
		if strings.TrimSpace(field) == "" {
			return true
		}
	}
	return false
}

// generateOrderNo 生成订单编号
func generateOrderNo() string {
	now := time.Now().Format("20060102150405")
	randPart := randNumeric(6)
	return fmt.Sprintf("HX%s%s", now, randPart)
}

func randNumeric(length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			b.WriteString("0")
			continue
		}
		b.WriteString(fmt.Sprintf("%d", n.Int64()))
	}
	return b.String()
}
