package service

import (
	"time"

	"github.com/haxeuz-store/internal/models"
	"github.com/haxeuz-store/internal/repository"
)

// CartService 购物车服务
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// AddCartItemInput 添加购物车项输入
type AddCartItemInput struct {
	UserID    uint
	ProductID uint
	Size      string
	Quantity  int
}

// GetCart 获取用户购物车，不存在则创建空购物车
func (s *CartService) GetCart(userID uint) (*models.Cart, error) {
	return s.cartRepo.GetOrCreateByUser(userID)
}

// AddItem 添加商品到购物车，同商品同尺码已存在时数量累加
func (s *CartService) AddItem(input AddCartItemInput) error {
	if input.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	product, err := s.productRepo.GetByID(input.ProductID, true)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	if !product.Sizes.Contains(input.Size) {
		return ErrInvalidSize
	}

	cart, err := s.cartRepo.GetOrCreateByUser(input.UserID)
	if err != nil {
		return err
	}

	now := time.Now()
	item := &models.CartItem{
		CartID:    cart.ID,
		ProductID: product.ID,
		Size:      input.Size,
		Quantity:  input.Quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.cartRepo.AddItem(item); err != nil {
		return err
	}
	return s.cartRepo.TouchCart(cart.ID)
}

// UpdateItem 更新购物车项数量，数量小于等于 0 时删除该项。
// 返回值表示该项是否被删除。
func (s *CartService) UpdateItem(userID, itemID uint, quantity int) (bool, error) {
	item, err := s.getOwnedItem(userID, itemID)
	if err != nil {
		return false, err
	}
	if quantity <= 0 {
		if err := s.cartRepo.DeleteItem(item.ID); err != nil {
			return false, err
		}
		if err := s.cartRepo.TouchCart(item.CartID); err != nil {
			return false, err
		}
		return true, nil
	}
	if err := s.cartRepo.UpdateItemQuantity(item.ID, quantity); err != nil {
		return false, err
	}
	return false, s.cartRepo.TouchCart(item.CartID)
}

// RemoveItem 从购物车移除指定项
func (s *CartService) RemoveItem(userID, itemID uint) error {
	item, err := s.getOwnedItem(userID, itemID)
	if err != nil {
		return err
	}
	if err := s.cartRepo.DeleteItem(item.ID); err != nil {
		return err
	}
	return s.cartRepo.TouchCart(item.CartID)
}

// getOwnedItem 按归属校验获取购物车项
func (s *CartService) getOwnedItem(userID, itemID uint) (*models.CartItem, error) {
	cart, err := s.cartRepo.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, ErrCartItemNotFound
	}
	item, err := s.cartRepo.GetItemByIDAndCart(itemID, cart.ID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrCartItemNotFound
	}
	return item, nil
}
