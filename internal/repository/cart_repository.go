package repository

import (
	"errors"
	"time"

	"github.com/haxeuz-store/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartRepository 购物车数据访问接口
type CartRepository interface {
	GetOrCreateByUser(userID uint) (*models.Cart, error)
	GetByUser(userID uint) (*models.Cart, error)
	AddItem(item *models.CartItem) error
	GetItemByIDAndCart(itemID, cartID uint) (*models.CartItem, error)
	UpdateItemQuantity(itemID uint, quantity int) error
	DeleteItem(itemID uint) error
	ClearByCart(cartID uint) error
	TouchCart(cartID uint) error
	WithTx(tx *gorm.DB) CartRepository
}

// GormCartRepository GORM 实现
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓库
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx 绑定事务
func (r *GormCartRepository) WithTx(tx *gorm.DB) CartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

// preloadItems 统一预加载购物车项及其商品
func preloadItems(query *gorm.DB) *gorm.DB {
	return query.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Preload("Items.Product").
		Preload("Items.Product.Category")
}

// GetOrCreateByUser 获取用户购物车，不存在则创建
func (r *GormCartRepository) GetOrCreateByUser(userID uint) (*models.Cart, error) {
	cart, err := r.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	if cart != nil {
		return cart, nil
	}
	now := time.Now()
	created := &models.Cart{UserID: userID, CreatedAt: now, UpdatedAt: now}
	// 并发创建时依赖 user_id 唯一索引，冲突则重查
	if err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(created).Error; err != nil {
		return nil, err
	}
	return r.GetByUser(userID)
}

// GetByUser 获取用户购物车（含购物车项）
func (r *GormCartRepository) GetByUser(userID uint) (*models.Cart, error) {
	var cart models.Cart
	if err := preloadItems(r.db).Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

// AddItem 添加购物车项，同商品同尺码已存在时数量累加（单条语句原子完成）
func (r *GormCartRepository) AddItem(item *models.CartItem) error {
	if item == nil {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_id"}, {Name: "size"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("cart_items.quantity + ?", item.Quantity),
			"updated_at": item.UpdatedAt,
		}),
	}).Create(item).Error
}

// GetItemByIDAndCart 获取购物车项（按归属购物车限定）
func (r *GormCartRepository) GetItemByIDAndCart(itemID, cartID uint) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.Where("id = ? AND cart_id = ?", itemID, cartID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// UpdateItemQuantity 覆盖购物车项数量
func (r *GormCartRepository) UpdateItemQuantity(itemID uint, quantity int) error {
	return r.db.Model(&models.CartItem{}).Where("id = ?", itemID).Updates(map[string]interface{}{
		"quantity":   quantity,
		"updated_at": time.Now(),
	}).Error
}

// DeleteItem 删除购物车项
func (r *GormCartRepository) DeleteItem(itemID uint) error {
	return r.db.Delete(&models.CartItem{}, itemID).Error
}

// ClearByCart 清空购物车
func (r *GormCartRepository) ClearByCart(cartID uint) error {
	return r.db.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error
}

// TouchCart 刷新购物车更新时间
func (r *GormCartRepository) TouchCart(cartID uint) error {
	return r.db.Model(&models.Cart{}).Where("id = ?", cartID).
		Update("updated_at", time.Now()).Error
}
