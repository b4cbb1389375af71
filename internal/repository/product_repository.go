package repository

import (
	"errors"
	"strings"

	"github.com/haxeuz-store/internal/constants"
	"github.com/haxeuz-store/internal/models"

	"gorm.io/gorm"
)

// ProductRepository 商品数据访问接口
type ProductRepository interface {
	List(filter ProductListFilter) ([]models.Product, int64, error)
	GetByID(id uint, onlyActive bool) (*models.Product, error)
	GetBySlug(slug string, onlyActive bool) (*models.Product, error)
	ListFeatured(limit int) ([]models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	CountBySlug(slug string, excludeID *uint) (int64, error)
	WithTx(tx *gorm.DB) ProductRepository
}

// GormProductRepository GORM 实现
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓库
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// WithTx 绑定事务
func (r *GormProductRepository) WithTx(tx *gorm.DB) ProductRepository {
	if tx == nil {
		return r
	}
	return &GormProductRepository{db: tx}
}

// List 商品列表
func (r *GormProductRepository) List(filter ProductListFilter) ([]models.Product, int64, error) {
	var products []models.Product

	query := r.db.Model(&models.Product{})
	if filter.WithCategory {
		query = query.Preload("Category")
	}
	if filter.OnlyActive {
		query = query.Where("is_active = ?", true)
	}
	if slug := strings.TrimSpace(filter.CategorySlug); slug != "" {
		query = query.Joins("JOIN categories ON categories.id = products.category_id").
			Where("categories.slug = ?", slug)
	}
	if filter.FeaturedOnly {
		query = query.Where("is_featured = ?", true)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		condition, argCount := buildSearchCondition(r.db, []string{"products.name", "products.description"})
		query = query.Where(condition, repeatLikeArgs(like, argCount)...)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Order(orderingToSQL(filter.Ordering)).Find(&products).Error; err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

// orderingToSQL 将 ordering 参数转换为排序子句，白名单外回退默认排序。
func orderingToSQL(ordering string) string {
	normalized := strings.TrimSpace(ordering)
	allowed := false
	for _, candidate := range constants.ProductOrderingWhitelist {
		if candidate == normalized {
			allowed = true
			break
		}
	}
	if !allowed {
		normalized = constants.ProductOrderingDefault
	}
	if column, ok := strings.CutPrefix(normalized, "-"); ok {
		return "products." + column + " DESC"
	}
	return "products." + normalized + " ASC"
}

// GetByID 根据 ID 获取商品，携带分类与尺码变体
func (r *GormProductRepository) GetByID(id uint, onlyActive bool) (*models.Product, error) {
	query := r.db.Preload("Category").
		Preload("Variants", func(db *gorm.DB) *gorm.DB {
			return db.Order("product_variants.id ASC")
		})
	if onlyActive {
		query = query.Where("is_active = ?", true)
	}
	var product models.Product
	if err := query.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// GetBySlug 根据 slug 获取商品
func (r *GormProductRepository) GetBySlug(slug string, onlyActive bool) (*models.Product, error) {
	query := r.db.Preload("Category").Where("slug = ?", slug)
	if onlyActive {
		query = query.Where("is_active = ?", true)
	}
	var product models.Product
	if err := query.First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// ListFeatured 精选商品列表
func (r *GormProductRepository) ListFeatured(limit int) ([]models.Product, error) {
	var products []models.Product
	query := r.db.Preload("Category").
		Where("is_active = ? AND is_featured = ?", true, true).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Create 创建商品
func (r *GormProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// Update 更新商品
func (r *GormProductRepository) Update(product *models.Product) error {
	return r.db.Save(product).Error
}

// CountBySlug 统计 slug 数量
func (r *GormProductRepository) CountBySlug(slug string, excludeID *uint) (int64, error) {
	var count int64
	query := r.db.Model(&models.Product{}).Where("slug = ?", slug)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
