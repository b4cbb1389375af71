package service

import (
	"strings"

	"github.com/haxeuz-store/internal/constants"
	"github.com/haxeuz-store/internal/models"
	"github.com/haxeuz-store/internal/repository"
)

// ProductService 商品业务服务
type ProductService struct {
	repo repository.ProductRepository
}

// NewProductService 创建商品服务
func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

// ProductListInput 公开商品列表查询输入
type ProductListInput struct {
	Search       string
	CategorySlug string
	Featured     bool
	Ordering     string
	Page         int
	PageSize     int
}

// ListPublic 获取公开商品列表（仅上架商品）
func (s *ProductService) ListPublic(input ProductListInput) ([]models.Product, int64, error) {
	filter := repository.ProductListFilter{
		Page:         input.Page,
		PageSize:     input.PageSize,
		Search:       strings.TrimSpace(input.Search),
		CategorySlug: strings.TrimSpace(input.CategorySlug),
		FeaturedOnly: input.Featured,
		Ordering:     input.Ordering,
		OnlyActive:   true,
		WithCategory: true,
	}
	return s.repo.List(filter)
}

// GetPublicByID 获取公开商品详情
func (s *ProductService) GetPublicByID(id uint) (*models.Product, error) {
	product, err := s.repo.GetByID(id, true)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

// ListFeatured 获取精选商品（最多 4 个）
func (s *ProductService) ListFeatured() ([]models.Product, error) {
	return s.repo.ListFeatured(constants.FeaturedProductLimit)
}
