package service

import (
	"github.com/haxeuz-store/internal/models"
	"github.com/haxeuz-store/internal/repository"
)

// CategoryService 分类业务服务
type CategoryService struct {
	repo repository.CategoryRepository
}

// NewCategoryService 创建分类服务
func NewCategoryService(repo repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// List 获取全部分类
func (s *CategoryService) List() ([]models.Category, error) {
	return s.repo.List()
}

// GetBySlug 根据 slug 获取分类
func (s *CategoryService) GetBySlug(slug string) (*models.Category, error) {
	category, err := s.repo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}
	return category, nil
}
