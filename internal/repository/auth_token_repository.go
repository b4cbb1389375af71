package repository

import (
	"errors"

	"github.com/haxeuz-store/internal/models"

	"gorm.io/gorm"
)

// AuthTokenRepository 认证令牌数据访问接口
type AuthTokenRepository interface {
	GetByKey(key string) (*models.AuthToken, error)
	GetByUserID(userID uint) (*models.AuthToken, error)
	Create(token *models.AuthToken) error
	DeleteByUserID(userID uint) (int64, error)
}

// GormAuthTokenRepository GORM 实现
type GormAuthTokenRepository struct {
	db *gorm.DB
}

// NewAuthTokenRepository 创建认证令牌仓库
func NewAuthTokenRepository(db *gorm.DB) *GormAuthTokenRepository {
	return &GormAuthTokenRepository{db: db}
}

// GetByKey 根据令牌获取记录（含用户）
func (r *GormAuthTokenRepository) GetByKey(key string) (*models.AuthToken, error) {
	var token models.AuthToken
	if err := r.db.Preload("User").Where("key = ?", key).First(&token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &token, nil
}

// GetByUserID 获取用户现有令牌
func (r *GormAuthTokenRepository) GetByUserID(userID uint) (*models.AuthToken, error) {
	var token models.AuthToken
	if err := r.db.Where("user_id = ?", userID).First(&token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &token, nil
}

// Create 创建令牌
func (r *GormAuthTokenRepository) Create(token *models.AuthToken) error {
	return r.db.Create(token).Error
}

// DeleteByUserID 删除用户令牌，返回删除行数
func (r *GormAuthTokenRepository) DeleteByUserID(userID uint) (int64, error) {
	result := r.db.Where("user_id = ?", userID).Delete(&models.AuthToken{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
