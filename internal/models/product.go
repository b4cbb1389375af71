package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// StringArray 字符串数组类型，用于存储尺码等列表字段
type StringArray []string

// Value 实现 driver.Valuer 接口
func (s StringArray) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

// Scan 实现 sql.Scanner 接口
func (s *StringArray) Scan(value interface{}) error {
	if value == nil {
		*s = StringArray{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, s)
}

// Contains 判断是否包含指定元素
func (s StringArray) Contains(target string) bool {
	for _, item := range s {
		if item == target {
			return true
		}
	}
	return false
}

// Product 商品表
type Product struct {
	ID           uint           `gorm:"primarykey" json:"id"`                    // 主键
	Name         string         `gorm:"not null" json:"name"`                    // 商品名称
	Slug         string         `gorm:"uniqueIndex;not null" json:"slug"`        // 唯一标识
	Description  string         `gorm:"type:text" json:"description"`            // 商品描述
	Price        Money          `gorm:"type:decimal(10,2);not null" json:"price"` // 售价
	ComparePrice Money          `gorm:"type:decimal(10,2)" json:"compare_price"` // 划线价
	FrontImage   string         `gorm:"type:varchar(500)" json:"front_image"`    // 正面图
	BackImage    string         `gorm:"type:varchar(500)" json:"back_image"`     // 背面图
	CategoryID   uint           `gorm:"not null;index" json:"category_id"`       // 分类ID
	Sizes        StringArray    `gorm:"type:json" json:"sizes"`                  // 可选尺码
	Stock        int            `gorm:"default:0" json:"stock"`                  // 库存
	IsActive     bool           `gorm:"default:true;index" json:"is_active"`     // 是否上架
	IsFeatured   bool           `gorm:"default:false;index" json:"is_featured"`  // 是否精选
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`                 // 创建时间
	UpdatedAt    time.Time      `json:"updated_at"`                              // 更新时间
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                          // 软删除时间

	// 关联
	Category *Category        `gorm:"foreignKey:CategoryID" json:"category,omitempty"` // 分类信息
	Variants []ProductVariant `gorm:"foreignKey:ProductID" json:"variants,omitempty"`  // 尺码变体列表
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
