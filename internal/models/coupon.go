package models

import (
	"time"

	"gorm.io/gorm"
)

// Coupon 优惠券
type Coupon struct {
	ID            uint           `gorm:"primarykey" json:"id"`                                        // 主键
	Code          string         `gorm:"uniqueIndex;not null" json:"code"`                            // 优惠码
	Description   string         `gorm:"type:text" json:"description"`                                // 描述
	DiscountType  string         `gorm:"not null" json:"discount_type"`                               // 类型（percentage/fixed）
	DiscountValue Money          `gorm:"type:decimal(10,2);not null" json:"discount_value"`           // 数值（固定金额或百分比）
	MinimumAmount Money          `gorm:"type:decimal(10,2);not null;default:0" json:"minimum_amount"` // 使用门槛
	ValidFrom     time.Time      `gorm:"index" json:"valid_from"`                                     // 生效时间
	ValidUntil    time.Time      `gorm:"index" json:"valid_until"`                                    // 失效时间
	IsActive      bool           `gorm:"not null;default:true" json:"is_active"`                      // 是否启用
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`                                     // 创建时间
	UpdatedAt     time.Time      `gorm:"index" json:"updated_at"`                                     // 更新时间
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`                                              // 软删除时间
}

// TableName 指定表名
func (Coupon) TableName() string {
	return "coupons"
}
