package models

import "time"

// ProductVariant 商品尺码变体（按尺码管理 SKU 与库存）
type ProductVariant struct {
	ID              uint      `gorm:"primarykey" json:"id"`                                       // 主键
	ProductID       uint      `gorm:"not null;uniqueIndex:idx_variant_product_size" json:"product_id"` // 商品ID
	Size            string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_variant_product_size" json:"size"` // 尺码
	SKU             string    `gorm:"uniqueIndex;not null" json:"sku"`                            // SKU 编码
	Stock           int       `gorm:"default:0" json:"stock"`                                     // 库存
	PriceAdjustment Money     `gorm:"type:decimal(10,2)" json:"price_adjustment"`                 // 尺码加价
	CreatedAt       time.Time `gorm:"index" json:"created_at"`                                    // 创建时间
}

// TableName 指定表名
func (ProductVariant) TableName() string {
	return "product_variants"
}
