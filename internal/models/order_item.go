package models

import "time"

// OrderItem 订单项（下单时快照商品信息）
type OrderItem struct {
	ID           uint      `gorm:"primarykey" json:"id"`                     // 主键
	OrderID      uint      `gorm:"index;not null" json:"order_id"`           // 订单ID
	ProductID    uint      `gorm:"index;not null" json:"product_id"`         // 商品ID
	ProductName  string    `gorm:"not null" json:"product_name"`             // 商品名称快照
	ProductImage string    `gorm:"type:varchar(500)" json:"product_image"`   // 商品图片快照
	Size         string    `gorm:"type:varchar(10);not null" json:"size"`    // 尺码
	Quantity     int       `gorm:"not null" json:"quantity"`                 // 数量
	Price        Money     `gorm:"type:decimal(10,2);not null" json:"price"` // 下单时单价快照
	CreatedAt    time.Time `gorm:"index" json:"created_at"`                  // 创建时间
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}
