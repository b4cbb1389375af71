package models

import (
	"time"

	"gorm.io/gorm"
)

// Order 订单表
type Order struct {
	ID                uint           `gorm:"primarykey" json:"id"`                                      // 主键
	OrderNo           string         `gorm:"uniqueIndex;not null" json:"order_no"`                      // 订单编号
	UserID            uint           `gorm:"index;not null" json:"user_id"`                             // 用户ID
	Status            string         `gorm:"index;not null;default:'pending'" json:"status"`            // 订单状态
	ShippingFirstName string         `gorm:"type:varchar(100);not null" json:"shipping_first_name"`     // 收件人名
	ShippingLastName  string         `gorm:"type:varchar(100);not null" json:"shipping_last_name"`      // 收件人姓
	ShippingAddress   string         `gorm:"type:varchar(500);not null" json:"shipping_address"`        // 收件地址
	ShippingCity      string         `gorm:"type:varchar(100);not null" json:"shipping_city"`           // 城市
	ShippingState     string         `gorm:"type:varchar(100);not null" json:"shipping_state"`          // 州/省
	ShippingZipCode   string         `gorm:"type:varchar(20);not null" json:"shipping_zip_code"`        // 邮编
	Subtotal          Money          `gorm:"type:decimal(10,2);not null;default:0" json:"subtotal"`     // 商品小计
	ShippingCost      Money          `gorm:"type:decimal(10,2);not null;default:0" json:"shipping_cost"` // 运费
	Tax               Money          `gorm:"type:decimal(10,2);not null;default:0" json:"tax"`          // 税费
	Total             Money          `gorm:"type:decimal(10,2);not null;default:0" json:"total"`        // 实付金额
	CreatedAt         time.Time      `gorm:"index" json:"created_at"`                                   // 创建时间
	UpdatedAt         time.Time      `gorm:"index" json:"updated_at"`                                   // 更新时间
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`                                            // 软删除时间

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"` // 订单项
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
