package constants

// 订单状态常量
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// 优惠券类型常量
const (
	CouponTypePercentage = "percentage"
	CouponTypeFixed      = "fixed"
)

// 商品排序白名单（列表接口 ordering 参数）
var ProductOrderingWhitelist = []string{
	"price", "-price",
	"name", "-name",
	"created_at", "-created_at",
}

// 商品默认排序
const ProductOrderingDefault = "-created_at"

// 首页精选商品数量上限
const FeaturedProductLimit = 4

// 结算金额常量（字符串形式，转 decimal 使用）
const (
	FreeShippingThreshold = "75"
	FlatShippingCost      = "9.99"
	TaxRate               = "0.08"
)

// 认证 Token 常量
const (
	AuthTokenLength = 40
)

// 缓存默认配置常量
const (
	RedisPrefixDefault = "hx"
)
