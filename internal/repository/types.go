package repository

import "gorm.io/gorm"

// ProductListFilter 查询商品列表的过滤条件。
// Ordering 取值受白名单约束，越界时由仓库层回退默认排序。
type ProductListFilter struct {
	Page         int
	PageSize     int
	Search       string
	CategorySlug string
	FeaturedOnly bool
	Ordering     string
	OnlyActive   bool
	WithCategory bool
}

// OrderListFilter 查询订单列表的过滤条件
type OrderListFilter struct {
	Page     int
	PageSize int
	UserID   uint
	Status   string
}

// applyPagination 应用分页参数，page 小于 1 时按第一页处理，
// pageSize 非正时不分页（店面接口默认全量返回）。
func applyPagination(query *gorm.DB, page, pageSize int) *gorm.DB {
	if query == nil || pageSize <= 0 {
		return query
	}
	if page < 1 {
		page = 1
	}
	return query.Limit(pageSize).Offset((page - 1) * pageSize)
}
