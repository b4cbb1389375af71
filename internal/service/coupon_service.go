package service

import (
	"time"

	"github.com/haxeuz-store/internal/constants"
	"github.com/haxeuz-store/internal/models"
	"github.com/haxeuz-store/internal/repository"

	"github.com/shopspring/decimal"
)

// CouponService 优惠券服务
type CouponService struct {
	repo repository.CouponRepository
}

// NewCouponService 创建优惠券服务
func NewCouponService(repo repository.CouponRepository) *CouponService {
	return &CouponService{repo: repo}
}

// ValidateCode 校验优惠码，返回可用的优惠券。
// 仅接受启用中且处于有效期内的优惠码，金额未达门槛时拒绝。
func (s *CouponService) ValidateCode(code string, orderAmount decimal.Decimal) (*models.Coupon, error) {
	coupon, err := s.repo.GetActiveByCode(code, time.Now())
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		return nil, ErrCouponNotFound
	}
	if orderAmount.LessThan(coupon.MinimumAmount.Decimal) {
		return nil, ErrCouponMinAmount
	}
	return coupon, nil
}

// CalculateDiscount 计算优惠金额，折扣不超过订单金额。
func (s *CouponService) CalculateDiscount(coupon *models.Coupon, orderAmount decimal.Decimal) decimal.Decimal {
	if coupon == nil {
		return decimal.Zero
	}
	var discount decimal.Decimal
	switch coupon.DiscountType {
	case constants.CouponTypePercentage:
		discount = orderAmount.Mul(coupon.DiscountValue.Decimal).Div(decimal.NewFromInt(100)).Round(2)
	case constants.CouponTypeFixed:
		discount = coupon.DiscountValue.Decimal.Round(2)
	default:
		return decimal.Zero
	}
	if discount.GreaterThan(orderAmount) {
		return orderAmount
	}
	return discount
}
