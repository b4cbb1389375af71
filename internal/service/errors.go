package service

import "errors"

// 服务层统一错误定义，处理器按 errors.Is 映射为 HTTP 状态码。
var (
	ErrNotFound = errors.New("record not found")

	// 认证相关
	ErrInvalidEmail       = errors.New("invalid email")
	ErrEmailExists        = errors.New("email already registered")
	ErrPasswordTooShort   = errors.New("password too short")
	ErrPasswordMismatch   = errors.New("password fields didn't match")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserDisabled       = errors.New("user account is disabled")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrLogoutFailed       = errors.New("error logging out")

	// 购物车相关
	ErrProductNotFound  = errors.New("product not found")
	ErrInvalidSize      = errors.New("invalid size")
	ErrInvalidQuantity  = errors.New("invalid quantity")
	ErrCartItemNotFound = errors.New("cart item not found")

	// 订单相关
	ErrCartEmpty          = errors.New("cart is empty")
	ErrShippingIncomplete = errors.New("shipping information incomplete")
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderCreateFailed  = errors.New("order create failed")
	ErrOrderFetchFailed   = errors.New("order fetch failed")
	ErrOrderStatusInvalid = errors.New("order status transition not allowed")

	// 优惠券相关
	ErrCouponNotFound  = errors.New("coupon not found")
	ErrCouponMinAmount = errors.New("order amount below coupon minimum")
)
