package public

import (
	"errors"
	"net/http"

	"github.com/haxeuz-store/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target  error
	status  int
	message string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackStatus int, fallbackMsg string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.status, rule.message, nil)
			return
		}
	}
	respondError(c, fallbackStatus, fallbackMsg, err)
}

var cartAddErrorRules = []mappedHandlerError{
	{target: service.ErrProductNotFound, status: http.StatusNotFound, message: "Product not found"},
	{target: service.ErrInvalidSize, status: http.StatusBadRequest, message: "Invalid size"},
	{target: service.ErrInvalidQuantity, status: http.StatusBadRequest, message: "Invalid quantity"},
}

var cartItemErrorRules = []mappedHandlerError{
	{target: service.ErrCartItemNotFound, status: http.StatusNotFound, message: "Cart item not found"},
}

var orderCreateErrorRules = []mappedHandlerError{
	{target: service.ErrCartEmpty, status: http.StatusBadRequest, message: "Cart is empty"},
	{target: service.ErrShippingIncomplete, status: http.StatusBadRequest, message: "Shipping information is incomplete"},
}

var registerErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidEmail, status: http.StatusBadRequest, message: "Enter a valid email address"},
	{target: service.ErrEmailExists, status: http.StatusBadRequest, message: "A user with this email already exists"},
	{target: service.ErrPasswordTooShort, status: http.StatusBadRequest, message: "Password must be at least 8 characters"},
	{target: service.ErrPasswordMismatch, status: http.StatusBadRequest, message: "Passwords do not match"},
}

var loginErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidCredentials, status: http.StatusBadRequest, message: "Invalid credentials"},
	{target: service.ErrUserDisabled, status: http.StatusBadRequest, message: "User account is disabled"},
}

var logoutErrorRules = []mappedHandlerError{
	{target: service.ErrLogoutFailed, status: http.StatusBadRequest, message: "Error logging out"},
}

func respondCartAddError(c *gin.Context, err error) {
	respondWithMappedError(c, err, cartAddErrorRules, http.StatusInternalServerError, "Failed to add item to cart")
}

func respondCartItemError(c *gin.Context, err error) {
	respondWithMappedError(c, err, cartItemErrorRules, http.StatusInternalServerError, "Failed to update cart")
}

func respondOrderCreateError(c *gin.Context, err error) {
	respondWithMappedError(c, err, orderCreateErrorRules, http.StatusInternalServerError, "Failed to create order")
}

func respondRegisterError(c *gin.Context, err error) {
	respondWithMappedError(c, err, registerErrorRules, http.StatusInternalServerError, "Registration failed")
}

func respondLoginError(c *gin.Context, err error) {
	respondWithMappedError(c, err, loginErrorRules, http.StatusInternalServerError, "Login failed")
}

func respondLogoutError(c *gin.Context, err error) {
	respondWithMappedError(c, err, logoutErrorRules, http.StatusBadRequest, "Error logging out")
}
