package public

import (
	"net/http"

	"github.com/haxeuz-store/internal/http/response"
	"github.com/haxeuz-store/internal/models"
	"github.com/haxeuz-store/internal/service"

	"github.com/gin-gonic/gin"
)

// RegisterRequest 注册请求
type RegisterRequest struct {
	Email           string `json:"email" binding:"required"`
	Username        string `json:"username"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Password        string `json:"password" binding:"required"`
	PasswordConfirm string `json:"password_confirm" binding:"required"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthUserResponse 认证响应中的用户摘要
type AuthUserResponse struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// AuthResponse 认证响应：令牌加用户摘要
type AuthResponse struct {
	Token string           `json:"token"`
	User  AuthUserResponse `json:"user"`
}

func buildAuthResponse(token string, user *models.User) AuthResponse {
	return AuthResponse{
		Token: token,
		User: AuthUserResponse{
			ID:        user.ID,
			Email:     user.Email,
			FirstName: user.FirstName,
			LastName:  user.LastName,
		},
	}
}

// Register 用户注册，成功后返回令牌
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request", err)
		return
	}
	user, token, err := h.UserAuthService.Register(service.RegisterInput{
		Email:           req.Email,
		Username:        req.Username,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
	})
	if err != nil {
		respondRegisterError(c, err)
		return
	}
	response.Created(c, buildAuthResponse(token, user))
}

// Login 用户登录
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid credentials", err)
		return
	}
	user, token, err := h.UserAuthService.Login(req.Email, req.Password)
	if err != nil {
		respondLoginError(c, err)
		return
	}
	response.Success(c, buildAuthResponse(token, user))
}

// Logout 注销，作废当前用户的令牌
func (h *Handler) Logout(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	if err := h.UserAuthService.Logout(uid); err != nil {
		respondLogoutError(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Successfully logged out")
}
