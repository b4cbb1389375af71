package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/mail"
	"strings"
	"time"

	"github.com/haxeuz-store/internal/cache"
	"github.com/haxeuz-store/internal/constants"
	"github.com/haxeuz-store/internal/models"
	"github.com/haxeuz-store/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// 密码最小长度缺省值
const defaultPasswordMinLength = 8

// UserAuthService 用户认证服务
type UserAuthService struct {
	userRepo          repository.UserRepository
	tokenRepo         repository.AuthTokenRepository
	passwordMinLength int
}

// NewUserAuthService 创建用户认证服务，passwordMinLength 非正时取缺省值
func NewUserAuthService(userRepo repository.UserRepository, tokenRepo repository.AuthTokenRepository, passwordMinLength int) *UserAuthService {
	if passwordMinLength <= 0 {
		passwordMinLength = defaultPasswordMinLength
	}
	return &UserAuthService{
		userRepo:          userRepo,
		tokenRepo:         tokenRepo,
		passwordMinLength: passwordMinLength,
	}
}

// RegisterInput 用户注册输入
type RegisterInput struct {
	Email           string
	Username        string
	FirstName       string
	LastName        string
	Password        string
	PasswordConfirm string
}

// Register 用户注册，成功后签发（或复用）令牌
func (s *UserAuthService) Register(input RegisterInput) (*models.User, string, error) {
	normalized, err := normalizeEmail(input.Email)
	if err != nil {
		return nil, "", err
	}
	if len(input.Password) < s.passwordMinLength {
		return nil, "", ErrPasswordTooShort
	}
	if input.Password != input.PasswordConfirm {
		return nil, "", ErrPasswordMismatch
	}

	exist, err := s.userRepo.GetByEmail(normalized)
	if err != nil {
		return nil, "", err
	}
	if exist != nil {
		return nil, "", ErrEmailExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	username := strings.TrimSpace(input.Username)
	if username == "" {
		username = normalized
	}

	now := time.Now()
	user := &models.User{
		Email:        normalized,
		Username:     username,
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		PasswordHash: string(hashedPassword),
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, "", err
	}

	token, err := s.issueOrReuseToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login 用户登录
func (s *UserAuthService) Login(email, password string) (*models.User, string, error) {
	normalized, err := normalizeEmail(email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}
	user, err := s.userRepo.GetByEmail(normalized)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, "", ErrUserDisabled
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issueOrReuseToken(user)
	if err != nil {
		return nil, "", err
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := s.userRepo.Update(user); err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Logout 注销，作废当前用户的令牌
func (s *UserAuthService) Logout(userID uint) error {
	existing, err := s.tokenRepo.GetByUserID(userID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrLogoutFailed
	}
	rows, err := s.tokenRepo.DeleteByUserID(userID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrLogoutFailed
	}
	_ = cache.DelTokenAuthState(context.Background(), existing.Key)
	return nil
}

// GetUserByToken 根据令牌解析用户（中间件的数据库回源路径）
func (s *UserAuthService) GetUserByToken(key string) (*models.User, error) {
	key = strings.TrimSpace(key)
	if len(key) != constants.AuthTokenLength {
		return nil, ErrTokenInvalid
	}
	token, err := s.tokenRepo.GetByKey(key)
	if err != nil {
		return nil, err
	}
	if token == nil || token.User == nil {
		return nil, ErrTokenInvalid
	}
	if !token.User.IsActive {
		return nil, ErrUserDisabled
	}
	return token.User, nil
}

// issueOrReuseToken 复用现有令牌，不存在时签发新令牌
func (s *UserAuthService) issueOrReuseToken(user *models.User) (string, error) {
	existing, err := s.tokenRepo.GetByUserID(user.ID)
	if err != nil {
		return "", err
	}
	if existing != nil {
		_ = cache.SetTokenAuthState(context.Background(), existing.Key, cache.BuildTokenAuthState(user))
		return existing.Key, nil
	}
	key, err := generateTokenKey()
	if err != nil {
		return "", err
	}
	token := &models.AuthToken{
		Key:       key,
		UserID:    user.ID,
		CreatedAt: time.Now(),
	}
	if err := s.tokenRepo.Create(token); err != nil {
		return "", err
	}
	_ = cache.SetTokenAuthState(context.Background(), key, cache.BuildTokenAuthState(user))
	return key, nil
}

// generateTokenKey 生成 40 位十六进制令牌
func generateTokenKey() (string, error) {
	buf := make([]byte, constants.AuthTokenLength/2)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// normalizeEmail 归一化并校验邮箱
func normalizeEmail(raw string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return "", ErrInvalidEmail
	}
	if _, err := mail.ParseAddress(normalized); err != nil {
		return "", ErrInvalidEmail
	}
	return normalized, nil
}
