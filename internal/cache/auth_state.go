package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/haxeuz-store/internal/models"
)

const authStateCacheTTL = 10 * time.Minute

// TokenAuthState 令牌鉴权快照
// 以令牌为键缓存用户身份，命中时鉴权中间件无需回查数据库
type TokenAuthState struct {
	UserID    uint   `json:"user_id"`
	Email     string `json:"email"`
	IsActive  bool   `json:"is_active"`
	UpdatedAt int64  `json:"updated_at"`
}

func tokenAuthStateKey(key string) string {
	return fmt.Sprintf("auth:token:%s", key)
}

// BuildTokenAuthState 从用户模型构建令牌鉴权快照
func BuildTokenAuthState(user *models.User) *TokenAuthState {
	if user == nil {
		return nil
	}
	return &TokenAuthState{
		UserID:    user.ID,
		Email:     user.Email,
		IsActive:  user.IsActive,
		UpdatedAt: time.Now().Unix(),
	}
}

// GetTokenAuthState 获取令牌鉴权快照
func GetTokenAuthState(ctx context.Context, key string) (*TokenAuthState, bool, error) {
	if key == "" {
		return nil, false, nil
	}
	var state TokenAuthState
	hit, err := GetJSON(ctx, tokenAuthStateKey(key), &state)
	if err != nil || !hit {
		return nil, hit, err
	}
	return &state, true, nil
}

// SetTokenAuthState 写入令牌鉴权快照
func SetTokenAuthState(ctx context.Context, key string, state *TokenAuthState) error {
	if key == "" || state == nil || state.UserID == 0 {
		return nil
	}
	return SetJSON(ctx, tokenAuthStateKey(key), state, authStateCacheTTL)
}

// DelTokenAuthState 删除令牌鉴权快照
func DelTokenAuthState(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	return Del(ctx, tokenAuthStateKey(key))
}
