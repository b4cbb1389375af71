package models

import "time"

// AuthToken 不透明认证令牌（每个用户最多一枚，注销即作废）
type AuthToken struct {
	Key       string    `gorm:"primarykey;type:varchar(40)" json:"key"` // 令牌（40 位十六进制）
	UserID    uint      `gorm:"uniqueIndex;not null" json:"user_id"`    // 用户ID
	CreatedAt time.Time `gorm:"index" json:"created_at"`                // 签发时间

	User *User `gorm:"foreignKey:UserID" json:"-"` // 关联用户
}

// TableName 指定表名
func (AuthToken) TableName() string {
	return "auth_tokens"
}
