package models

import (
	"time"

	"gorm.io/gorm"
)

// User 用户表（凭证签发与密码由外部账号系统负责）
type User struct {
	ID           uint           `gorm:"primarykey" json:"id"`                                     // 主键
	Name         string         `gorm:"type:varchar(100);not null;default:''" json:"name"`        // 昵称
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`                        // 邮箱
	Role         string         `gorm:"type:varchar(20);not null;default:'user'" json:"role"`     // 角色 admin/user
	Status       string         `gorm:"type:varchar(20);not null;default:'active'" json:"status"` // 账号状态
	TokenVersion uint64         `gorm:"not null;default:0" json:"-"`                              // Token 版本（用于全量失效）
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`                                  // 创建时间
	UpdatedAt    time.Time      `json:"updated_at"`                                               // 更新时间
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                                           // 软删除时间
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}

// IsAdmin 是否管理员
func (u User) IsAdmin() bool {
	return u.Role == "admin"
}
