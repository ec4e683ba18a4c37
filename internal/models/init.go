package models

import (
	"strings"

	"gorm.io/gorm"

	"github.com/sportshop-next/internal/constants"
	"github.com/sportshop-next/internal/logger"
)

// EnsureDefaultAdmin 确保存在至少一个管理员账号
func EnsureDefaultAdmin(db *gorm.DB, email string) (*User, error) {
	var existing User
	err := db.Where("role = ?", constants.RoleAdmin).Order("id asc").First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		email = "admin@sportshop.local"
	}
	admin := User{
		Name:   "Administrator",
		Email:  email,
		Role:   constants.RoleAdmin,
		Status: constants.UserStatusActive,
	}
	if err := db.Create(&admin).Error; err != nil {
		return nil, err
	}
	logger.Warnw("default_admin_created", "user_id", admin.ID, "email", admin.Email)
	return &admin, nil
}
