package service

import "github.com/sportshop-next/internal/constants"

// Identity 已鉴权的调用方，由鉴权中间件生成后按值传递，下游只读
type Identity struct {
	UserID uint   `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// IsAdmin 是否管理员
func (i Identity) IsAdmin() bool {
	return i.Role == constants.RoleAdmin
}

// CanAccess 是否可访问 ownerID 名下的资源
func (i Identity) CanAccess(ownerID uint) bool {
	return i.IsAdmin() || (i.UserID != 0 && i.UserID == ownerID)
}
