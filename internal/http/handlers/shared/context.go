package shared

import (
	"strconv"
	"strings"

	"github.com/sportshop-next/internal/http/response"
	"github.com/sportshop-next/internal/service"

	"github.com/gin-gonic/gin"
)

const identityContextKey = "identity"

// SetIdentity 鉴权中间件写入调用方身份。
func SetIdentity(c *gin.Context, identity service.Identity) {
	c.Set(identityContextKey, identity)
	c.Set("user_id", identity.UserID)
}

// GetIdentity 读取调用方身份，缺失时直接返回 401。
func GetIdentity(c *gin.Context) (service.Identity, bool) {
	value, exists := c.Get(identityContextKey)
	if !exists {
		RespondError(c, response.CodeUnauthorized, "error.unauthorized", nil)
		return service.Identity{}, false
	}
	identity, ok := value.(service.Identity)
	if !ok || identity.UserID == 0 {
		RespondError(c, response.CodeUnauthorized, "error.unauthorized", nil)
		return service.Identity{}, false
	}
	return identity, true
}

// ParseUintParam 解析路径中的正整数 ID，非法时返回 400。
func ParseUintParam(c *gin.Context, name, invalidKey string) (uint, bool) {
	raw := strings.TrimSpace(c.Param(name))
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		RespondError(c, response.CodeBadRequest, invalidKey, nil)
		return 0, false
	}
	return uint(id), true
}
