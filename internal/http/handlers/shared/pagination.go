package shared

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// ParsePagination 读取 page 与 limit 查询参数，非法值按 0 处理，由服务层补默认值。
func ParsePagination(c *gin.Context) (int, int) {
	return queryInt(c, "page"), queryInt(c, "limit")
}

func queryInt(c *gin.Context, key string) int {
	n, err := strconv.Atoi(strings.TrimSpace(c.Query(key)))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
