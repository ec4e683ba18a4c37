// Package i18n 接口提示文案，按 Accept-Language 选择语言
package i18n

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

const (
	LocaleEN   = "en"
	LocaleZhCN = "zh-CN"

	// DefaultLocale 未匹配时的语言
	DefaultLocale = LocaleEN
)

var (
	supported = []language.Tag{language.English, language.SimplifiedChinese}
	matcher   = language.NewMatcher(supported)
)

// ResolveLocale 解析请求语言，优先 lang 查询参数，其次 Accept-Language
func ResolveLocale(c *gin.Context) string {
	if c == nil || c.Request == nil {
		return DefaultLocale
	}
	if lang := strings.TrimSpace(c.Query("lang")); lang != "" {
		return MatchLocale(lang)
	}
	return MatchLocale(c.GetHeader("Accept-Language"))
}

// MatchLocale 将语言偏好匹配到已支持的语言
func MatchLocale(accept string) string {
	accept = strings.TrimSpace(accept)
	if accept == "" {
		return DefaultLocale
	}
	tags, _, err := language.ParseAcceptLanguage(accept)
	if err != nil || len(tags) == 0 {
		return DefaultLocale
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultLocale
	}
	if supported[index] == language.SimplifiedChinese {
		return LocaleZhCN
	}
	return LocaleEN
}

// T 取文案，缺失时回退到英文，再回退到 key 本身
func T(locale, key string) string {
	if table, ok := messages[locale]; ok {
		if msg, ok := table[key]; ok {
			return msg
		}
	}
	if msg, ok := messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Sprintf 取文案并按参数格式化
func Sprintf(locale, key string, args ...interface{}) string {
	return fmt.Sprintf(T(locale, key), args...)
}
