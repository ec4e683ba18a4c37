package shared

import (
	"errors"

	"github.com/sportshop-next/internal/http/response"
	"github.com/sportshop-next/internal/i18n"
	"github.com/sportshop-next/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	key    string
}

var serviceErrorRules = []mappedHandlerError{
	{target: service.ErrProductIDRequired, code: response.CodeBadRequest, key: "error.product_id_required"},
	{target: service.ErrInvalidQuantity, code: response.CodeBadRequest, key: "error.quantity_invalid"},
	{target: service.ErrOrderItemsEmpty, code: response.CodeBadRequest, key: "error.order_items_empty"},
	{target: service.ErrProductInvalid, code: response.CodeBadRequest, key: "error.product_invalid"},
	{target: service.ErrProductFieldsMissing, code: response.CodeBadRequest, key: "error.product_fields_missing"},
	{target: service.ErrInvalidPrice, code: response.CodeBadRequest, key: "error.price_invalid"},
	{target: service.ErrAuthHeaderMissing, code: response.CodeUnauthorized, key: "error.auth_header_missing"},
	{target: service.ErrAuthHeaderInvalid, code: response.CodeUnauthorized, key: "error.auth_header_invalid"},
	{target: service.ErrTokenExpired, code: response.CodeUnauthorized, key: "error.token_expired"},
	{target: service.ErrTokenRevoked, code: response.CodeUnauthorized, key: "error.token_revoked"},
	{target: service.ErrTokenInvalid, code: response.CodeUnauthorized, key: "error.token_invalid"},
	{target: service.ErrUserNotFound, code: response.CodeUnauthorized, key: "error.user_not_found"},
	{target: service.ErrUserDisabled, code: response.CodeUnauthorized, key: "error.user_disabled"},
	{target: service.ErrAdminRequired, code: response.CodeForbidden, key: "error.admin_required"},
	{target: service.ErrNotOrderOwner, code: response.CodeForbidden, key: "error.order_forbidden"},
	{target: service.ErrProductNotFound, code: response.CodeNotFound, key: "error.product_not_found"},
	{target: service.ErrCartNotFound, code: response.CodeNotFound, key: "error.cart_not_found"},
	{target: service.ErrCartItemNotFound, code: response.CodeNotFound, key: "error.cart_item_not_found"},
	{target: service.ErrOrderNotFound, code: response.CodeNotFound, key: "error.order_not_found"},
}

// 未命中具体规则时按错误分类兜底
var serviceErrorKinds = []mappedHandlerError{
	{target: service.ErrInvalidInput, code: response.CodeBadRequest, key: "error.bad_request"},
	{target: service.ErrUnauthorized, code: response.CodeUnauthorized, key: "error.unauthorized"},
	{target: service.ErrForbidden, code: response.CodeForbidden, key: "error.forbidden"},
	{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.not_found"},
}

// RespondServiceError 将服务层错误映射为接口响应，未分类错误按 500 处理并记录日志。
func RespondServiceError(c *gin.Context, err error) {
	var missing *service.MissingProductError
	if errors.As(err, &missing) {
		msg := i18n.Sprintf(i18n.ResolveLocale(c), "error.order_product_missing", missing.ProductID)
		RespondErrorWithMsg(c, response.CodeNotFound, msg, nil)
		return
	}
	for _, group := range [][]mappedHandlerError{serviceErrorRules, serviceErrorKinds} {
		for _, rule := range group {
			if errors.Is(err, rule.target) {
				RespondError(c, rule.code, rule.key, nil)
				return
			}
		}
	}
	RespondError(c, response.CodeInternal, "error.internal", err)
}
