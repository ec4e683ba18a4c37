package service

import (
	"errors"
	"fmt"
)

// 错误分类，具体错误通过 Unwrap 归入其中之一，未归类的错误按内部错误处理
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
)

type classifiedError struct {
	kind error
	msg  string
}

func (e *classifiedError) Error() string { return e.msg }

func (e *classifiedError) Unwrap() error { return e.kind }

func classify(kind error, msg string) error {
	return &classifiedError{kind: kind, msg: msg}
}

// 参数错误
var (
	ErrProductIDRequired    = classify(ErrInvalidInput, "product id is required")
	ErrInvalidQuantity      = classify(ErrInvalidInput, "quantity must be at least 1")
	ErrOrderItemsEmpty      = classify(ErrInvalidInput, "order items are empty")
	ErrProductInvalid       = classify(ErrInvalidInput, "product does not exist")
	ErrProductFieldsMissing = classify(ErrInvalidInput, "product name and category are required")
	ErrInvalidPrice         = classify(ErrInvalidInput, "price must not be negative")
)

// 鉴权错误
var (
	ErrAuthHeaderMissing = classify(ErrUnauthorized, "authorization header missing")
	ErrAuthHeaderInvalid = classify(ErrUnauthorized, "authorization header malformed")
	ErrTokenInvalid      = classify(ErrUnauthorized, "token invalid")
	ErrTokenExpired      = classify(ErrUnauthorized, "token expired")
	ErrTokenRevoked      = classify(ErrUnauthorized, "token revoked")
	ErrUserNotFound      = classify(ErrUnauthorized, "user no longer exists")
	ErrUserDisabled      = classify(ErrUnauthorized, "user disabled")
)

// 权限错误
var (
	ErrAdminRequired = classify(ErrForbidden, "admin role required")
	ErrNotOrderOwner = classify(ErrForbidden, "order belongs to another user")
)

// 资源不存在
var (
	ErrProductNotFound  = classify(ErrNotFound, "product not found")
	ErrCartNotFound     = classify(ErrNotFound, "cart not found")
	ErrCartItemNotFound = classify(ErrNotFound, "cart item not found")
	ErrOrderNotFound    = classify(ErrNotFound, "order not found")
)

// MissingProductError 下单时引用了不存在的商品
type MissingProductError struct {
	ProductID uint
}

func (e *MissingProductError) Error() string {
	return fmt.Sprintf("product %d not found", e.ProductID)
}

func (e *MissingProductError) Unwrap() error { return ErrProductNotFound }
