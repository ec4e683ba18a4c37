package service

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// QuantityBounds 购物车数量闭区间
type QuantityBounds struct {
	Min int
	Max int
}

// Clamp 截断到 [Min, Max]
func (b QuantityBounds) Clamp(q int) int {
	if q < b.Min {
		return b.Min
	}
	if q > b.Max {
		return b.Max
	}
	return q
}

// RequestedQuantity 宽松解析的数量：取数字或字符串的整数前缀，缺失、无法解析或为 0 时视为 1
type RequestedQuantity int

// UnmarshalJSON 接受数字、字符串与 null
func (q *RequestedQuantity) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*q = 1
		return nil
	}
	raw := string(b)
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			*q = 1
			return nil
		}
		*q = RequestedQuantity(ParseLenientQuantity(s))
		return nil
	}
	// JSON 数字按数值截断，1e3 即 1000
	if f, err := strconv.ParseFloat(raw, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		*q = RequestedQuantity(orOne(truncate(f)))
		return nil
	}
	*q = RequestedQuantity(ParseLenientQuantity(raw))
	return nil
}

// ParseLenientQuantity 只读取字符串开头的符号与十进制数字，"1e3" 与 "0x10" 都取到 1
func ParseLenientQuantity(raw string) int {
	raw = strings.TrimSpace(raw)
	end := 0
	for i, r := range raw {
		if (r == '+' || r == '-') && i == 0 {
			end = i + 1
			continue
		}
		if !unicode.IsDigit(r) || r > unicode.MaxASCII {
			break
		}
		end = i + 1
	}
	prefix := raw[:end]
	if prefix == "" || prefix == "+" || prefix == "-" {
		return 1
	}
	f, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		return 1
	}
	return orOne(truncate(f))
}

func truncate(f float64) int {
	const limit = 1 << 30
	if f > limit {
		return limit
	}
	if f < -limit {
		return -limit
	}
	return int(f)
}

func orOne(n int) int {
	if n == 0 {
		return 1
	}
	return n
}
