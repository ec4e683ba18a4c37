package service

import (
	"encoding/json"
	"testing"
)

func TestQuantityBoundsClamp(t *testing.T) {
	bounds := QuantityBounds{Min: 1, Max: 10}
	cases := map[int]int{-5: 1, 0: 1, 1: 1, 7: 7, 10: 10, 15: 10, 1 << 20: 10}
	for in, want := range cases {
		if got := bounds.Clamp(in); got != want {
			t.Fatalf("Clamp(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestParseLenientQuantity(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{"3", 3},
		{" 5 ", 5},
		{"2.9", 2},
		{"12abc", 12},
		{"abc", 1},
		{"", 1},
		{"0", 1},
		{"NaN", 1},
		{"-4", -4},
		{"1e3", 1},
		{"0x10", 1},
		{"+6", 6},
	}
	for _, tc := range cases {
		if got := ParseLenientQuantity(tc.raw); got != tc.want {
			t.Fatalf("ParseLenientQuantity(%q) = %d, want %d", tc.raw, got, tc.want)
		}
	}
}

func TestRequestedQuantityUnmarshal(t *testing.T) {
	cases := []struct {
		body string
		want RequestedQuantity
	}{
		{`{"quantity":4}`, 4},
		{`{"quantity":"7"}`, 7},
		{`{"quantity":"many"}`, 1},
		{`{"quantity":null}`, 1},
		{`{"quantity":0}`, 1},
		{`{"quantity":2.5}`, 2},
		{`{"quantity":1e3}`, 1000},
		{`{"quantity":"1e3"}`, 1},
	}
	for _, tc := range cases {
		var req struct {
			Quantity RequestedQuantity `json:"quantity"`
		}
		if err := json.Unmarshal([]byte(tc.body), &req); err != nil {
			t.Fatalf("unmarshal %s failed: %v", tc.body, err)
		}
		if req.Quantity != tc.want {
			t.Fatalf("unmarshal %s = %d, want %d", tc.body, req.Quantity, tc.want)
		}
	}
}
