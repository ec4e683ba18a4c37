package cache

import (
	"context"
	"testing"

	"github.com/sportshop-next/internal/config"
	"github.com/sportshop-next/internal/models"
)

func TestDisabledCacheIsNoop(t *testing.T) {
	c := New(&config.RedisConfig{Enabled: false})
	if c.Enabled() {
		t.Fatalf("cache should be disabled")
	}
	ctx := context.Background()
	if err := c.SetUserAuthState(ctx, &UserAuthState{UserID: 1}); err != nil {
		t.Fatalf("set on disabled cache should be noop: %v", err)
	}
	state, hit, err := c.GetUserAuthState(ctx, 1)
	if err != nil || hit || state != nil {
		t.Fatalf("get on disabled cache should miss: state=%v hit=%v err=%v", state, hit, err)
	}
	if err := c.Del(ctx, "x"); err != nil {
		t.Fatalf("del on disabled cache should be noop: %v", err)
	}
}

func TestKeyUsesPrefix(t *testing.T) {
	var nilCache *Cache
	if got := nilCache.Key("auth:user:1"); got != "ss:auth:user:1" {
		t.Fatalf("unexpected key: %s", got)
	}
	c := &Cache{prefix: "shop"}
	if got := c.Key(" rl:orders "); got != "shop:rl:orders" {
		t.Fatalf("unexpected key: %s", got)
	}
}

func TestBuildUserAuthStateCopiesIdentity(t *testing.T) {
	state := BuildUserAuthState(&models.User{ID: 3, Name: "Asha", Email: "asha@example.com", Role: "admin", Status: "active", TokenVersion: 2})
	if state.UserID != 3 || state.Role != "admin" || state.TokenVersion != 2 || state.Email != "asha@example.com" {
		t.Fatalf("unexpected state: %+v", state)
	}
	if BuildUserAuthState(nil) != nil {
		t.Fatalf("nil user should produce nil state")
	}
}
