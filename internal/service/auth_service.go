package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sportshop-next/internal/cache"
	"github.com/sportshop-next/internal/config"
	"github.com/sportshop-next/internal/constants"
	"github.com/sportshop-next/internal/logger"
	"github.com/sportshop-next/internal/models"
	"github.com/sportshop-next/internal/repository"

	"github.com/golang-jwt/jwt/v5"
)

// UserJWTClaims 用户 JWT 声明
type UserJWTClaims struct {
	UserID       uint   `json:"user_id"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	TokenVersion uint64 `json:"token_version"`
	jwt.RegisteredClaims
}

// AuthService 访问守卫：校验 Bearer 凭证并解析为调用方身份
type AuthService struct {
	secret      []byte
	expireHours int
	users       repository.UserRepository
	cache       authStateCache
}

// authStateCache 鉴权快照缓存，*cache.Cache 为空或未启用时均视为未命中
type authStateCache interface {
	GetUserAuthState(ctx context.Context, userID uint) (*cache.UserAuthState, bool, error)
	SetUserAuthState(ctx context.Context, state *cache.UserAuthState) error
	DelUserAuthState(ctx context.Context, userID uint) error
}

// NewAuthService 创建访问守卫
func NewAuthService(cfg config.JWTConfig, users repository.UserRepository, c *cache.Cache) *AuthService {
	expire := cfg.ExpireHours
	if expire <= 0 {
		expire = 24
	}
	return &AuthService{
		secret:      []byte(cfg.SecretKey),
		expireHours: expire,
		users:       users,
		cache:       c,
	}
}

// IssueToken 签发用户 JWT，供种子命令与测试使用，正式登录由外部账号系统负责
func (s *AuthService) IssueToken(user *models.User, ttl time.Duration) (string, time.Time, error) {
	if user == nil || user.ID == 0 {
		return "", time.Time{}, ErrUserNotFound
	}
	if ttl <= 0 {
		ttl = time.Duration(s.expireHours) * time.Hour
	}
	now := time.Now()
	expiresAt := now.Add(ttl)
	claims := UserJWTClaims{
		UserID:       user.ID,
		Email:        user.Email,
		Role:         user.Role,
		TokenVersion: user.TokenVersion,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", user.ID),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ParseToken 校验签名与有效期
func (s *AuthService) ParseToken(tokenString string) (*UserJWTClaims, error) {
	if len(s.secret) == 0 {
		return nil, ErrTokenInvalid
	}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	claims := &UserJWTClaims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !token.Valid || claims.UserID == 0 {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// Authenticate 解析 Authorization 头并确认用户仍然存在
func (s *AuthService) Authenticate(ctx context.Context, authHeader string) (Identity, error) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return Identity{}, ErrAuthHeaderMissing
	}
	scheme, tokenString, ok := strings.Cut(authHeader, " ")
	tokenString = strings.TrimSpace(tokenString)
	if !ok || !strings.EqualFold(scheme, "Bearer") || tokenString == "" {
		return Identity{}, ErrAuthHeaderInvalid
	}

	claims, err := s.ParseToken(tokenString)
	if err != nil {
		return Identity{}, err
	}

	cached, hit, cacheErr := s.cache.GetUserAuthState(ctx, claims.UserID)
	if cacheErr != nil {
		logger.Warnw("auth_state_cache_get_failed", "user_id", claims.UserID, "error", cacheErr)
	}

	// 快照只缓存状态与令牌版本，用户是否存在每次回源确认
	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return Identity{}, fmt.Errorf("load user %d: %w", claims.UserID, err)
	}
	if user == nil {
		if hit {
			if err := s.cache.DelUserAuthState(ctx, claims.UserID); err != nil {
				logger.Warnw("auth_state_cache_del_failed", "user_id", claims.UserID, "error", err)
			}
		}
		return Identity{}, ErrUserNotFound
	}
	if cacheErr == nil && hit && cached != nil {
		return identityFromState(cached, claims)
	}
	state := cache.BuildUserAuthState(user)
	if err := s.cache.SetUserAuthState(ctx, state); err != nil {
		logger.Warnw("auth_state_cache_set_failed", "user_id", user.ID, "error", err)
	}
	return identityFromState(state, claims)
}

func identityFromState(state *cache.UserAuthState, claims *UserJWTClaims) (Identity, error) {
	if state.Status != "" && state.Status != constants.UserStatusActive {
		return Identity{}, ErrUserDisabled
	}
	if claims.TokenVersion != state.TokenVersion {
		return Identity{}, ErrTokenRevoked
	}
	role := state.Role
	if role == "" {
		role = constants.RoleUser
	}
	return Identity{
		UserID: state.UserID,
		Name:   state.Name,
		Email:  state.Email,
		Role:   role,
	}, nil
}
