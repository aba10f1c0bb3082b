package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"pet_diary_server/pkg/errorx"
)

// JWTConfig JWT 配置
type JWTConfig struct {
	Secret             string
	AccessTokenExpiry  time.Duration // Access Token 有效期
	RefreshTokenExpiry time.Duration // Refresh Token 有效期
}

// 全局配置，由 Init 函数初始化
var jwtConfig *JWTConfig

// Init 初始化 JWT 配置
func Init(secret string, accessExpiryMinutes, refreshExpiryHours int) {
	jwtConfig = &JWTConfig{
		Secret:             secret,
		AccessTokenExpiry:  time.Duration(accessExpiryMinutes) * time.Minute,
		RefreshTokenExpiry: time.Duration(refreshExpiryHours) * time.Hour,
	}
}

// Claims 自定义 JWT 声明
// 携带用户名和角色，角色供管理员接口鉴权使用
type Claims struct {
	Username string `json:"username"`
	Role     int8   `json:"role"`
	TokenID  string `json:"token_id,omitempty"` // 仅 Refresh Token 使用，用于刷新校验
	jwt.RegisteredClaims
}

// CreateAccessToken 生成 Access Token (短期，用于接口认证)
func CreateAccessToken(username string, role int8) (string, error) {
	claims := Claims{
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(jwtConfig.AccessTokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "pet_diary",
			Subject:   "access_token",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtConfig.Secret))
}

// CreateRefreshToken 生成 Refresh Token (长期，用于换发 Access Token)
// 返回 token 字符串和 tokenID (存入 Redis 用于刷新时比对)
func CreateRefreshToken(username string, role int8) (tokenString string, tokenID string, err error) {
	tokenID = uuid.NewString()
	claims := Claims{
		Username: username,
		Role:     role,
		TokenID:  tokenID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(jwtConfig.RefreshTokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "pet_diary",
			Subject:   "refresh_token",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err = token.SignedString([]byte(jwtConfig.Secret))
	return
}

// ParseToken 解析并验证 Token
// 过期、签名不一致、格式错误均收敛为 CodeUnauthorized，
// 具体原因只记入日志，不透出到 API 边界
func ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(jwtConfig.Secret), nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			zap.L().Info("token 已过期")
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			zap.L().Info("token 签名不一致")
		default:
			zap.L().Info("token 格式错误", zap.Error(err))
		}
		return nil, errorx.Wrap(err, errorx.CodeUnauthorized, "无效的 Token")
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, errorx.New(errorx.CodeUnauthorized, "无效的 Token")
}

// GetUsername 从 Token 中提取用户名
func GetUsername(tokenString string) (string, error) {
	claims, err := ParseToken(tokenString)
	if err != nil {
		return "", err
	}
	return claims.Username, nil
}
