package jwt

import (
	"fmt"
	"strings"
	"time"

	"gitee.com/flycash/communication-platform/internal/domain"
	"github.com/golang-jwt/jwt/v4"
)

const (
	claimMemberID   = "member_id"
	claimExternalID = "external_id"
	claimTier       = "tier"

	issuer     = "communication-platform"
	defaultTTL = 24 * time.Hour
)

// Auth HS256 令牌的签发与校验
type Auth struct {
	key []byte
}

func NewAuth(key string) *Auth {
	return &Auth{key: []byte(key)}
}

// Decode 校验令牌并还原调用方身份，兼容带 Bearer 前缀的写法
func (a *Auth) Decode(tokenString string) (domain.Caller, error) {
	tokenString = strings.TrimSpace(strings.TrimPrefix(tokenString, "Bearer "))
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("不支持的签名算法: %v", token.Header["alg"])
		}
		return a.key, nil
	})
	if err != nil {
		return domain.Caller{}, fmt.Errorf("令牌解析失败: %w", err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return domain.Caller{}, fmt.Errorf("无效的令牌")
	}
	return toCaller(claims), nil
}

// Encode 签发令牌，默认 24 小时过期
func (a *Auth) Encode(caller domain.Caller) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iat":         now.Unix(),
		"iss":         issuer,
		"exp":         now.Add(defaultTTL).Unix(),
		claimMemberID: caller.MemberID,
		claimTier:     caller.Tier,
	}
	if caller.ExternalID != "" {
		claims[claimExternalID] = caller.ExternalID
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.key)
}

// toCaller JSON 里的数字解析出来是 float64，外部编号可能是数字也可能是字符串
func toCaller(claims jwt.MapClaims) domain.Caller {
	var c domain.Caller
	if v, ok := claims[claimMemberID].(float64); ok {
		c.MemberID = int64(v)
	}
	if v, ok := claims[claimTier].(float64); ok {
		c.Tier = int(v)
	}
	switch v := claims[claimExternalID].(type) {
	case string:
		c.ExternalID = domain.NormalizeIdentifier(v)
	case float64:
		c.ExternalID = domain.FormatExternalID(uint64(v))
	}
	return c
}
