package middleware

import (
	"gitee.com/flycash/communication-platform/internal/errs"
	"gitee.com/flycash/communication-platform/internal/pkg/jwt"
	"gitee.com/flycash/communication-platform/internal/web"
	"github.com/ecodeclub/ekit/set"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// JWTAuthBuilder 校验 Authorization 头里的令牌，并把调用方身份放进上下文
type JWTAuthBuilder struct {
	auth        *jwt.Auth
	ignorePaths set.Set[string]
	logger      *elog.Component
}

func NewJWTAuthBuilder(auth *jwt.Auth) *JWTAuthBuilder {
	return &JWTAuthBuilder{
		auth:        auth,
		ignorePaths: set.NewMapSet[string](2),
		logger:      elog.DefaultLogger,
	}
}

// IgnorePaths 这些路由不需要登录
func (b *JWTAuthBuilder) IgnorePaths(paths ...string) *JWTAuthBuilder {
	for _, p := range paths {
		b.ignorePaths.Add(p)
	}
	return b
}

func (b *JWTAuthBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if b.ignorePaths.Exist(ctx.FullPath()) {
			ctx.Next()
			return
		}
		token := ctx.GetHeader("Authorization")
		if token == "" {
			web.Error(ctx, errs.ErrUnauthorized)
			return
		}
		caller, err := b.auth.Decode(token)
		if err != nil {
			b.logger.Warn("令牌校验失败", elog.String("path", ctx.FullPath()), elog.FieldErr(err))
			web.Error(ctx, errs.ErrUnauthorized)
			return
		}
		web.SetCaller(ctx, caller)
		ctx.Next()
	}
}
