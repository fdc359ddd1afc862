package middleware

import (
	"fmt"

	"gitee.com/flycash/communication-platform/internal/errs"
	"gitee.com/flycash/communication-platform/internal/pkg/ratelimit"
	"gitee.com/flycash/communication-platform/internal/web"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// RateLimitBuilder 按发件人限流，必须挂在鉴权中间件之后
type RateLimitBuilder struct {
	prefix  string
	limiter ratelimit.Limiter
	logger  *elog.Component
}

func NewRateLimitBuilder(prefix string, limiter ratelimit.Limiter) *RateLimitBuilder {
	return &RateLimitBuilder{
		prefix:  prefix,
		limiter: limiter,
		logger:  elog.DefaultLogger,
	}
}

func (b *RateLimitBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		caller, err := web.Caller(ctx)
		if err != nil {
			web.Error(ctx, err)
			return
		}
		key := fmt.Sprintf("%s:%s", b.prefix, caller.SenderID())
		limited, err := b.limiter.Limit(ctx.Request.Context(), key)
		if err != nil {
			// 限流器不可用时保守处理，直接拒绝
			b.logger.Error("限流器异常", elog.String("key", key), elog.FieldErr(err))
			web.Error(ctx, errs.ErrRateLimited)
			return
		}
		if limited {
			b.logger.Warn("触发限流", elog.String("key", key))
			web.Error(ctx, errs.ErrRateLimited)
			return
		}
		ctx.Next()
	}
}
