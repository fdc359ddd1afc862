package ioc

import (
	"time"

	"gitee.com/flycash/communication-platform/internal/pkg/jwt"
	"gitee.com/flycash/communication-platform/internal/pkg/ratelimit"
	"gitee.com/flycash/communication-platform/internal/web/communication"
	"gitee.com/flycash/communication-platform/internal/web/middleware"
	"gitee.com/flycash/communication-platform/internal/web/sequence"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

func InitJWTAuth() *jwt.Auth {
	key := econf.GetString("jwt.key")
	if key == "" {
		panic("jwt.key 未配置")
	}
	return jwt.NewAuth(key)
}

func InitSendLimiter(cmd redis.Cmdable) ratelimit.Limiter {
	type Config struct {
		Interval time.Duration
		Rate     int
	}
	cfg := Config{
		Interval: time.Minute,
		Rate:     30,
	}
	err := econf.UnmarshalKey("ratelimit.send", &cfg)
	if err != nil {
		panic(err)
	}
	return ratelimit.NewRedisSlidingWindowLimiter(cmd, cfg.Interval, cfg.Rate)
}

func InitWeb(
	auth *jwt.Auth,
	limiter ratelimit.Limiter,
	communicationHdl *communication.Handler,
	sequenceHdl *sequence.Handler,
) *egin.Component {
	server := egin.Load("server.http").Build()
	server.Use(
		middleware.RequestID(),
		middleware.NewObservabilityBuilder(prometheus.DefaultRegisterer).Build(),
		middleware.NewJWTAuthBuilder(auth).Build(),
	)
	communicationHdl.PrivateRoutes(server.Engine,
		middleware.NewRateLimitBuilder("communication:send", limiter).Build())
	sequenceHdl.PrivateRoutes(server.Engine)
	return server
}
