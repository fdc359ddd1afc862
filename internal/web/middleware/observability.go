package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ObservabilityBuilder 记录每个路由的处理耗时
type ObservabilityBuilder struct {
	durationHistogram *prometheus.HistogramVec
}

func NewObservabilityBuilder(reg prometheus.Registerer) *ObservabilityBuilder {
	return &ObservabilityBuilder{
		durationHistogram: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_server_handling_seconds",
				Help:    "HTTP 请求处理耗时（秒）",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
	}
}

func (b *ObservabilityBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		route := ctx.FullPath()
		if route == "" {
			route = "unknown"
		}
		b.durationHistogram.WithLabelValues(
			ctx.Request.Method,
			route,
			strconv.Itoa(ctx.Writer.Status()),
		).Observe(time.Since(start).Seconds())
	}
}
