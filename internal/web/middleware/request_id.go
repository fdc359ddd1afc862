package middleware

import (
	"gitee.com/flycash/communication-platform/internal/web"
	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
)

const RequestIDHeader = "X-Request-Id"

// RequestID 沿用调用方传入的请求 ID，没有就生成一个
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(RequestIDHeader)
		if id == "" {
			if v4, err := uuid.NewV4(); err == nil {
				id = v4.String()
			}
		}
		web.SetRequestID(ctx, id)
		ctx.Header(RequestIDHeader, id)
		ctx.Next()
	}
}
