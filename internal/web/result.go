package web

import (
	"errors"
	"net/http"

	"gitee.com/flycash/communication-platform/internal/domain"
	"gitee.com/flycash/communication-platform/internal/errs"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

const (
	CodeOK              = "ok"
	CodeValidation      = "validation_error"
	CodeInvalidTarget   = "invalid_target"
	CodeNoRecipients    = "no_recipients"
	CodeNotFound        = "not_found"
	CodeForbidden       = "forbidden"
	CodeSequence        = "sequence_error"
	CodeUnauthorized    = "unauthorized"
	CodeRateLimited     = "rate_limited"
	CodeInternal        = "internal_error"
	callerContextKey    = "communication-platform/caller"
	requestIDContextKey = "communication-platform/request-id"
)

// Result 统一的响应格式
type Result[T any] struct {
	Code    string         `json:"code"`
	Msg     string         `json:"msg"`
	Data    T              `json:"data"`
	Details map[string]any `json:"details,omitempty"`
}

func OK[T any](ctx *gin.Context, data T) {
	ctx.JSON(http.StatusOK, Result[T]{Code: CodeOK, Msg: "OK", Data: data})
}

func Created[T any](ctx *gin.Context, data T) {
	ctx.JSON(http.StatusCreated, Result[T]{Code: CodeOK, Msg: "OK", Data: data})
}

// Error 把错误映射成 HTTP 状态码和稳定的错误码，内部错误不向调用方暴露细节
func Error(ctx *gin.Context, err error) {
	status, res := toResult(err)
	if status >= http.StatusInternalServerError {
		elog.DefaultLogger.Error("处理请求失败",
			elog.String("method", ctx.Request.Method),
			elog.String("path", ctx.FullPath()),
			elog.String("requestId", RequestID(ctx)),
			elog.FieldErr(err))
	}
	ctx.AbortWithStatusJSON(status, res)
}

func toResult(err error) (int, Result[any]) {
	var targetErr *errs.TargetError
	switch {
	case errors.As(err, &targetErr):
		return http.StatusBadRequest, Result[any]{
			Code:    CodeInvalidTarget,
			Msg:     errs.ErrInvalidTarget.Error(),
			Details: map[string]any{"mode": targetErr.Mode, "reason": targetErr.Reason},
		}
	case errors.Is(err, errs.ErrInvalidTarget):
		return http.StatusBadRequest, Result[any]{Code: CodeInvalidTarget, Msg: errs.ErrInvalidTarget.Error()}
	case errors.Is(err, errs.ErrValidation):
		// 校验错误的信息是给调用方看的
		return http.StatusBadRequest, Result[any]{Code: CodeValidation, Msg: err.Error()}
	case errors.Is(err, errs.ErrNoRecipients):
		return http.StatusBadRequest, Result[any]{Code: CodeNoRecipients, Msg: errs.ErrNoRecipients.Error()}
	case errors.Is(err, errs.ErrNotFound):
		return http.StatusNotFound, Result[any]{Code: CodeNotFound, Msg: errs.ErrNotFound.Error()}
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden, Result[any]{Code: CodeForbidden, Msg: errs.ErrForbidden.Error()}
	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized, Result[any]{Code: CodeUnauthorized, Msg: errs.ErrUnauthorized.Error()}
	case errors.Is(err, errs.ErrRateLimited):
		return http.StatusTooManyRequests, Result[any]{Code: CodeRateLimited, Msg: errs.ErrRateLimited.Error()}
	case errors.Is(err, errs.ErrSequence):
		return http.StatusInternalServerError, Result[any]{Code: CodeSequence, Msg: errs.ErrSequence.Error()}
	default:
		return http.StatusInternalServerError, Result[any]{Code: CodeInternal, Msg: "系统错误"}
	}
}

// SetCaller 由鉴权中间件调用
func SetCaller(ctx *gin.Context, caller domain.Caller) {
	ctx.Set(callerContextKey, caller)
}

// Caller 取出当前请求的调用方，没有经过鉴权时返回 ErrUnauthorized
func Caller(ctx *gin.Context) (domain.Caller, error) {
	val, ok := ctx.Get(callerContextKey)
	if !ok {
		return domain.Caller{}, errs.ErrUnauthorized
	}
	caller, ok := val.(domain.Caller)
	if !ok {
		return domain.Caller{}, errs.ErrUnauthorized
	}
	return caller, nil
}

func SetRequestID(ctx *gin.Context, id string) {
	ctx.Set(requestIDContextKey, id)
}

func RequestID(ctx *gin.Context) string {
	return ctx.GetString(requestIDContextKey)
}
