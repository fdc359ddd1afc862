package errs

import (
	"errors"
	"fmt"
)

// 定义统一的错误类型
var (
	ErrValidation    = errors.New("参数错误")
	ErrInvalidTarget = errors.New("收件人选择条件无效")
	ErrNoRecipients  = errors.New("没有找到收件人")
	ErrNotFound      = errors.New("记录不存在")
	ErrForbidden     = errors.New("无权查看该通讯")
	ErrSequence      = errors.New("序列号生成失败")

	ErrUnauthorized = errors.New("未登录或令牌无效")
	ErrRateLimited  = errors.New("请求过于频繁")
)

// TargetError 收件人选择条件错误，携带调用方传入的模式便于排查
type TargetError struct {
	Mode   string
	Reason string
}

func NewTargetError(mode, reason string) *TargetError {
	return &TargetError{Mode: mode, Reason: reason}
}

func (e *TargetError) Error() string {
	return fmt.Sprintf("%s: %s, mode=%q", ErrInvalidTarget.Error(), e.Reason, e.Mode)
}

func (e *TargetError) Unwrap() error {
	return ErrInvalidTarget
}
