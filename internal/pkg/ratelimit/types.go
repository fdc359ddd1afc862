package ratelimit

import "context"

//go:generate mockgen -source=./types.go -package=limitmocks -destination=./mocks/limiter.mock.go Limiter
type Limiter interface {
	// Limit 返回 true 表示这次请求应该被拒绝
	Limit(ctx context.Context, key string) (bool, error)
}
