//go:build e2e

package ratelimit

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	testioc "gitee.com/flycash/communication-platform/internal/test/ioc"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestRedisSlidingWindowLimiter(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(RedisSlidingWindowLimiterTestSuite))
}

type RedisSlidingWindowLimiterTestSuite struct {
	suite.Suite
	rdb redis.Cmdable
}

func (s *RedisSlidingWindowLimiterTestSuite) SetupSuite() {
	s.rdb = testioc.InitRedis()
}

func (s *RedisSlidingWindowLimiterTestSuite) newLimiter() *RedisSlidingWindowLimiter {
	return NewRedisSlidingWindowLimiter(s.rdb, 100*time.Millisecond, 5)
}

// 生成唯一的测试键，避免测试冲突
func (s *RedisSlidingWindowLimiterTestSuite) getUniqueKey(name string) string {
	return fmt.Sprintf("test:%s:%d", name, time.Now().UnixNano())
}

func (s *RedisSlidingWindowLimiterTestSuite) cleanup(limiter *RedisSlidingWindowLimiter, keys ...string) {
	for _, key := range keys {
		s.rdb.Del(s.T().Context(), limiter.key(key), limiter.key(key)+":seq")
	}
}

// TestLimit_SingleRequest 单个请求不触发限流
func (s *RedisSlidingWindowLimiterTestSuite) TestLimit_SingleRequest() {
	t := s.T()
	ctx := t.Context()
	key := s.getUniqueKey("single_request")
	limiter := s.newLimiter()
	defer s.cleanup(limiter, key)

	limited, err := limiter.Limit(ctx, key)
	require.NoError(t, err)
	assert.False(t, limited, "第一个请求不应该被限流")

	cnt, err := s.rdb.ZCard(ctx, limiter.key(key)).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), cnt, "应该记录一个请求")
}

// TestLimit_ExceedThreshold 超过阈值触发限流，被拒绝的请求不计数
func (s *RedisSlidingWindowLimiterTestSuite) TestLimit_ExceedThreshold() {
	t := s.T()
	ctx := t.Context()
	key := s.getUniqueKey("exceed_threshold")
	limiter := NewRedisSlidingWindowLimiter(s.rdb, time.Second, 5)
	defer s.cleanup(limiter, key)

	for i := 0; i < 5; i++ {
		limited, err := limiter.Limit(ctx, key)
		require.NoError(t, err)
		assert.False(t, limited, fmt.Sprintf("第%d个请求不应该被限流", i+1))
	}

	for i := 0; i < 3; i++ {
		limited, err := limiter.Limit(ctx, key)
		require.NoError(t, err)
		assert.True(t, limited, "窗口已满应该被限流")
	}

	cnt, err := s.rdb.ZCard(ctx, limiter.key(key)).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(5), cnt)
}

// TestLimit_DifferentKeys 不同 key 之间互不影响
func (s *RedisSlidingWindowLimiterTestSuite) TestLimit_DifferentKeys() {
	t := s.T()
	ctx := t.Context()
	key1 := s.getUniqueKey("key1")
	key2 := s.getUniqueKey("key2")
	limiter := NewRedisSlidingWindowLimiter(s.rdb, time.Second, 5)
	defer s.cleanup(limiter, key1, key2)

	for i := 0; i < 5; i++ {
		limited, err := limiter.Limit(ctx, key1)
		require.NoError(t, err)
		assert.False(t, limited, "填充窗口的请求不应被限流")
	}

	limited, err := limiter.Limit(ctx, key1)
	require.NoError(t, err)
	assert.True(t, limited, "key1应该被限流")

	limited, err = limiter.Limit(ctx, key2)
	require.NoError(t, err)
	assert.False(t, limited, "key2不应该被限流")
}

// TestLimit_WindowSliding 窗口滑动后限流恢复
func (s *RedisSlidingWindowLimiterTestSuite) TestLimit_WindowSliding() {
	t := s.T()
	ctx := t.Context()
	key := s.getUniqueKey("window_sliding")
	limiter := s.newLimiter()
	defer s.cleanup(limiter, key)

	for i := 0; i < 5; i++ {
		limited, err := limiter.Limit(ctx, key)
		require.NoError(t, err)
		assert.False(t, limited, "填充窗口的请求不应被限流")
	}

	limited, err := limiter.Limit(ctx, key)
	require.NoError(t, err)
	assert.True(t, limited, "窗口已满应该被限流")

	// 100ms 窗口加上余量
	time.Sleep(150 * time.Millisecond)

	limited, err = limiter.Limit(ctx, key)
	require.NoError(t, err)
	assert.False(t, limited, "窗口滑动后不应该被限流")
}

// TestLimit_Concurrent 并发请求时放行数不超过阈值
func (s *RedisSlidingWindowLimiterTestSuite) TestLimit_Concurrent() {
	t := s.T()
	ctx := t.Context()
	key := s.getUniqueKey("concurrent")
	limiter := NewRedisSlidingWindowLimiter(s.rdb, 5*time.Second, 10)
	defer s.cleanup(limiter, key)

	var (
		wg      sync.WaitGroup
		allowed atomic.Int32
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			limited, err := limiter.Limit(ctx, key)
			if err == nil && !limited {
				allowed.Add(1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(10), allowed.Load())
}
