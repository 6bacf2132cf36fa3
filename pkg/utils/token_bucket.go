package utils

import (
	"sync"
	"time"
)

// TokenBucket 令牌桶限流器
// capacity 控制可容忍的突发量，rate 是每秒补充的令牌数
type TokenBucket struct {
	mu       sync.Mutex
	capacity int64
	rate     int64
	tokens   int64
	last     time.Time
}

// NewTokenBucket 创建令牌桶，初始装满
func NewTokenBucket(capacity, rate int64) *TokenBucket {
	if capacity <= 0 {
		capacity = 1
	}
	if rate <= 0 {
		rate = 1
	}
	return &TokenBucket{
		capacity: capacity,
		rate:     rate,
		tokens:   capacity,
		last:     time.Now(),
	}
}

// AllowN 尝试立刻取走 n 个令牌，不够则返回 false
func (b *TokenBucket) AllowN(n int64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.refill(time.Now())
	if b.tokens >= n {
		b.tokens -= n
		return true
	}
	return false
}

// WaitN 在 timeout 内等待 n 个令牌，等到返回 true，超时返回 false
func (b *TokenBucket) WaitN(n int64, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for {
		if b.AllowN(n) {
			return true
		}
		if !time.Now().Before(deadline) {
			return false
		}
		time.Sleep(5 * time.Millisecond)
	}
}

// refill 按流逝时间补充令牌，调用方必须持有锁
func (b *TokenBucket) refill(now time.Time) {
	elapsed := now.Sub(b.last)
	if elapsed <= 0 {
		return
	}
	add := elapsed.Nanoseconds() * b.rate / int64(time.Second)
	if add > 0 {
		b.tokens = min(b.capacity, b.tokens+add)
		b.last = now
	}
}
