package utils

import (
	"testing"
	"time"
)

func TestTokenBucket_BurstThenDeny(t *testing.T) {
	b := NewTokenBucket(3, 1)

	for i := 0; i < 3; i++ {
		if !b.AllowN(1) {
			t.Fatalf("request %d within burst should be allowed", i)
		}
	}
	if b.AllowN(1) {
		t.Fatal("request beyond burst should be denied")
	}
}

func TestTokenBucket_Refill(t *testing.T) {
	b := NewTokenBucket(1, 100) // 每 10ms 补一个令牌

	if !b.AllowN(1) {
		t.Fatal("initial token should be available")
	}
	if b.AllowN(1) {
		t.Fatal("bucket should be empty")
	}

	time.Sleep(30 * time.Millisecond)
	if !b.AllowN(1) {
		t.Fatal("token should have been refilled")
	}
}

func TestTokenBucket_WaitN(t *testing.T) {
	b := NewTokenBucket(1, 50)
	b.AllowN(1)

	if !b.WaitN(1, 200*time.Millisecond) {
		t.Fatal("WaitN should succeed within timeout")
	}

	b = NewTokenBucket(1, 1)
	b.AllowN(1)
	if b.WaitN(1, 10*time.Millisecond) {
		t.Fatal("WaitN should time out when refill is too slow")
	}
}
