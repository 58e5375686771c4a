package ratelimit

import (
	"context"
	"time"
)

// Window is one sliding window limit. A zero Limit disables the window.
type Window struct {
	Duration time.Duration
	Limit    int
}

// RateLimiter counts events per key across one or more sliding windows.
type RateLimiter interface {
	Allow(ctx context.Context, key string, windows ...Window) (bool, error)
	Reset(ctx context.Context, key string) error
}
